package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimited(t *testing.T, trusted ...string) (*RateLimiter, func(remote, fwd string) int) {
	t.Helper()
	limiter, err := NewRateLimiter(0.001, 2, trusted)
	require.NoError(t, err)

	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(remote, fwd string) int {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
		req.RemoteAddr = remote
		if fwd != "" {
			req.Header.Set("X-Forwarded-For", fwd)
		}
		handler.ServeHTTP(rec, req)
		return rec.Code
	}
	return limiter, call
}

func TestRateLimiter(t *testing.T) {
	_, call := newLimited(t)

	assert.Equal(t, http.StatusOK, call("10.0.0.1:5000", ""))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:5001", ""))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:5002", ""))

	// у другого клиента свой лимит
	assert.Equal(t, http.StatusOK, call("10.0.0.2:5000", ""))
}

func TestRateLimiterIgnoresForwardedFromUntrustedPeer(t *testing.T) {
	limiter, call := newLimited(t)

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, call("198.51.100.7:4000", fmt.Sprintf("203.0.113.%d", i)))
	}
	assert.Equal(t, http.StatusTooManyRequests, call("198.51.100.7:4000", "203.0.113.99"))

	count := 0
	limiter.visitors.Range(func(_, _ any) bool { count++; return true })
	assert.Equal(t, 1, count)
}

func TestClientKey(t *testing.T) {
	limiter, err := NewRateLimiter(1, 1, []string{"10.0.0.0/8", "192.168.1.1"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		remote string
		fwd    string
		want   string
	}{
		{name: "direct", remote: "192.168.1.10:4242", want: "192.168.1.10"},
		{name: "untrusted peer with header", remote: "198.51.100.7:1", fwd: "203.0.113.5", want: "198.51.100.7"},
		{name: "trusted proxy", remote: "10.0.0.3:1", fwd: "203.0.113.5", want: "203.0.113.5"},
		{name: "spoofed leftmost", remote: "10.0.0.3:1", fwd: "1.2.3.4, 203.0.113.5, 10.0.0.9", want: "203.0.113.5"},
		{name: "single trusted ip", remote: "192.168.1.1:1", fwd: "203.0.113.8", want: "203.0.113.8"},
		{name: "garbage hop", remote: "10.0.0.3:1", fwd: "not-an-ip", want: "10.0.0.3"},
		{name: "trusted without header", remote: "10.0.0.3:1", want: "10.0.0.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.fwd != "" {
				req.Header.Set("X-Forwarded-For", tt.fwd)
			}
			assert.Equal(t, tt.want, limiter.clientKey(req))
		})
	}
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	limiter, err := NewRateLimiter(1, 1, nil)
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	limiter.getLimiter("203.0.113.1")

	now = now.Add(5 * time.Minute)
	limiter.getLimiter("203.0.113.2")

	now = now.Add(6 * time.Minute)
	assert.Equal(t, 1, limiter.Evict(10*time.Minute))

	_, stale := limiter.visitors.Load("203.0.113.1")
	_, fresh := limiter.visitors.Load("203.0.113.2")
	assert.False(t, stale)
	assert.True(t, fresh)
}

func TestNewRateLimiterRejectsBadProxy(t *testing.T) {
	_, err := NewRateLimiter(1, 1, []string{"10.0.0.0/99"})
	assert.Error(t, err)

	_, err = NewRateLimiter(1, 1, []string{"proxy.local"})
	assert.Error(t, err)
}

func TestRateLimiterRejectionBody(t *testing.T) {
	limiter, err := NewRateLimiter(0.001, 1, nil)
	require.NoError(t, err)
	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	var rec *httptest.ResponseRecorder
	for i := 0; i < 2; i++ {
		rec = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		handler.ServeHTTP(rec, req)
	}

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"Too many requests, please try again later"}`, rec.Body.String())
}
