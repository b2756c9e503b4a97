package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/chargemate-booking/internal/domain"
)

func actorEcho(t *testing.T, got *domain.Actor) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := GetActor(r.Context())
		require.True(t, ok)
		*got = actor
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuth(t *testing.T) {
	auth := NewAuthenticator("test-secret")
	want := domain.Actor{UserID: "u-1", Email: "asha@example.com", Role: domain.RoleAdmin}

	token, err := auth.IssueToken(want, time.Hour)
	require.NoError(t, err)

	var got domain.Actor
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/mybookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	auth.Auth(actorEcho(t, &got)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, want, got)
}

func TestAuthRejects(t *testing.T) {
	auth := NewAuthenticator("test-secret")

	expired, err := auth.IssueToken(domain.Actor{UserID: "u-1", Email: "a@b.c"}, -time.Minute)
	require.NoError(t, err)

	foreign, err := NewAuthenticator("other-secret").IssueToken(domain.Actor{UserID: "u-1"}, time.Hour)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Sub: "u-1"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage", header: "Bearer not-a-jwt"},
		{name: "expired", header: "Bearer " + expired},
		{name: "wrong secret", header: "Bearer " + foreign},
		{name: "alg none", header: "Bearer " + unsigned},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			auth.Auth(next).ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetActorEmptyContext(t *testing.T) {
	_, ok := GetActor(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
