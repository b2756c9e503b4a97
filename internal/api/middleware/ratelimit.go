package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/chargemate-booking/internal/api/handlers"
)

const msgTooManyRequests = "Too many requests, please try again later"

type visitor struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nano
}

// RateLimiter ограничивает частоту запросов отдельно для каждого клиента.
// X-Forwarded-For учитывается только от доверенных прокси.
type RateLimiter struct {
	visitors sync.Map // map[string]*visitor
	rps      rate.Limit
	burst    int
	trusted  []*net.IPNet
	now      func() time.Time
}

// NewRateLimiter создает лимитер. trustedProxies задаются как CIDR или одиночные IP.
func NewRateLimiter(rps float64, burst int, trustedProxies []string) (*RateLimiter, error) {
	if burst <= 0 {
		burst = 5
	}
	trusted, err := ParseProxies(trustedProxies)
	if err != nil {
		return nil, err
	}
	return &RateLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		trusted: trusted,
		now:     time.Now,
	}, nil
}

// ParseProxies разбирает список CIDR, одиночный IP превращается в сеть из одного адреса
func ParseProxies(items []string) ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if !strings.Contains(item, "/") {
			ip := net.ParseIP(item)
			if ip == nil {
				return nil, fmt.Errorf("invalid trusted proxy %q", item)
			}
			bits := 128
			if ip.To4() != nil {
				ip = ip.To4()
				bits = 32
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, n, err := net.ParseCIDR(item)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", item, err)
		}
		nets = append(nets, n)
	}
	return nets, nil
}

func (l *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := l.now().UnixNano()
	if v, ok := l.visitors.Load(key); ok {
		if vis, ok := v.(*visitor); ok {
			vis.lastSeen.Store(now)
			return vis.limiter
		}
	}

	vis := &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
	vis.lastSeen.Store(now)
	actual, loaded := l.visitors.LoadOrStore(key, vis)
	if loaded {
		if actualVis, ok := actual.(*visitor); ok {
			actualVis.lastSeen.Store(now)
			return actualVis.limiter
		}
	}
	return vis.limiter
}

// Limit пропускает запрос, если у клиента остались токены
func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.getLimiter(l.clientKey(r)).Allow() {
			handlers.RespondTooManyRequests(w, msgTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Evict удаляет клиентов, не обращавшихся дольше idle. Возвращает число удалённых.
func (l *RateLimiter) Evict(idle time.Duration) int {
	cutoff := l.now().Add(-idle).UnixNano()
	removed := 0
	l.visitors.Range(func(key, value any) bool {
		if vis, ok := value.(*visitor); ok && vis.lastSeen.Load() < cutoff {
			l.visitors.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// RunEviction периодически вызывает Evict до закрытия stopCh
func (l *RateLimiter) RunEviction(interval, idle time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.Evict(idle)
		case <-stopCh:
			return
		}
	}
}

// clientKey IP клиента. Если запрос пришёл от доверенного прокси, берётся
// самый правый адрес X-Forwarded-For, не принадлежащий доверенным сетям.
func (l *RateLimiter) clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if !l.isTrusted(host) {
		return host
	}

	fwd := r.Header.Get("X-Forwarded-For")
	if fwd == "" {
		return host
	}
	hops := strings.Split(fwd, ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if net.ParseIP(hop) == nil {
			// мусор в заголовке, дальше цепочке верить нельзя
			return host
		}
		if !l.isTrusted(hop) {
			return hop
		}
	}
	return host
}

func (l *RateLimiter) isTrusted(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	for _, n := range l.trusted {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}
