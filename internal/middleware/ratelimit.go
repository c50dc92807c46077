package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rentx-lk/rentx-api/internal/httpjson"
)

// RateLimitMiddleware is a per-client sliding window limiter. Clients are
// keyed by socket address unless TrustProxyHeaders is set, in which case
// X-Forwarded-For and X-Real-IP win.
type RateLimitMiddleware struct {
	TrustProxyHeaders bool

	mu        sync.Mutex
	requests  map[string][]time.Time
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimitMiddleware creates a new rate limiting middleware
func NewRateLimitMiddleware() *RateLimitMiddleware {
	return &RateLimitMiddleware{
		requests: make(map[string][]time.Time),
		now:      time.Now,
	}
}

// RateLimit allows maxRequests per window for each client address. Rejected
// requests get a Retry-After header.
func (m *RateLimitMiddleware) RateLimit(maxRequests int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if wait, ok := m.allow(m.clientKey(r), maxRequests, window); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(wait.Seconds())+1))
				httpjson.WriteError(w, http.StatusTooManyRequests, httpjson.CodeRateLimited, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m *RateLimitMiddleware) clientKey(r *http.Request) string {
	if m.TrustProxyHeaders {
		return getClientIP(r)
	}
	return remoteHost(r)
}

// allow records a hit for client, or returns how long until the oldest hit
// leaves the window.
func (m *RateLimitMiddleware) allow(client string, maxRequests int, window time.Duration) (time.Duration, bool) {
	now := m.now()
	cutoff := now.Add(-window)

	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.lastSweep) >= window {
		m.sweep(cutoff)
		m.lastSweep = now
	}

	hits := recent(m.requests[client], cutoff)
	if len(hits) >= maxRequests {
		m.requests[client] = hits
		return hits[0].Sub(cutoff), false
	}
	m.requests[client] = append(hits, now)
	return 0, true
}

// sweep drops clients with no hit after cutoff. Callers hold mu.
func (m *RateLimitMiddleware) sweep(cutoff time.Time) {
	for client, hits := range m.requests {
		if len(recent(hits, cutoff)) == 0 {
			delete(m.requests, client)
		}
	}
}

// Tracked returns the number of clients currently held in memory.
func (m *RateLimitMiddleware) Tracked() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// recent drops the hits at or before cutoff; hits are in time order.
func recent(hits []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	return hits[i:]
}

// getClientIP prefers proxy headers over the socket address.
func getClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return remoteHost(r)
}

func remoteHost(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
