package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	middleware := NewRateLimitMiddleware()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	middleware.now = func() time.Time { return now }

	handler := middleware.RateLimit(2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	serve := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/auth/login", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, serve("192.168.1.1:12345").Code)
	now = now.Add(20 * time.Second)
	assert.Equal(t, http.StatusOK, serve("192.168.1.1:12346").Code)

	rejected := serve("192.168.1.1:12347")
	assert.Equal(t, http.StatusTooManyRequests, rejected.Code)
	assert.Equal(t, "41", rejected.Header().Get("Retry-After"))

	// other clients are unaffected
	assert.Equal(t, http.StatusOK, serve("192.168.1.2:12345").Code)

	// the first hit has left the window, the second has not
	now = now.Add(41 * time.Second)
	assert.Equal(t, http.StatusOK, serve("192.168.1.1:12345").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve("192.168.1.1:12345").Code)
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", getClientIP(req))

	req.Header.Set("X-Real-IP", "10.0.0.2")
	assert.Equal(t, "10.0.0.2", getClientIP(req))

	req.Header.Set("X-Forwarded-For", "10.0.0.3, 10.0.0.4")
	assert.Equal(t, "10.0.0.3", getClientIP(req))

	v6 := httptest.NewRequest("GET", "/", nil)
	v6.RemoteAddr = "[::1]:5555"
	assert.Equal(t, "::1", getClientIP(v6))
}

func TestRateLimitMiddleware_IgnoresForwardedHeadersByDefault(t *testing.T) {
	middleware := NewRateLimitMiddleware()
	handler := middleware.RateLimit(1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	serve := func(forwarded string) int {
		req := httptest.NewRequest("POST", "/api/auth/login", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		req.Header.Set("X-Forwarded-For", forwarded)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, serve("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, serve("10.0.0.2"))
	assert.Equal(t, 1, middleware.Tracked())
}

func TestRateLimitMiddleware_TrustProxyHeaders(t *testing.T) {
	middleware := NewRateLimitMiddleware()
	middleware.TrustProxyHeaders = true
	handler := middleware.RateLimit(1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	serve := func(forwarded string) int {
		req := httptest.NewRequest("POST", "/api/auth/login", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		req.Header.Set("X-Forwarded-For", forwarded)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, serve("10.0.0.1"))
	assert.Equal(t, http.StatusOK, serve("10.0.0.2"))
	assert.Equal(t, http.StatusTooManyRequests, serve("10.0.0.1"))
}

func TestRateLimitMiddleware_ForgetsIdleClients(t *testing.T) {
	middleware := NewRateLimitMiddleware()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	middleware.now = func() time.Time { return now }
	handler := middleware.RateLimit(5, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	serve := func(addr string) {
		req := httptest.NewRequest("POST", "/api/auth/login", nil)
		req.RemoteAddr = addr
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1", "10.0.0.3:1"} {
		serve(addr)
	}
	assert.Equal(t, 3, middleware.Tracked())

	now = now.Add(2 * time.Minute)
	serve("10.0.0.4:1")
	assert.Equal(t, 1, middleware.Tracked())
}
