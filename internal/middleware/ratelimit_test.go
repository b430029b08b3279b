package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serve(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	t.Parallel()
	handler := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 100, Burst: 10}).Middleware(okHandler())

	for range 5 {
		rec := serve(handler, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "10", rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimiter_RejectsOverBurst(t *testing.T) {
	t.Parallel()
	handler := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 1, Burst: 2}).Middleware(okHandler())

	for range 2 {
		require.Equal(t, http.StatusOK, serve(handler, "").Code)
	}

	rec := serve(handler, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.InDelta(t, float64(429), body["code"], 0.001)
	assert.Equal(t, "rate limit exceeded", body["message"])
}

func TestRateLimiter_PerClientIsolation(t *testing.T) {
	t.Parallel()
	handler := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 1, Burst: 2}).Middleware(okHandler())

	for range 2 {
		require.Equal(t, http.StatusOK, serve(handler, "10.0.0.1:1234").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, serve(handler, "10.0.0.1:5678").Code)
	assert.Equal(t, http.StatusOK, serve(handler, "10.0.0.2:1234").Code,
		"different client should not be affected by another client's limit")
}

func TestRateLimiter_Sweep(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 1, Burst: 1})
	l.now = func() time.Time { return now }
	handler := l.Middleware(okHandler())

	serve(handler, "10.0.0.1:1")
	now = now.Add(20 * time.Minute)
	serve(handler, "10.0.0.2:1")

	l.Sweep(10 * time.Minute)
	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.clients, "10.0.0.1")
	assert.Contains(t, l.clients, "10.0.0.2")
}

func TestRateLimiter_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewRateLimiter(RateLimitConfig{RequestsPerSecond: 1, Burst: 1}).Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestClientIP_ExtractsHost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		want       string
	}{
		{name: "IPv4 with port", remoteAddr: "192.168.1.1:12345", want: "192.168.1.1"},
		{name: "IPv6 with port", remoteAddr: "[::1]:12345", want: "::1"},
		{name: "no port", remoteAddr: "192.168.1.1", want: "192.168.1.1"},
		{name: "X-Forwarded-For ignored", remoteAddr: "10.0.0.1:1234", xff: "203.0.113.50", want: "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}
