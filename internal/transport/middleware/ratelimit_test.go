package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func limitedHandler(rl *RateLimiter, maxPerMinute int) http.Handler {
	return rl.Limit(maxPerMinute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func getTerms(handler http.Handler, addr string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/terms", nil)
	req.RemoteAddr = addr
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_FullBucketServesEveryRequest(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()
	handler := limitedHandler(rl, 10)

	for i := range 10 {
		rec := getTerms(handler, "198.51.100.7:40000")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i)
	}
}

func TestRateLimiter_EmptyBucketRejectsWithRetryAfter(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()
	handler := limitedHandler(rl, 5)

	for range 5 {
		rec := getTerms(handler, "198.51.100.8:40000")
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := getTerms(handler, "198.51.100.8:40000")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimiter_BucketsAreScopedToClientAddress(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()
	handler := limitedHandler(rl, 2)

	for range 2 {
		getTerms(handler, "198.51.100.9:40000")
	}

	// A different client starts with a full bucket.
	rec := getTerms(handler, "203.0.113.4:50000")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_TokensRefillOverTime(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	// 60 per minute refills one token per second.
	handler := limitedHandler(rl, 60)
	addr := "198.51.100.10:40000"

	for range 60 {
		getTerms(handler, addr)
	}

	time.Sleep(1100 * time.Millisecond)

	rec := getTerms(handler, addr)
	assert.Equal(t, http.StatusOK, rec.Code)
}
