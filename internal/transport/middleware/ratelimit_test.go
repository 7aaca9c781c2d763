package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestLimiter(t *testing.T) (*RateLimiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(time.Hour)
	rl.now = clock.Now
	t.Cleanup(rl.Stop)
	return rl, clock
}

func hit(h http.Handler, addr string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/patterns/search", nil)
	req.RemoteAddr = addr
	h.ServeHTTP(rec, req)
	return rec
}

func limited(rl *RateLimiter, perMinute int) http.Handler {
	return rl.Limit(perMinute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRateLimiter_BurstThenBlock(t *testing.T) {
	t.Parallel()

	rl, _ := newTestLimiter(t)
	h := limited(rl, 5)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(h, "1.2.3.4:1234").Code, "request %d", i)
	}

	rec := hit(h, "1.2.3.4:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "12", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
}

func TestRateLimiter_KeysByHost(t *testing.T) {
	t.Parallel()

	rl, _ := newTestLimiter(t)
	h := limited(rl, 2)

	assert.Equal(t, http.StatusOK, hit(h, "1.1.1.1:1000").Code)
	assert.Equal(t, http.StatusOK, hit(h, "1.1.1.1:2000").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "1.1.1.1:3000").Code, "ports share a bucket")
	assert.Equal(t, http.StatusOK, hit(h, "2.2.2.2:5678").Code)
}

func TestRateLimiter_Refill(t *testing.T) {
	t.Parallel()

	rl, clock := newTestLimiter(t)
	h := limited(rl, 60)

	for i := 0; i < 60; i++ {
		hit(h, "3.3.3.3:1234")
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "3.3.3.3:1234").Code)

	clock.Advance(time.Second)
	assert.Equal(t, http.StatusOK, hit(h, "3.3.3.3:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "3.3.3.3:1234").Code)
}

func TestRateLimiter_SweepDropsIdleBuckets(t *testing.T) {
	t.Parallel()

	rl, clock := newTestLimiter(t)
	h := limited(rl, 1)

	hit(h, "4.4.4.4:1")
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "4.4.4.4:1").Code)

	clock.Advance(idleBucketTTL + time.Second)
	rl.sweep()

	_, ok := rl.buckets.Load("4.4.4.4")
	assert.False(t, ok)
}

func TestRateLimiter_StopTwice(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(time.Hour)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
