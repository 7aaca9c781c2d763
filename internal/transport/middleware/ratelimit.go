package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// idleBucketTTL is how long an untouched bucket survives cleanup.
const idleBucketTTL = 10 * time.Minute

// RateLimiter is a per-client token bucket limiter keyed by remote IP.
type RateLimiter struct {
	buckets  sync.Map // map[string]*bucket
	stop     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	perSecond  float64
	lastRefill time.Time
}

// NewRateLimiter starts a limiter whose idle buckets are swept every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{}), now: time.Now}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit allows each client maxPerMinute requests with a burst of the same
// size. Rejected requests get 429 and a Retry-After header.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	retryAfter := strconv.Itoa(int(math.Ceil(60 / float64(maxPerMinute))))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b := rl.bucketFor(clientIP(r), maxPerMinute)
			if !b.take(rl.now()) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) bucketFor(key string, maxPerMinute int) *bucket {
	if v, ok := rl.buckets.Load(key); ok {
		return v.(*bucket)
	}
	capacity := float64(maxPerMinute)
	v, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:     capacity,
		capacity:   capacity,
		perSecond:  capacity / 60,
		lastRefill: rl.now(),
	})
	return v.(*bucket)
}

func (b *bucket) take(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if elapsed := now.Sub(b.lastRefill).Seconds(); elapsed > 0 {
		b.tokens = math.Min(b.capacity, b.tokens+elapsed*b.perSecond)
		b.lastRefill = now
	}
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (b *bucket) idleSince(now time.Time) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return now.Sub(b.lastRefill)
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	now := rl.now()
	rl.buckets.Range(func(key, value any) bool {
		if value.(*bucket).idleSince(now) > idleBucketTTL {
			rl.buckets.Delete(key)
		}
		return true
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
