package middleware

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/asal3ti/charizard/pkg/hash"
)

// sweepInterval is how often expired windows are dropped from memory.
const sweepInterval = 5 * time.Minute

// RateLimitConfig defines the limit for a group of routes.
type RateLimitConfig struct {
	Max    int                      // requests allowed per window
	Window time.Duration            // window length
	KeyFn  func(c fiber.Ctx) string // bucket key for a request
}

// window is one key's request count in its current window.
type window struct {
	count int
	ends  time.Time
}

// RateLimiter is an in-memory fixed-window limiter. Each key gets Max
// requests per Window, counted from its first request. State is per process.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	config  RateLimitConfig
	now     func() time.Time
}

// NewRateLimiter creates a rate limiter and starts its background sweep.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		windows: make(map[string]*window),
		config:  cfg,
		now:     time.Now,
	}
	go rl.sweepLoop()
	return rl
}

// take counts one request against key. It returns how many requests are
// left in the window (negative once over the limit) and when the window ends.
func (rl *RateLimiter) take(key string) (int, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	if !ok || now.After(w.ends) {
		w = &window{ends: now.Add(rl.config.Window)}
		rl.windows[key] = w
	}
	w.count++
	return rl.config.Max - w.count, w.ends
}

// Allow counts a request against key and reports whether it is within the limit.
func (rl *RateLimiter) Allow(key string) bool {
	remaining, _ := rl.take(key)
	return remaining >= 0
}

// Handler returns a Fiber middleware that enforces the limit and reports it
// in X-RateLimit-* headers.
func (rl *RateLimiter) Handler() fiber.Handler {
	return func(c fiber.Ctx) error {
		remaining, ends := rl.take(rl.config.KeyFn(c))

		c.Set("X-RateLimit-Limit", strconv.Itoa(rl.config.Max))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(max(remaining, 0)))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(ends.Unix(), 10))

		if remaining < 0 {
			retryAfter := int(ends.Sub(rl.now()).Seconds()) + 1
			c.Set("Retry-After", strconv.Itoa(retryAfter))
			return ErrorResponse(c, fiber.StatusTooManyRequests, "RATE_LIMITED",
				fmt.Sprintf("Too many requests. Try again in %d seconds.", retryAfter))
		}
		return c.Next()
	}
}

// sweep drops windows that ended before now and returns how many it removed.
func (rl *RateLimiter) sweep(now time.Time) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	n := 0
	for key, w := range rl.windows {
		if now.After(w.ends) {
			delete(rl.windows, key)
			n++
		}
	}
	return n
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	for range ticker.C {
		rl.sweep(rl.now())
	}
}

// KeyByIP buckets requests by hashed client IP.
func KeyByIP(c fiber.Ctx) string {
	return "ip:" + hash.HashIP(c.IP(), "")
}

func perIPPerMinute(n int) *RateLimiter {
	return NewRateLimiter(RateLimitConfig{Max: n, Window: time.Minute, KeyFn: KeyByIP})
}

// NewAnalysisRateLimiter limits YouTube-backed analyses to 30 per minute per IP.
func NewAnalysisRateLimiter() *RateLimiter { return perIPPerMinute(30) }

// NewSearchRateLimiter limits search-heavy endpoints, which spend the most
// quota, to 10 per minute per IP.
func NewSearchRateLimiter() *RateLimiter { return perIPPerMinute(10) }

// NewAIRateLimiter limits LLM-backed endpoints to 10 per minute per IP.
func NewAIRateLimiter() *RateLimiter { return perIPPerMinute(10) }

// NewJobRateLimiter limits async job submissions to 5 per minute per IP.
func NewJobRateLimiter() *RateLimiter { return perIPPerMinute(5) }
