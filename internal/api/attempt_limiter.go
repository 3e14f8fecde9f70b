package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	loginFailureLimit  = 8
	loginFailureWindow = 15 * time.Minute
)

// attemptLimiter blocks a client after limit failures inside a sliding
// window. Clients are keyed by remote IP.
type attemptLimiter struct {
	limit  int
	window time.Duration

	mu       sync.Mutex
	failures map[string][]time.Time
}

func newAttemptLimiter(limit int, window time.Duration) *attemptLimiter {
	return &attemptLimiter{
		limit:    limit,
		window:   window,
		failures: make(map[string][]time.Time),
	}
}

func newLoginLimiter() *attemptLimiter {
	return newAttemptLimiter(loginFailureLimit, loginFailureWindow)
}

func (limiter *attemptLimiter) blocked(c *fiber.Ctx, now time.Time) bool {
	return limiter.blockedKey(clientKey(c), now)
}

func (limiter *attemptLimiter) recordFailure(c *fiber.Ctx, now time.Time) {
	limiter.recordFailureKey(clientKey(c), now)
}

func (limiter *attemptLimiter) forget(c *fiber.Ctx) {
	limiter.forgetKey(clientKey(c))
}

func (limiter *attemptLimiter) blockedKey(key string, now time.Time) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	return len(limiter.activeLocked(key, now)) >= limiter.limit
}

func (limiter *attemptLimiter) recordFailureKey(key string, now time.Time) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	limiter.failures[key] = append(limiter.activeLocked(key, now), now)
}

func (limiter *attemptLimiter) forgetKey(key string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	delete(limiter.failures, key)
}

// activeLocked drops failures older than the window and returns the rest.
func (limiter *attemptLimiter) activeLocked(key string, now time.Time) []time.Time {
	recorded := limiter.failures[key]
	if len(recorded) == 0 {
		return nil
	}

	threshold := now.Add(-limiter.window)
	active := recorded[:0]
	for _, at := range recorded {
		if at.After(threshold) {
			active = append(active, at)
		}
	}

	if len(active) == 0 {
		delete(limiter.failures, key)
		return nil
	}
	limiter.failures[key] = active
	return active
}

func clientKey(c *fiber.Ctx) string {
	if key := strings.TrimSpace(c.IP()); key != "" {
		return key
	}
	return "unknown"
}
