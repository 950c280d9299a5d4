package server

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// RateLimiter counts requests per key in fixed windows. A window opens on
// a key's first request and expires with its cache entry.
type RateLimiter struct {
	limit  int
	window time.Duration
	counts *cache.Cache
}

// NewRateLimiter allows limit requests per key per window. A non-positive
// limit disables limiting.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		limit:  limit,
		window: window,
		counts: cache.New(window, 2*window),
	}
}

// Allow records a request for key and reports whether it is within the limit.
func (rl *RateLimiter) Allow(key string) bool {
	if rl.limit <= 0 {
		return true
	}
	if err := rl.counts.Add(key, 1, rl.window); err == nil {
		return true
	}
	n, err := rl.counts.IncrementInt(key, 1)
	if err != nil {
		// The window expired between Add and IncrementInt.
		rl.counts.Set(key, 1, rl.window)
		return true
	}
	return n <= rl.limit
}
