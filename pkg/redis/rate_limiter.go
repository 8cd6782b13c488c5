package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// RateLimiterOptions represents options for rate limiting
type RateLimiterOptions struct {
	// MaxRequests is the number of requests allowed per key and window
	MaxRequests int
	// Window is the length of a counting window
	Window time.Duration
	// Namespace prefixes every counter key
	Namespace string
}

// Validate validates the rate limiter options
func (o RateLimiterOptions) Validate() error {
	if o.MaxRequests <= 0 {
		return fmt.Errorf("invalid max requests: %d, must be positive", o.MaxRequests)
	}
	if o.Window < time.Second {
		return fmt.Errorf("invalid window: %v, must be at least one second", o.Window)
	}
	return nil
}

// RateLimitResult is the outcome of a single Allow call
type RateLimitResult struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetIn   time.Duration
}

// RateLimiter is a distributed fixed-window rate limiter. Each key and window has one
// counter, incremented with INCR and expired with EXPIRE.
type RateLimiter struct {
	client *Client
	opts   RateLimiterOptions
	now    func() time.Time
}

// NewRateLimiter creates a new distributed rate limiter
func NewRateLimiter(client *Client, opts RateLimiterOptions) (*RateLimiter, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &RateLimiter{
		client: client,
		opts:   opts,
		now:    time.Now,
	}, nil
}

// Allow counts one request for key and reports whether it fits in the current window.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (RateLimitResult, error) {
	windowStart, resetIn := rl.currentWindow()
	counterKey := rl.counterKey(key, windowStart)

	rdb := rl.client.GetClient()
	value, err := rdb.Incr(ctx, counterKey).Result()
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("rate limiter counter %s: %w", counterKey, err)
	}

	// first hit of the window owns the expiry
	if value == 1 {
		if err := rdb.Expire(ctx, counterKey, rl.opts.Window).Err(); err != nil {
			return RateLimitResult{}, fmt.Errorf("rate limiter expiry %s: %w", counterKey, err)
		}
	}

	count := int(value)
	remaining := rl.opts.MaxRequests - count
	if remaining < 0 {
		remaining = 0
	}

	return RateLimitResult{
		Allowed:   count <= rl.opts.MaxRequests,
		Limit:     rl.opts.MaxRequests,
		Remaining: remaining,
		ResetIn:   resetIn,
	}, nil
}

func (rl *RateLimiter) currentWindow() (int64, time.Duration) {
	now := rl.now()
	window := rl.opts.Window
	start := now.Truncate(window)
	return start.Unix(), start.Add(window).Sub(now)
}

func (rl *RateLimiter) counterKey(key string, windowStart int64) string {
	prefix := "rate_limiter"
	if rl.opts.Namespace != "" {
		prefix = rl.opts.Namespace + ":" + prefix
	}
	return prefix + ":" + key + ":" + strconv.FormatInt(windowStart, 10)
}
