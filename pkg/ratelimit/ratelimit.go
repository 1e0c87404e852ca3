// Package ratelimit bounds how many model calls this process issues per window.
//
// It is a best-effort client-side guard, not a replacement for server-side
// quotas: state lives in memory and is lost on restart.
package ratelimit

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"
)

const (
	DefaultLimit  = 60
	DefaultWindow = time.Minute
)

// ErrRateLimitExceeded is returned when the window's budget is spent.
var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// Limiter is a fixed-window admission counter. The window rolls over lazily
// on the first call after it expires; there is no background timer.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	count   int
	resetAt time.Time
}

// Option customizes a Limiter.
type Option func(*Limiter)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// New creates a Limiter allowing limit calls per window.
// Non-positive arguments fall back to DefaultLimit / DefaultWindow.
func New(limit int, window time.Duration, opts ...Option) *Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}

	l := &Limiter{
		limit:  limit,
		window: window,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.resetAt = l.now().Add(l.window)
	return l
}

// CheckAndConsume admits one call or fails with ErrRateLimitExceeded.
// A rejected call does not consume budget.
func (l *Limiter) CheckAndConsume() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.After(l.resetAt) {
		l.count = 0
		l.resetAt = now.Add(l.window)
	}

	if l.count >= l.limit {
		wait := int(math.Ceil(l.resetAt.Sub(now).Seconds()))
		return fmt.Errorf("%w: too many requests, try again in %d seconds", ErrRateLimitExceeded, wait)
	}

	l.count++
	return nil
}

// Count returns the number of calls admitted in the current window.
func (l *Limiter) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// ResetAt returns when the current window ends.
func (l *Limiter) ResetAt() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.resetAt
}

// Limit returns the configured ceiling.
func (l *Limiter) Limit() int {
	return l.limit
}
