// Package ratelimit throttles battle actions. This is anti-spam, not a
// concurrency mechanism: sessions are already single-writer.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// minInterval is the floor between consecutive actions.
	minInterval = 500 * time.Millisecond
	// perMinute caps sustained action throughput.
	perMinute = 30
	// burst allows short flurries within the sustained cap.
	burst = 5
)

// ActionLimiter enforces both a minimum spacing between actions and a
// sustained actions-per-minute budget.
type ActionLimiter struct {
	mu      sync.Mutex
	last    time.Time
	limiter *rate.Limiter
	now     func() time.Time
}

// New creates a limiter using the wall clock.
func New() *ActionLimiter {
	return NewWithClock(time.Now)
}

// NewWithClock creates a limiter with an injectable clock for tests.
func NewWithClock(now func() time.Time) *ActionLimiter {
	return &ActionLimiter{
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), burst),
		now:     now,
	}
}

// Allow reports whether an action may proceed now. On rejection it
// returns a wait hint for the caller's message.
func (l *ActionLimiter) Allow() (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t := l.now()
	if !l.last.IsZero() {
		if elapsed := t.Sub(l.last); elapsed < minInterval {
			return false, minInterval - elapsed
		}
	}
	if !l.limiter.AllowN(t, 1) {
		res := l.limiter.ReserveN(t, 1)
		wait := res.DelayFrom(t)
		res.CancelAt(t)
		return false, wait
	}
	l.last = t
	return true, 0
}
