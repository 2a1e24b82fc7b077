package ratelimit

import (
	"testing"
	"time"
)

// fakeClock advances manually.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newFake() (*ActionLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	return NewWithClock(clock.now), clock
}

func TestFirstActionAllowed(t *testing.T) {
	l, _ := newFake()
	ok, _ := l.Allow()
	if !ok {
		t.Fatal("first action should be allowed")
	}
}

func TestMinInterval(t *testing.T) {
	l, clock := newFake()
	l.Allow()

	clock.advance(200 * time.Millisecond)
	ok, wait := l.Allow()
	if ok {
		t.Fatal("action 200ms after the last should be rejected")
	}
	if wait != 300*time.Millisecond {
		t.Errorf("wait hint = %v, want 300ms", wait)
	}

	clock.advance(300 * time.Millisecond)
	if ok, _ := l.Allow(); !ok {
		t.Error("action at the 500ms boundary should be allowed")
	}
}

func TestSustainedCap(t *testing.T) {
	l, clock := newFake()

	// Paced exactly at the 500ms floor, the per-minute budget runs out
	// after the burst is spent.
	allowed := 0
	for i := 0; i < 20; i++ {
		if ok, _ := l.Allow(); ok {
			allowed++
		}
		clock.advance(500 * time.Millisecond)
	}
	// 10 seconds at 30/min earns 5 tokens on top of the burst of 5.
	if allowed > 11 {
		t.Errorf("allowed %d actions in 10s, cap should bind near 10", allowed)
	}
	if allowed < 5 {
		t.Errorf("allowed only %d actions, burst should permit at least 5", allowed)
	}
}

func TestRejectionDoesNotConsume(t *testing.T) {
	l, clock := newFake()
	l.Allow()

	// Hammering inside the interval must not push the next legal slot out.
	for i := 0; i < 10; i++ {
		clock.advance(10 * time.Millisecond)
		if ok, _ := l.Allow(); ok {
			t.Fatal("action inside the interval should be rejected")
		}
	}
	clock.advance(500 * time.Millisecond)
	if ok, _ := l.Allow(); !ok {
		t.Error("action after the interval should be allowed despite prior rejections")
	}
}
