// Package timing provides the simulation clock and named countdowns used by
// the game loop. Time is a monotonic offset from the start of a run, advanced
// explicitly by the loop, so every timer is deterministic under test.
package timing

import "time"

// Source is anything that reports the current simulation time.
type Source interface {
	Now() time.Duration
}

// Clock is a manually advanced monotonic clock.
// The zero value is a clock at the start of a run.
type Clock struct {
	now time.Duration
}

// NewClock creates a clock at the given offset.
func NewClock(start time.Duration) *Clock {
	return &Clock{now: start}
}

// Now returns the current simulation time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward. Negative durations are ignored so the
// clock never runs backwards.
func (c *Clock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// Reset rewinds the clock to zero. Only used between runs.
func (c *Clock) Reset() {
	c.now = 0
}

// TickDuration returns the length of one tick at the given rate.
func TickDuration(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
