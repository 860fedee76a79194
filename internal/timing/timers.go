package timing

import "time"

// Name identifies a countdown in a Timers registry.
type Name string

// Timers tracks named deadlines against a Source.
// A timer is active from Start until its deadline; an unknown or cleared
// timer is inactive.
type Timers struct {
	clock     Source
	deadlines map[Name]time.Duration
}

// NewTimers creates an empty registry bound to a clock.
func NewTimers(clock Source) *Timers {
	return &Timers{
		clock:     clock,
		deadlines: make(map[Name]time.Duration),
	}
}

// Start (re)arms the named timer to expire d from now.
func (t *Timers) Start(name Name, d time.Duration) {
	t.deadlines[name] = t.clock.Now() + d
}

// Active reports whether the named timer is armed and not yet expired.
func (t *Timers) Active(name Name) bool {
	deadline, ok := t.deadlines[name]
	return ok && t.clock.Now() < deadline
}

// Ready reports whether the named cooldown has elapsed (or was never armed).
func (t *Timers) Ready(name Name) bool {
	return !t.Active(name)
}

// Remaining returns the time left on the named timer, or zero.
func (t *Timers) Remaining(name Name) time.Duration {
	deadline, ok := t.deadlines[name]
	if !ok {
		return 0
	}
	return max(deadline-t.clock.Now(), 0)
}

// Expired reports whether the named timer was armed and has run out. It
// disarms the timer, so each expiry is observed exactly once.
func (t *Timers) Expired(name Name) bool {
	deadline, ok := t.deadlines[name]
	if !ok || t.clock.Now() < deadline {
		return false
	}
	delete(t.deadlines, name)
	return true
}

// Clear disarms the named timer.
func (t *Timers) Clear(name Name) {
	delete(t.deadlines, name)
}

// Reset disarms every timer.
func (t *Timers) Reset() {
	clear(t.deadlines)
}

// Every reports whether interval has passed since the named timer was last
// triggered and, if so, re-arms it. A timer that was never armed starts
// counting now and does not fire.
func (t *Timers) Every(name Name, interval time.Duration) bool {
	if _, ok := t.deadlines[name]; !ok {
		t.Start(name, interval)
		return false
	}
	if t.Active(name) {
		return false
	}
	t.Start(name, interval)
	return true
}
