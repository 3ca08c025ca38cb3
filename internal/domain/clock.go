// Package domain contains the timing engine and core types for tempo.
// Nothing in this package performs I/O or reads the system clock; every
// operation takes the current time as an explicit argument so the engine
// stays a pure function of timestamps.
package domain

import "time"

// ClockState represents the lifecycle state of a Clock.
type ClockState int

const (
	ClockStopped ClockState = iota // Created or reset, nothing accumulated
	ClockRunning                   // Accumulating time since segment start
	ClockPaused                    // Frozen at the accumulated value
	ClockExpired                   // Countdown reached its target
)

// String returns the string representation of the state.
func (s ClockState) String() string {
	switch s {
	case ClockStopped:
		return "stopped"
	case ClockRunning:
		return "running"
	case ClockPaused:
		return "paused"
	case ClockExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Clock tracks elapsed time across start/pause/reset cycles using only
// caller-supplied timestamps. With a target it behaves as a countdown;
// without one it is an unbounded stopwatch.
//
// A Clock is a plain value. Owners that need a countdown with a different
// target replace the whole clock rather than mutating the target in place,
// since a new target needs a fresh accumulation baseline.
type Clock struct {
	segmentStart time.Time
	accumulated  time.Duration
	target       time.Duration
	state        ClockState
	hasTarget    bool
}

// NewStopwatchClock returns a stopped clock with no target.
func NewStopwatchClock() Clock {
	return Clock{state: ClockStopped}
}

// NewCountdownClock returns a stopped clock that expires once the elapsed
// time reaches target. A zero target is expired on the first poll.
func NewCountdownClock(target time.Duration) Clock {
	return Clock{state: ClockStopped, target: target, hasTarget: true}
}

// State returns the current clock state.
func (c *Clock) State() ClockState { return c.state }

// Target returns the countdown target, and whether one is set.
func (c *Clock) Target() (time.Duration, bool) { return c.target, c.hasTarget }

// Start begins or resumes accumulation at now. Starting a running clock is
// a no-op. Resuming from paused keeps the accumulated time.
func (c *Clock) Start(now time.Time) {
	if c.state == ClockRunning {
		return
	}
	c.segmentStart = now
	c.state = ClockRunning
}

// Pause freezes accumulation at now. Only a running clock can be paused.
func (c *Clock) Pause(now time.Time) {
	if c.state != ClockRunning {
		return
	}
	c.accumulated += saturatingSince(c.segmentStart, now)
	c.state = ClockPaused
}

// Reset clears all accumulated time and returns to the stopped state.
// The target, if any, is kept.
func (c *Clock) Reset() {
	c.accumulated = 0
	c.segmentStart = time.Time{}
	c.state = ClockStopped
}

// Elapsed returns the total running time observed so far. While running
// this includes the open segment up to now; otherwise it is the frozen
// accumulated value.
func (c *Clock) Elapsed(now time.Time) time.Duration {
	if c.state == ClockRunning {
		return c.accumulated + saturatingSince(c.segmentStart, now)
	}
	return c.accumulated
}

// Remaining returns the time left until expiry and whether the clock has a
// target at all. Saturates at zero once the target has been reached.
func (c *Clock) Remaining(now time.Time) (time.Duration, bool) {
	if !c.hasTarget {
		return 0, false
	}
	rem := c.target - c.Elapsed(now)
	if rem < 0 {
		rem = 0
	}
	return rem, true
}

// IsExpired reports whether a countdown clock has reached its target.
// Always false for a stopwatch clock.
func (c *Clock) IsExpired(now time.Time) bool {
	if !c.hasTarget {
		return false
	}
	return c.Elapsed(now) >= c.target
}

// MarkExpired records that the owner observed expiry. Polling callers pause
// or replace the clock afterwards, so this is informational.
func (c *Clock) MarkExpired() {
	c.state = ClockExpired
}

// Lap returns the elapsed time since the previous lap (or since start for
// the first lap) and restarts accumulation from now, keeping the clock
// running. Laps are splits between marks, not cumulative totals. Calling
// Lap on a clock that is not running is a no-op returning zero.
func (c *Clock) Lap(now time.Time) time.Duration {
	if c.state != ClockRunning {
		return 0
	}
	elapsed := c.Elapsed(now)
	c.accumulated = 0
	c.segmentStart = now
	return elapsed
}

// saturatingSince returns now-start clamped at zero, so skewed or
// out-of-order timestamps never produce negative segments.
func saturatingSince(start, now time.Time) time.Duration {
	d := now.Sub(start)
	if d < 0 {
		return 0
	}
	return d
}
