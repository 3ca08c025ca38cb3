package domain

import "time"

// MaxLaps bounds the stopwatch lap list.
const MaxLaps = 99

// Stopwatch wraps an unbounded clock with a lap recorder. Each recorded lap
// is the split since the previous lap mark.
type Stopwatch struct {
	Clock Clock
	Laps  []time.Duration
}

// NewStopwatch returns a stopped stopwatch with no laps.
func NewStopwatch() Stopwatch {
	return Stopwatch{Clock: NewStopwatchClock()}
}

// RecordLap captures the split since the last mark and restarts the split
// accumulator. Zero-length splits and laps beyond MaxLaps are dropped.
func (s *Stopwatch) RecordLap(now time.Time) {
	if len(s.Laps) >= MaxLaps {
		return
	}
	lap := s.Clock.Lap(now)
	if lap > 0 {
		s.Laps = append(s.Laps, lap)
	}
}

// Reset clears the clock and all recorded laps.
func (s *Stopwatch) Reset() {
	s.Clock.Reset()
	s.Laps = nil
}
