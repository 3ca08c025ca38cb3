package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStopwatch_RecordLap(t *testing.T) {
	s := NewStopwatch()
	s.Clock.Start(at(0))

	s.RecordLap(at(5000))
	s.RecordLap(at(8000))

	assert.Equal(t, []time.Duration{5 * time.Second, 3 * time.Second}, s.Laps)
}

func TestStopwatch_RecordLapWhileStoppedIsDropped(t *testing.T) {
	s := NewStopwatch()
	s.RecordLap(at(1000))
	assert.Empty(t, s.Laps, "zero-length splits are not recorded")
}

func TestStopwatch_LapLimit(t *testing.T) {
	s := NewStopwatch()
	s.Clock.Start(at(0))

	for i := 1; i <= MaxLaps+5; i++ {
		s.RecordLap(at(int64(i) * 1000))
	}

	assert.Len(t, s.Laps, MaxLaps)
}

func TestStopwatch_Reset(t *testing.T) {
	s := NewStopwatch()
	s.Clock.Start(at(0))
	s.RecordLap(at(1000))

	s.Reset()

	assert.Empty(t, s.Laps)
	assert.Equal(t, ClockStopped, s.Clock.State())
}
