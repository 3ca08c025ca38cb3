package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, 25*time.Minute, s.Pomodoro.WorkDuration())
	assert.Equal(t, 5*time.Minute, s.Pomodoro.ShortBreakDuration())
	assert.Equal(t, 15*time.Minute, s.Pomodoro.LongBreakDuration())
	assert.Equal(t, 4, s.Pomodoro.CyclesBeforeLong)
	assert.True(t, s.Alerts.Bell)
	assert.True(t, s.Alerts.Flash)
	assert.False(t, s.Alerts.Notify)
}

func TestSettings_Normalize(t *testing.T) {
	s := &Settings{
		Pomodoro: PomodoroSettings{WorkMinutes: 50, ShortBreakMinutes: -1},
	}

	s.Normalize()

	assert.Equal(t, 50, s.Pomodoro.WorkMinutes, "valid values are kept")
	assert.Equal(t, 5, s.Pomodoro.ShortBreakMinutes)
	assert.Equal(t, 15, s.Pomodoro.LongBreakMinutes)
	assert.Equal(t, 4, s.Pomodoro.CyclesBeforeLong)
}
