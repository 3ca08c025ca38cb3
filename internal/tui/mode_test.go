package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeSelect, "select"},
		{ModePomodoro, "pomodoro"},
		{ModeStopwatch, "stopwatch"},
		{ModeCountdownList, "countdown_list"},
		{ModeCountdownRun, "countdown_run"},
		{ModeSettings, "settings"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.mode.String())
	}
}

func TestMode_OwnsClock(t *testing.T) {
	assert.True(t, ModePomodoro.OwnsClock())
	assert.True(t, ModeStopwatch.OwnsClock())
	assert.True(t, ModeCountdownRun.OwnsClock())

	assert.False(t, ModeSelect.OwnsClock())
	assert.False(t, ModeCountdownList.OwnsClock())
	assert.False(t, ModeSettings.OwnsClock())
}

func TestMode_Title(t *testing.T) {
	for _, m := range []Mode{ModeSelect, ModePomodoro, ModeStopwatch, ModeCountdownList, ModeCountdownRun, ModeSettings} {
		assert.NotEmpty(t, m.Title())
	}
}
