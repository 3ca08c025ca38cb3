package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/soratobu/tempo/internal/domain"
)

func TestView_LoadingBeforeFirstResize(t *testing.T) {
	h := newHarness(t)
	h.model.width = 0
	assert.Equal(t, "Loading...", h.model.View())
}

func TestView_StopwatchShowsElapsedAndLaps(t *testing.T) {
	h := newHarness(t)
	h.model.mode = ModeStopwatch

	h.send(t, specialKey(tea.KeyEnter))
	h.advance(2 * time.Second)
	h.send(t, keyPress('l'))
	h.advance(65 * time.Second)

	out := h.model.View()
	assert.Contains(t, out, "00:01:05.00")
	assert.Contains(t, out, "lap 01")
	assert.Contains(t, out, "00:00:02.00")
}

func TestView_PomodoroShowsPhaseAndRemaining(t *testing.T) {
	h := newHarness(t)
	h.model.mode = ModePomodoro

	h.send(t, specialKey(tea.KeyEnter))
	h.advance(5 * time.Minute)

	out := h.model.View()
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "20:00")
	assert.Contains(t, out, "cycle 0/4")
}

func TestView_CountdownListEmpty(t *testing.T) {
	h := newHarness(t)
	h.model.mode = ModeCountdownList
	assert.Contains(t, h.model.View(), "Press n to create one")
}

func TestView_ExpiryNoticeShown(t *testing.T) {
	h := newHarness(t)
	h.model.mode = ModeCountdownList
	h.model.countdowns.SetEntries([]domain.CountdownEntry{
		{Name: "Tea", Duration: time.Minute},
	})

	h.send(t, specialKey(tea.KeyEnter))
	h.advance(time.Minute + time.Second)
	h.send(t, MsgTick{})

	assert.Contains(t, h.model.View(), "Tea expired!")
}
