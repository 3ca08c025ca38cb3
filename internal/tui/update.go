package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/soratobu/tempo/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(msg.Width-8, 50)
		return m, nil

	case tea.FocusMsg:
		m.focused = true
		m.resumePump()
		return m, nil

	case tea.BlurMsg:
		// Stop waking up while backgrounded. Running clocks keep perfect
		// time regardless: elapsed is a function of timestamps, not ticks.
		m.focused = false
		m.stopPump()
		return m, nil

	case MsgTick:
		return m.handleTick()

	case MsgSettingsLoaded:
		m.applySettings(msg.Settings)
		return m, nil

	case MsgCountdownsLoaded:
		m.countdowns.SetEntries(msg.Entries)
		return m, nil

	case MsgSettingsChanged:
		m.logger.Info("config", "settings file changed, reloading")
		return m, tea.Batch(m.loadSettings(), m.waitForSettingsChange())

	case MsgError:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

// applySettings installs loaded settings. Alert toggles apply immediately;
// pomodoro durations feed the next clock replacement (advance or reset) so
// a running phase is never cut short or stretched in place.
func (m *Model) applySettings(s *domain.Settings) {
	m.settings = s
	m.pomodoro.WorkDuration = s.Pomodoro.WorkDuration()
	m.pomodoro.ShortBreak = s.Pomodoro.ShortBreakDuration()
	m.pomodoro.LongBreak = s.Pomodoro.LongBreakDuration()
	m.pomodoro.CyclesBeforeLong = s.Pomodoro.CyclesBeforeLong
	if m.pomodoro.Clock.State() == domain.ClockStopped && m.pomodoro.TotalCompleted == 0 {
		// Nothing has run yet; pick up the configured work duration now.
		m.pomodoro.Reset()
	}
}

// handleTick polls the active clock for expiry and requests transitions.
// Ticks are idempotent: they carry no time and only trigger reads of the
// clock, so a duplicate or stale tick does no harm.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.waitForTick()}
	if !m.pumping {
		// A tick raced a Stop; ignore it.
		return m, tea.Batch(cmds...)
	}

	now := m.now()
	switch m.mode {
	case ModePomodoro:
		if m.pomodoro.Clock.IsExpired(now) {
			m.pomodoro.Clock.Pause(now)
			finished := m.pomodoro.Phase
			duration := m.pomodoro.PhaseDuration()
			alertMsg := m.pomodoro.AdvancePhase()
			m.fireAlert(alertMsg)
			cmds = append(cmds, m.recordSession(domain.Session{
				Kind:       domain.SessionKindForPhase(finished),
				Label:      finished.Label(),
				Duration:   duration,
				FinishedAt: now,
			}))
			// Auto-start the next phase.
			m.pomodoro.Clock.Start(m.now())
		}

	case ModeCountdownRun:
		active := m.countdowns.Active()
		if active != nil && active.IsExpired(now) {
			entry, _ := m.countdowns.ActiveEntry()
			active.MarkExpired()
			m.countdowns.StopActive()
			m.stopPump()
			m.fireAlert(entry.Name + " expired!")
			cmds = append(cmds, m.recordSession(domain.Session{
				Kind:       domain.SessionCountdown,
				Label:      entry.Name,
				Duration:   entry.Duration,
				FinishedAt: now,
			}))
			m.mode = ModeCountdownList
		}

	case ModeStopwatch:
		// Nothing to poll; the tick exists to refresh the display.

	default:
		// No clock in this mode; stop pumping.
		m.stopPump()
	}

	return m, tea.Batch(cmds...)
}

// resumePump restarts the scheduler after a focus gain iff the current
// mode's clock is running.
func (m *Model) resumePump() {
	switch m.mode {
	case ModeStopwatch:
		if m.stopwatch.Clock.State() == domain.ClockRunning {
			m.startPump(tickFast)
		}
	case ModePomodoro:
		if m.pomodoro.Clock.State() == domain.ClockRunning {
			m.startPump(tickSlow)
		}
	case ModeCountdownRun:
		if active := m.countdowns.Active(); active != nil && active.State() == domain.ClockRunning {
			m.startPump(tickSlow)
		}
	}
}

// handleKeyMsg routes a key press. Overlays intercept input before
// mode-specific handling, in fixed priority: help > confirmExit > menu.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Key presses dismiss the previous notice/error.
	m.notice = ""
	m.err = nil

	if m.inputStage != inputNone {
		return m.handleInputKey(msg)
	}

	switch {
	case m.helpVisible:
		return m.handleHelpKey(msg)
	case m.confirmExit:
		return m.handleConfirmExitKey(msg)
	case m.menuVisible:
		return m.handleMenuKey(msg)
	}

	// Global keys available in every mode.
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.confirmExit = true
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = true
		return m, nil
	case key.Matches(msg, m.keys.Menu):
		m.menuVisible = true
		m.menuCursor = 0
		return m, nil
	}

	switch m.mode {
	case ModeSelect:
		return m.handleKeyModeSelect(msg)
	case ModePomodoro:
		return m.handleKeyPomodoro(msg)
	case ModeStopwatch:
		return m.handleKeyStopwatch(msg)
	case ModeCountdownList:
		return m.handleKeyCountdownList(msg)
	case ModeCountdownRun:
		return m.handleKeyCountdownRun(msg)
	case ModeSettings:
		return m.handleKeySettings(msg)
	}
	return m, nil
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Back):
		m.helpVisible = false
	}
	return m, nil
}

func (m *Model) handleConfirmExitKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Back):
		m.confirmExit = false
	}
	return m, nil
}

// Menu overlay entries, in display order.
var menuModes = []Mode{ModePomodoro, ModeStopwatch, ModeCountdownList, ModeSettings}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.menuCursor < len(menuModes)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		m.menuVisible = false
		m.switchMode(menuModes[m.menuCursor])
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Menu), key.Matches(msg, m.keys.Back):
		m.menuVisible = false
	}
	return m, nil
}

// switchMode leaves the current mode safely and enters target. Running
// clocks are paused (pomodoro, stopwatch) or discarded (countdown), the
// same as backing out of the mode by key.
func (m *Model) switchMode(target Mode) {
	if target == m.mode {
		return
	}
	m.leaveCurrentMode()
	m.mode = target
	if target == ModeSettings {
		m.settingsCursor = 0
	}
}

func (m *Model) leaveCurrentMode() {
	now := m.now()
	switch m.mode {
	case ModePomodoro:
		m.pomodoro.Clock.Pause(now)
	case ModeStopwatch:
		m.stopwatch.Clock.Pause(now)
	case ModeCountdownRun:
		m.countdowns.StopActive()
	}
	m.stopPump()
}

func (m *Model) handleKeyModeSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.modeCursor > 0 {
			m.modeCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.modeCursor < len(menuModes)-2 {
			m.modeCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		switch m.modeCursor {
		case 0:
			m.mode = ModePomodoro
		case 1:
			m.mode = ModeStopwatch
		case 2:
			m.mode = ModeCountdownList
		}
	case key.Matches(msg, m.keys.Settings):
		m.mode = ModeSettings
		m.settingsCursor = 0
	case key.Matches(msg, m.keys.Back):
		m.confirmExit = true
	}
	return m, nil
}

func (m *Model) handleKeyPomodoro(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()
	switch {
	case key.Matches(msg, m.keys.Enter):
		switch m.pomodoro.Clock.State() {
		case domain.ClockStopped, domain.ClockPaused:
			m.pomodoro.Clock.Start(now)
			m.startPump(tickSlow)
		case domain.ClockRunning:
			m.pomodoro.Clock.Pause(now)
			m.stopPump()
		}
	case key.Matches(msg, m.keys.Reset):
		m.pomodoro.Reset()
		m.stopPump()
	case key.Matches(msg, m.keys.Settings):
		m.switchMode(ModeSettings)
	case key.Matches(msg, m.keys.Back):
		m.leaveCurrentMode()
		m.mode = ModeSelect
	}
	return m, nil
}

func (m *Model) handleKeyStopwatch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()
	switch {
	case key.Matches(msg, m.keys.Enter):
		switch m.stopwatch.Clock.State() {
		case domain.ClockStopped, domain.ClockPaused:
			m.stopwatch.Clock.Start(now)
			m.startPump(tickFast)
		case domain.ClockRunning:
			m.stopwatch.Clock.Pause(now)
			m.stopPump()
		}
	case key.Matches(msg, m.keys.Lap):
		if m.stopwatch.Clock.State() == domain.ClockRunning {
			m.stopwatch.RecordLap(now)
		}
	case key.Matches(msg, m.keys.Reset):
		if m.stopwatch.Clock.State() != domain.ClockRunning {
			m.stopwatch.Reset()
		}
	case key.Matches(msg, m.keys.Back):
		m.leaveCurrentMode()
		m.mode = ModeSelect
	}
	return m, nil
}

func (m *Model) handleKeyCountdownList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.countdowns.CursorUp()
	case key.Matches(msg, m.keys.Down):
		m.countdowns.CursorDown()
	case key.Matches(msg, m.keys.Enter):
		if len(m.countdowns.Entries) > 0 {
			m.countdowns.StartSelected(m.now())
			m.mode = ModeCountdownRun
			m.startPump(tickSlow)
		}
	case key.Matches(msg, m.keys.New):
		return m.beginCountdownInput()
	case key.Matches(msg, m.keys.Delete):
		if len(m.countdowns.Entries) > 0 {
			m.countdowns.DeleteSelected()
			return m, m.saveCountdowns()
		}
	case key.Matches(msg, m.keys.Settings):
		m.switchMode(ModeSettings)
	case key.Matches(msg, m.keys.Back):
		m.mode = ModeSelect
	}
	return m, nil
}

func (m *Model) handleKeyCountdownRun(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()
	active := m.countdowns.Active()
	switch {
	case key.Matches(msg, m.keys.Enter):
		if active == nil {
			break
		}
		switch active.State() {
		case domain.ClockRunning:
			active.Pause(now)
			m.stopPump()
		case domain.ClockPaused:
			active.Start(now)
			m.startPump(tickSlow)
		}
	case key.Matches(msg, m.keys.Reset):
		// Back to the full configured duration, paused.
		m.countdowns.StartSelected(now)
		if a := m.countdowns.Active(); a != nil {
			a.Pause(now)
		}
		m.stopPump()
	case key.Matches(msg, m.keys.Back):
		m.countdowns.StopActive()
		m.stopPump()
		m.mode = ModeCountdownList
	}
	return m, nil
}

func (m *Model) handleKeySettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.settingsCursor < 2 {
			m.settingsCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		switch m.settingsCursor {
		case 0:
			m.settings.Alerts.Bell = !m.settings.Alerts.Bell
		case 1:
			m.settings.Alerts.Flash = !m.settings.Alerts.Flash
		case 2:
			m.settings.Alerts.Notify = !m.settings.Alerts.Notify
		}
		return m, m.saveSettings()
	case key.Matches(msg, m.keys.Back):
		m.mode = ModeSelect
	}
	return m, nil
}
