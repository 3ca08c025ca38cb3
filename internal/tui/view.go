package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/soratobu/tempo/internal/domain"
)

// View renders the current screen.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var body string
	switch {
	case m.helpVisible:
		body = m.viewHelp()
	case m.confirmExit:
		body = m.viewConfirmExit()
	case m.menuVisible:
		body = m.viewMenu()
	case m.inputStage != inputNone:
		body = m.viewCountdownInput()
	default:
		switch m.mode {
		case ModeSelect:
			body = m.viewModeSelect()
		case ModePomodoro:
			body = m.viewPomodoro()
		case ModeStopwatch:
			body = m.viewStopwatch()
		case ModeCountdownList:
			body = m.viewCountdownList()
		case ModeCountdownRun:
			body = m.viewCountdownRun()
		case ModeSettings:
			body = m.viewSettings()
		}
	}

	header := m.styles.Header.Render(m.styles.HeaderText.Render("tempo — " + m.mode.Title()))
	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, header, body, m.viewStatus()))
}

func (m *Model) viewStatus() string {
	var b strings.Builder
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render(m.err.Error()))
		b.WriteString("\n")
	}
	if m.notice != "" {
		style := m.styles.Notice
		if m.settings.Alerts.Flash {
			style = m.styles.NoticeFlash
		}
		b.WriteString(style.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return b.String()
}

func (m *Model) viewModeSelect() string {
	labels := []string{ModePomodoro.Title(), ModeStopwatch.Title(), ModeCountdownList.Title()}
	var b strings.Builder
	for i, label := range labels {
		if i == m.modeCursor {
			b.WriteString(m.styles.ListSelected.Render("> " + label))
		} else {
			b.WriteString(m.styles.ListItem.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("enter: open  s: settings  ?: help"))
	return b.String()
}

func (m *Model) viewPomodoro() string {
	now := m.now()
	remaining, _ := m.pomodoro.Clock.Remaining(now)

	phase := m.styles.PhaseLabel.
		Foreground(PhaseColor(m.pomodoro.Phase)).
		Render(m.pomodoro.Phase.Label())

	timer := m.styles.Timer.Render(domain.FormatMS(remaining))
	if m.pomodoro.Clock.State() != domain.ClockRunning {
		timer = m.styles.TimerMuted.Render(domain.FormatMS(remaining))
	}

	bar := m.progress.ViewAs(m.pomodoro.ProgressFraction(now))

	cycles := m.styles.Footer.Render(fmt.Sprintf(
		"cycle %d/%d  ·  %d completed",
		m.pomodoro.CurrentCycle, m.pomodoro.CyclesBeforeLong, m.pomodoro.TotalCompleted,
	))

	return lipgloss.JoinVertical(lipgloss.Left, phase, "", timer, "", bar, "", cycles)
}

func (m *Model) viewStopwatch() string {
	now := m.now()
	elapsed := m.stopwatch.Clock.Elapsed(now)

	timer := m.styles.Timer.Render(domain.FormatHMSCentis(elapsed))
	if m.stopwatch.Clock.State() != domain.ClockRunning {
		timer = m.styles.TimerMuted.Render(domain.FormatHMSCentis(elapsed))
	}

	var b strings.Builder
	b.WriteString(timer)
	b.WriteString("\n")
	if n := len(m.stopwatch.Laps); n > 0 {
		b.WriteString("\n")
		// Newest first, like the physical stopwatch this mimics.
		for i := n - 1; i >= 0; i-- {
			b.WriteString(m.styles.LapIndex.Render(fmt.Sprintf("lap %02d  ", i+1)))
			b.WriteString(m.styles.LapTime.Render(domain.FormatHMSCentis(m.stopwatch.Laps[i])))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) viewCountdownList() string {
	if len(m.countdowns.Entries) == 0 {
		return m.styles.Footer.Render("No timers yet. Press n to create one.")
	}
	var b strings.Builder
	for i, e := range m.countdowns.Entries {
		line := fmt.Sprintf("%-20s %s", e.Name, domain.FormatMS(e.Duration))
		if i == m.countdowns.Cursor {
			b.WriteString(m.styles.ListSelected.Render("> " + line))
		} else {
			b.WriteString(m.styles.ListItem.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewCountdownRun() string {
	active := m.countdowns.Active()
	entry, ok := m.countdowns.ActiveEntry()
	if active == nil || !ok {
		return m.styles.Footer.Render("No timer running.")
	}

	now := m.now()
	remaining, _ := active.Remaining(now)

	name := m.styles.PhaseLabel.Render(entry.Name)
	timer := m.styles.Timer.Render(domain.FormatMS(remaining))
	if active.State() != domain.ClockRunning {
		timer = m.styles.TimerMuted.Render(domain.FormatMS(remaining))
	}
	bar := m.progress.ViewAs(m.countdowns.ProgressFraction(now))

	return lipgloss.JoinVertical(lipgloss.Left, name, "", timer, "", bar)
}

func (m *Model) viewSettings() string {
	rows := []struct {
		label string
		on    bool
	}{
		{"Terminal bell", m.settings.Alerts.Bell},
		{"Flash notice", m.settings.Alerts.Flash},
		{"Desktop notification", m.settings.Alerts.Notify},
	}

	var b strings.Builder
	for i, row := range rows {
		mark := "[ ]"
		if row.on {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, row.label)
		if i == m.settingsCursor {
			b.WriteString(m.styles.ListSelected.Render("> " + line))
		} else {
			b.WriteString(m.styles.ListItem.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(fmt.Sprintf(
		"Pomodoro: %dm work · %dm short · %dm long · %d cycles (edit %s)",
		m.settings.Pomodoro.WorkMinutes,
		m.settings.Pomodoro.ShortBreakMinutes,
		m.settings.Pomodoro.LongBreakMinutes,
		m.settings.Pomodoro.CyclesBeforeLong,
		domain.ConfigFileName,
	)))
	return b.String()
}

func (m *Model) viewCountdownInput() string {
	title := m.styles.DialogTitle.Render("New timer")
	var field string
	switch m.inputStage {
	case inputName:
		field = m.styles.InputPrompt.Render("Name: ") + m.nameInput.View()
	case inputDuration:
		field = m.styles.InputPrompt.Render("Duration (MM:SS): ") + m.durInput.View()
	}
	hint := m.styles.Footer.Render("enter: next  esc: cancel")
	return m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", field, "", hint))
}

func (m *Model) viewMenu() string {
	title := m.styles.DialogTitle.Render("Switch mode")
	var b strings.Builder
	for i, mode := range menuModes {
		if i == m.menuCursor {
			b.WriteString(m.styles.ListSelected.Render("> " + mode.Title()))
		} else {
			b.WriteString(m.styles.ListItem.Render("  " + mode.Title()))
		}
		if i < len(menuModes)-1 {
			b.WriteString("\n")
		}
	}
	return m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", b.String()))
}

func (m *Model) viewConfirmExit() string {
	title := m.styles.DialogTitle.Render("Quit tempo?")
	hint := m.styles.Footer.Render("y: quit  esc: stay")
	return m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", hint))
}

func (m *Model) viewHelp() string {
	return m.help.FullHelpView(m.keys.FullHelp())
}
