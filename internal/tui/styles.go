package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/soratobu/tempo/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	Work       lipgloss.Color
	ShortBreak lipgloss.Color
	LongBreak  lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	Work:       lipgloss.Color("#D63031"), // Red
	ShortBreak: lipgloss.Color("#00B894"), // Green
	LongBreak:  lipgloss.Color("#74B9FF"), // Light blue
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	Header     lipgloss.Style
	HeaderText lipgloss.Style

	Timer      lipgloss.Style
	TimerMuted lipgloss.Style
	PhaseLabel lipgloss.Style

	ListItem     lipgloss.Style
	ListSelected lipgloss.Style

	LapIndex lipgloss.Style
	LapTime  lipgloss.Style

	Notice      lipgloss.Style
	NoticeFlash lipgloss.Style
	ErrorMsg    lipgloss.Style
	Footer      lipgloss.Style

	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	InputPrompt lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(Colors.Muted).
			MarginBottom(1),
		HeaderText: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Timer: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal).
			Bold(true),
		TimerMuted: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		PhaseLabel: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),

		ListItem: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),
		ListSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		LapIndex: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		LapTime: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		Notice: lipgloss.NewStyle().
			Foreground(Colors.Success),
		NoticeFlash: lipgloss.NewStyle().
			Foreground(Colors.Warning).
			Reverse(true).
			Bold(true),
		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error),
		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Dialog: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(0, 1),
		DialogTitle: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Secondary),
	}
}

// PhaseColor returns the accent color for a pomodoro phase.
func PhaseColor(p domain.Phase) lipgloss.Color {
	switch p {
	case domain.PhaseWork:
		return Colors.Work
	case domain.PhaseShortBreak:
		return Colors.ShortBreak
	case domain.PhaseLongBreak:
		return Colors.LongBreak
	default:
		return Colors.Primary
	}
}
