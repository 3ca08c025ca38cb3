// Package tui provides the terminal user interface for tempo.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeSelect        Mode = iota // Top-level mode picker
	ModePomodoro                  // Pomodoro work/break cycler
	ModeStopwatch                 // Stopwatch with laps
	ModeCountdownList             // Countdown list browser
	ModeCountdownRun              // A running countdown
	ModeSettings                  // Alert settings
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSelect:
		return "select"
	case ModePomodoro:
		return "pomodoro"
	case ModeStopwatch:
		return "stopwatch"
	case ModeCountdownList:
		return "countdown_list"
	case ModeCountdownRun:
		return "countdown_run"
	case ModeSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Title returns the header title shown for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeSelect:
		return "tempo"
	case ModePomodoro:
		return "Pomodoro"
	case ModeStopwatch:
		return "Stopwatch"
	case ModeCountdownList, ModeCountdownRun:
		return "Countdowns"
	case ModeSettings:
		return "Settings"
	default:
		return "tempo"
	}
}

// OwnsClock reports whether the mode has a clock that ticks must poll or
// keep redrawn.
func (m Mode) OwnsClock() bool {
	switch m {
	case ModePomodoro, ModeStopwatch, ModeCountdownRun:
		return true
	case ModeSelect, ModeCountdownList, ModeSettings:
		return false
	}
	return false
}
