package tui

import "github.com/soratobu/tempo/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method; other tea.Msg
// values (keys, window size, focus) come from the Bubble Tea runtime.
type Msg interface {
	sealed()
}

// MsgTick is a scheduler wake-up. It carries no time value; the handler
// reads the clock itself, so late or duplicate ticks are harmless.
type MsgTick struct{}

func (MsgTick) sealed() {}

// MsgSettingsLoaded is sent when settings are loaded or reloaded.
type MsgSettingsLoaded struct {
	Settings *domain.Settings
}

func (MsgSettingsLoaded) sealed() {}

// MsgCountdownsLoaded is sent when the persisted countdown list is loaded.
type MsgCountdownsLoaded struct {
	Entries []domain.CountdownEntry
}

func (MsgCountdownsLoaded) sealed() {}

// MsgSettingsChanged is sent when the settings file changes on disk.
type MsgSettingsChanged struct{}

func (MsgSettingsChanged) sealed() {}

// MsgError is sent when a background operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
