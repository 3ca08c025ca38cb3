package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Clock control
	Enter key.Binding // Start/pause, or select
	Lap   key.Binding // Record a lap (stopwatch)
	Reset key.Binding // Reset the current clock

	// Countdown management
	New    key.Binding // Create a countdown entry
	Delete key.Binding // Delete the selected entry

	// View
	Settings key.Binding // Open settings
	Menu     key.Binding // Open the mode menu overlay
	Help     key.Binding // Toggle help overlay

	// General
	Back    key.Binding // Leave the current mode
	Quit    key.Binding // Ask to quit the application
	Confirm key.Binding // Confirm a dialog
	Escape  key.Binding // Dismiss a dialog
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/pause"),
		),
		Lap: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "lap"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new countdown"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Menu, k.Help, k.Back}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},            // Navigation
		{k.Lap, k.Reset},                   // Clock control
		{k.New, k.Delete},                  // Countdown management
		{k.Settings, k.Menu, k.Help},       // View
		{k.Back, k.Quit, k.Confirm, k.Escape}, // General
	}
}
