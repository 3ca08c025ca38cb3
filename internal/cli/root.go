// Package cli provides the command-line interface for tempo.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/soratobu/tempo/internal/app"
	"github.com/soratobu/tempo/internal/tui"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to
// be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for tempo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tempo",
		Short: "Terminal timer: pomodoro, stopwatch, and countdowns",
		Long: `tempo is a terminal timing application with three modes:
a pomodoro cycler, a stopwatch with laps, and a list of named countdowns.

Running tempo without arguments opens the interactive TUI.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddCommand(
		newHistoryCommand(c),
		newConfigCommand(c),
	)

	return root
}

// launchTUI runs the interactive timer. Focus reporting is requested so the
// tick pump can be suspended while the terminal is backgrounded.
func launchTUI(c *app.Container) error {
	model := tui.New(c)
	defer model.Shutdown()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())
	_, err := p.Run()
	return err
}
