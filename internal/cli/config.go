package cli

import (
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/soratobu/tempo/internal/app"
	"github.com/soratobu/tempo/internal/domain"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigInitCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective settings",
		Long:  `Display the effective settings as TOML, after defaults are applied.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := c.Settings.Load()
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "# %s\n", filepath.Join(c.Paths.ConfigDir, domain.ConfigFileName))

			enc := toml.NewEncoder(w)
			return enc.Encode(settings)
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		Long:  `Write a settings file with default values, overwriting any existing one.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.Settings.Save(domain.DefaultSettings()); err != nil {
				return fmt.Errorf("write settings: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n",
				filepath.Join(c.Paths.ConfigDir, domain.ConfigFileName))
			return nil
		},
	}
}
