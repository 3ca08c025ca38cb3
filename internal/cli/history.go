package cli

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/soratobu/tempo/internal/app"
	"github.com/soratobu/tempo/internal/domain"
)

const defaultHistoryLimit = 20

// sessionJSON is the stable wire shape for history --json output.
type sessionJSON struct {
	FinishedAt time.Time `json:"finished_at"`
	Kind       string    `json:"kind"`
	Label      string    `json:"label"`
	DurationMS int64     `json:"duration_ms"`
}

// newHistoryCommand creates the history command.
func newHistoryCommand(c *app.Container) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List finished sessions",
		Long:  `List finished pomodoro phases and expired countdowns, most recent first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sessions, err := c.History.Recent(limit)
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}

			w := cmd.OutOrStdout()

			if asJSON {
				out := make([]sessionJSON, 0, len(sessions))
				for _, s := range sessions {
					out = append(out, sessionJSON{
						FinishedAt: s.FinishedAt,
						Kind:       string(s.Kind),
						Label:      s.Label,
						DurationMS: s.Duration.Milliseconds(),
					})
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(w, "No sessions recorded yet.")
				return nil
			}
			for _, s := range sessions {
				_, _ = fmt.Fprintf(w, "%s  %-12s %-20s %s\n",
					s.FinishedAt.Local().Format("2006-01-02 15:04"),
					s.Kind,
					s.Label,
					domain.FormatHMS(s.Duration),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "Maximum number of sessions to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
