// Package alert delivers expiry alerts: terminal bell and a best-effort
// desktop notification. Delivery never blocks the caller; the visual flash
// toggle is honored by the TUI itself since it owns the screen.
package alert

import (
	"io"
	"os/exec"

	"github.com/soratobu/tempo/internal/domain"
)

// Ensure Alerter implements domain.Alerter.
var _ domain.Alerter = (*Alerter)(nil)

// Alerter writes the bell to the terminal and shells out to notify-send.
type Alerter struct {
	bell   io.Writer
	logger domain.Logger
}

// New creates an Alerter. The bell writer is normally the terminal the TUI
// renders on; os.Stderr works because BEL is a non-printing byte.
func New(bell io.Writer, logger domain.Logger) *Alerter {
	return &Alerter{bell: bell, logger: logger}
}

// Fire delivers an alert according to cfg. Failures are logged and
// swallowed; an alert that cannot be delivered must not disturb the timers.
func (a *Alerter) Fire(cfg domain.AlertSettings, message string) {
	if cfg.Bell && a.bell != nil {
		if _, err := a.bell.Write([]byte{0x07}); err != nil {
			a.logger.Warn("alert", "bell write failed: "+err.Error())
		}
	}
	if cfg.Notify {
		go a.notify(message)
	}
	a.logger.Info("alert", message)
}

func (a *Alerter) notify(message string) {
	cmd := exec.Command("notify-send", "--app-name=tempo", "tempo", message)
	if err := cmd.Run(); err != nil {
		a.logger.Debug("alert", "notify-send failed: "+err.Error())
	}
}
