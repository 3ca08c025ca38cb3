package domain

import "time"

// SettingsStore loads and saves the application settings.
type SettingsStore interface {
	// Load returns the settings, falling back to defaults when the file is
	// missing or cannot be decoded. It never fails on bad content.
	Load() (*Settings, error)

	// Save writes the settings to disk.
	Save(s *Settings) error
}

// CountdownStore persists the countdown list.
type CountdownStore interface {
	// Load returns the persisted entries. Missing or corrupt state yields
	// an empty list, not an error.
	Load() ([]CountdownEntry, error)

	// Save writes all entries, replacing previous state.
	Save(entries []CountdownEntry) error
}

// SessionKind classifies a finished timing session in the history log.
type SessionKind string

// Session kinds recorded in the history store.
const (
	SessionWork       SessionKind = "work"
	SessionShortBreak SessionKind = "short_break"
	SessionLongBreak  SessionKind = "long_break"
	SessionCountdown  SessionKind = "countdown"
)

// Session is one finished timing session: a completed pomodoro phase or an
// expired countdown.
type Session struct {
	FinishedAt time.Time
	Kind       SessionKind
	Label      string
	Duration   time.Duration
}

// HistoryStore records finished sessions.
type HistoryStore interface {
	// Record appends a finished session.
	Record(s Session) error

	// Recent returns up to limit sessions, most recent first.
	Recent(limit int) ([]Session, error)

	// Close releases the underlying store.
	Close() error
}

// Alerter delivers expiry alerts. Fire must not block the caller.
type Alerter interface {
	Fire(cfg AlertSettings, message string)
}

// Logger is the application logging interface.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}
