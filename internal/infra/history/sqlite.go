// Package history records finished timing sessions in a SQLite database so
// the `tempo history` command can report on past pomodoros and countdowns.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/soratobu/tempo/internal/domain"
)

// Ensure Store implements domain.HistoryStore.
var _ domain.HistoryStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	kind        TEXT NOT NULL,
	label       TEXT NOT NULL,
	duration_ms INTEGER NOT NULL,
	finished_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_finished_at ON sessions(finished_at);
`

// Store is a SQLite-backed session history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	// The TUI is the only writer; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record appends a finished session.
func (s *Store) Record(sess domain.Session) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (kind, label, duration_ms, finished_at) VALUES (?, ?, ?, ?)`,
		string(sess.Kind),
		sess.Label,
		sess.Duration.Milliseconds(),
		sess.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	return nil
}

// Recent returns up to limit sessions, most recent first.
func (s *Store) Recent(limit int) ([]domain.Session, error) {
	rows, err := s.db.Query(
		`SELECT kind, label, duration_ms, finished_at
		 FROM sessions ORDER BY finished_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var kind, label, finishedAt string
		var durationMS int64
		if err := rows.Scan(&kind, &label, &durationMS, &finishedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, finishedAt)
		if err != nil {
			// Skip rows with a timestamp we cannot read rather than
			// failing the whole listing.
			continue
		}
		sessions = append(sessions, domain.Session{
			Kind:       domain.SessionKind(kind),
			Label:      label,
			Duration:   time.Duration(durationMS) * time.Millisecond,
			FinishedAt: ts,
		})
	}
	return sessions, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
