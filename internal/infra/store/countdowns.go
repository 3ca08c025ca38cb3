// Package store persists the countdown list as YAML. A file lock guards the
// list against two tempo instances clobbering each other's writes.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/soratobu/tempo/internal/domain"
)

// CountdownsFileName is the countdown list file inside the config dir.
const CountdownsFileName = "countdowns.yaml"

// lockTimeout bounds how long a save waits for another instance.
const lockTimeout = 2 * time.Second

// Ensure CountdownStore implements domain.CountdownStore.
var _ domain.CountdownStore = (*CountdownStore)(nil)

// countdownRecord is the on-disk shape of one entry. Durations are stored
// as milliseconds to keep the file editable and diff-friendly.
type countdownRecord struct {
	Name       string `yaml:"name"`
	DurationMS int64  `yaml:"duration_ms"`
}

// CountdownStore reads and writes the countdown list file.
type CountdownStore struct {
	dir  string
	lock *flock.Flock
}

// NewCountdownStore creates a store rooted at dir.
func NewCountdownStore(dir string) *CountdownStore {
	return &CountdownStore{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, CountdownsFileName+".lock")),
	}
}

// Path returns the full path of the countdowns file.
func (s *CountdownStore) Path() string {
	return filepath.Join(s.dir, CountdownsFileName)
}

// Load returns the persisted entries. A missing or undecodable file yields
// an empty list; persisted state is never allowed to break startup.
func (s *CountdownStore) Load() ([]domain.CountdownEntry, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var records []countdownRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, nil
	}

	entries := make([]domain.CountdownEntry, 0, len(records))
	for _, r := range records {
		if r.DurationMS <= 0 {
			continue
		}
		entries = append(entries, domain.CountdownEntry{
			Name:     r.Name,
			Duration: time.Duration(r.DurationMS) * time.Millisecond,
		})
	}
	return entries, nil
}

// Save writes all entries, replacing previous state. The write happens
// under the file lock and lands via a temp file rename.
func (s *CountdownStore) Save(entries []domain.CountdownEntry) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()
	locked, err := s.lock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil || !locked {
		return fmt.Errorf("lock countdowns file: %w", err)
	}
	defer s.lock.Unlock() //nolint:errcheck // unlock failure leaves a stale lock file at worst

	records := make([]countdownRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, countdownRecord{
			Name:       e.Name,
			DurationMS: e.Duration.Milliseconds(),
		})
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode countdowns: %w", err)
	}

	tmp := s.Path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write countdowns: %w", err)
	}
	if err := os.Rename(tmp, s.Path()); err != nil {
		return fmt.Errorf("replace countdowns: %w", err)
	}
	return nil
}
