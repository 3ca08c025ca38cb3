// Package config loads and saves tempo settings from the config directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/soratobu/tempo/internal/domain"
)

// Ensure Loader implements domain.SettingsStore.
var _ domain.SettingsStore = (*Loader)(nil)

// Loader reads and writes settings.toml in a fixed directory.
type Loader struct {
	dir string
}

// NewLoader creates a Loader rooted at dir. The directory is created on the
// first save.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Path returns the full path of the settings file.
func (l *Loader) Path() string {
	return filepath.Join(l.dir, domain.ConfigFileName)
}

// Load returns the persisted settings. A missing or undecodable file yields
// the defaults; decoding problems are never surfaced as errors so a corrupt
// file can not keep the application from starting.
func (l *Loader) Load() (*domain.Settings, error) {
	data, err := os.ReadFile(l.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return domain.DefaultSettings(), err
	}

	s := domain.DefaultSettings()
	if err := toml.Unmarshal(data, s); err != nil {
		return domain.DefaultSettings(), nil
	}
	s.Normalize()
	return s, nil
}

// Save writes the settings atomically via a temp file rename.
func (l *Loader) Save(s *domain.Settings) error {
	if err := os.MkdirAll(l.dir, 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	tmp := l.Path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, l.Path()); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}
