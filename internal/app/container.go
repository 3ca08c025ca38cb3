// Package app provides the dependency injection container for tempo.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/soratobu/tempo/internal/domain"
	"github.com/soratobu/tempo/internal/infra/alert"
	"github.com/soratobu/tempo/internal/infra/config"
	"github.com/soratobu/tempo/internal/infra/history"
	"github.com/soratobu/tempo/internal/infra/logging"
	"github.com/soratobu/tempo/internal/infra/store"
)

// Paths holds the application file locations.
type Paths struct {
	ConfigDir   string // Base config directory (e.g. ~/.config/tempo)
	HistoryPath string // Path to history.db
}

// defaultPaths resolves the config directory from the XDG layout.
func defaultPaths() (Paths, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, fmt.Errorf("resolve home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	dir := filepath.Join(configHome, "tempo")
	return Paths{
		ConfigDir:   dir,
		HistoryPath: filepath.Join(dir, "history.db"),
	}, nil
}

// Container provides dependency injection for the application.
// It holds all port implementations behind their domain interfaces.
type Container struct {
	Settings   domain.SettingsStore
	Countdowns domain.CountdownStore
	History    domain.HistoryStore
	Alerter    domain.Alerter
	Logger     domain.Logger

	Paths Paths

	log     *logging.Logger
	watcher *config.Watcher
}

// New creates a Container using the default config directory.
func New() (*Container, error) {
	paths, err := defaultPaths()
	if err != nil {
		return nil, err
	}
	return NewWithPaths(paths)
}

// NewWithPaths creates a Container rooted at explicit paths. Used by tests.
func NewWithPaths(paths Paths) (*Container, error) {
	if err := os.MkdirAll(paths.ConfigDir, 0o750); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	logger := logging.New(paths.ConfigDir, logging.ParseLevel(os.Getenv("TEMPO_LOG_LEVEL")))

	hist, err := history.Open(paths.HistoryPath)
	if err != nil {
		return nil, err
	}

	return &Container{
		Settings:   config.NewLoader(paths.ConfigDir),
		Countdowns: store.NewCountdownStore(paths.ConfigDir),
		History:    hist,
		Alerter:    alert.New(os.Stderr, logger),
		Logger:     logger,
		Paths:      paths,
		log:        logger,
	}, nil
}

// SettingsWatcher lazily creates the settings file watcher. Returns nil
// when watching is unavailable; live reload is an optional convenience.
func (c *Container) SettingsWatcher() *config.Watcher {
	if c.watcher != nil {
		return c.watcher
	}
	w, err := config.NewWatcher(c.Paths.ConfigDir)
	if err != nil {
		c.Logger.Warn("config", "settings watcher unavailable: "+err.Error())
		return nil
	}
	c.watcher = w
	return w
}

// Close releases container resources.
func (c *Container) Close() error {
	var lastErr error
	if c.watcher != nil {
		if err := c.watcher.Close(); err != nil {
			lastErr = err
		}
	}
	if c.History != nil {
		if err := c.History.Close(); err != nil {
			lastErr = err
		}
	}
	if c.log != nil {
		if err := c.log.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
