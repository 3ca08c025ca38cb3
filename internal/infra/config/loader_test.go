package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soratobu/tempo/internal/domain"
)

func TestLoader_LoadMissingFileReturnsDefaults(t *testing.T) {
	l := NewLoader(t.TempDir())

	s, err := l.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), s)
}

func TestLoader_LoadCorruptFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte("{{{not toml"), 0o600))
	l := NewLoader(dir)

	s, err := l.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), s)
}

func TestLoader_SaveLoadRoundTrip(t *testing.T) {
	l := NewLoader(t.TempDir())

	want := domain.DefaultSettings()
	want.Pomodoro.WorkMinutes = 50
	want.Alerts.Notify = true
	require.NoError(t, l.Save(want))

	got, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoader_LoadPartialFileFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	content := "[pomodoro]\nwork_minutes = 45\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o600))
	l := NewLoader(dir)

	s, err := l.Load()

	require.NoError(t, err)
	assert.Equal(t, 45, s.Pomodoro.WorkMinutes)
	assert.Equal(t, 5, s.Pomodoro.ShortBreakMinutes)
	assert.Equal(t, 4, s.Pomodoro.CyclesBeforeLong)
}

func TestWatcher_ReportsSettingsChanges(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(dir)
	require.NoError(t, l.Save(domain.DefaultSettings()))

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	s := domain.DefaultSettings()
	s.Pomodoro.WorkMinutes = 30
	require.NoError(t, l.Save(s))

	select {
	case <-w.Events():
	case <-time.After(3 * time.Second):
		t.Fatal("no change event for settings write")
	}
}
