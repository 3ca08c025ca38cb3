package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soratobu/tempo/internal/domain"
)

func TestCountdownStore_LoadMissingFile(t *testing.T) {
	s := NewCountdownStore(t.TempDir())

	entries, err := s.Load()

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCountdownStore_SaveLoadRoundTrip(t *testing.T) {
	s := NewCountdownStore(t.TempDir())

	want := []domain.CountdownEntry{
		{Name: "tea", Duration: 3 * time.Minute},
		{Name: "烏龍茶", Duration: 90 * time.Second},
		{Name: "pâte à choux", Duration: 25 * time.Minute},
	}
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got, "order and non-ASCII names survive the round trip")
}

func TestCountdownStore_SaveEmptyList(t *testing.T) {
	s := NewCountdownStore(t.TempDir())

	require.NoError(t, s.Save([]domain.CountdownEntry{{Name: "a", Duration: time.Minute}}))
	require.NoError(t, s.Save(nil))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCountdownStore_LoadCorruptFileYieldsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CountdownsFileName), []byte(":\n\t- bad"), 0o600))
	s := NewCountdownStore(dir)

	entries, err := s.Load()

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCountdownStore_LoadSkipsNonPositiveDurations(t *testing.T) {
	dir := t.TempDir()
	content := "- name: ok\n  duration_ms: 1000\n- name: broken\n  duration_ms: 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, CountdownsFileName), []byte(content), 0o600))
	s := NewCountdownStore(dir)

	entries, err := s.Load()

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ok", entries[0].Name)
}
