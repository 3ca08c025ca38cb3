package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soratobu/tempo/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_RecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.Record(domain.Session{
		Kind: domain.SessionWork, Label: "Work",
		Duration: 25 * time.Minute, FinishedAt: now,
	}))
	require.NoError(t, s.Record(domain.Session{
		Kind: domain.SessionCountdown, Label: "烏龍茶",
		Duration: 90 * time.Second, FinishedAt: now.Add(time.Hour),
	}))

	sessions, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	assert.Equal(t, domain.SessionCountdown, sessions[0].Kind, "most recent first")
	assert.Equal(t, "烏龍茶", sessions[0].Label)
	assert.Equal(t, 90*time.Second, sessions[0].Duration)
	assert.True(t, sessions[0].FinishedAt.Equal(now.Add(time.Hour)))

	assert.Equal(t, domain.SessionWork, sessions[1].Kind)
}

func TestStore_RecentLimit(t *testing.T) {
	s := openTestStore(t)
	now := time.Now()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(domain.Session{
			Kind: domain.SessionWork, Label: "Work",
			Duration: time.Minute, FinishedAt: now.Add(time.Duration(i) * time.Minute),
		}))
	}

	sessions, err := s.Recent(3)
	require.NoError(t, err)
	assert.Len(t, sessions, 3)
}

func TestStore_RecentEmpty(t *testing.T) {
	s := openTestStore(t)

	sessions, err := s.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(domain.Session{
		Kind: domain.SessionLongBreak, Label: "Long Break",
		Duration: 15 * time.Minute, FinishedAt: time.Now(),
	}))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	sessions, err := s2.Recent(10)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}
