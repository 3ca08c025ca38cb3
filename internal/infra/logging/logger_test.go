package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Info(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("sched", "test message")

	content, err := os.ReadFile(filepath.Join(dir, "logs", "tempo.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[sched]")
	assert.Contains(t, string(content), "test message")
}

func TestLogger_LevelFiltering(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Info("tui", "filtered out")
	logger.Warn("tui", "kept")

	content, err := os.ReadFile(filepath.Join(dir, "logs", "tempo.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "filtered out")
	assert.Contains(t, string(content), "kept")
}

func TestLogger_DisabledWithEmptyDir(t *testing.T) {
	logger := New("", slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Must not panic or create files anywhere.
	logger.Error("tui", "nowhere to go")
}
