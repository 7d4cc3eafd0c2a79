package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "empty defaults to warn", level: ""},
		{name: "debug", level: "debug"},
		{name: "error", level: "error"},
		{name: "unknown", level: "chatty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, cleanup, err := New(tt.level, "")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger)
			cleanup()
		})
	}
}

func TestNewWriterFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWriter(&buf, "info")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("cleared table", zap.String("table", "prompts"))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "cleared table")
	assert.Contains(t, out, "prompts")
}

func TestNewWritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tools.log")
	logger, cleanup, err := New("info", path)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("seed complete", zap.Int("prompts", 15))
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"seed complete"`)
	assert.Contains(t, string(data), `"prompts":15`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewCleanupReleasesLogFile(t *testing.T) {
	if _, err := os.Stat("/proc/self/fd"); err != nil {
		t.Skip("needs /proc to inspect open files")
	}

	path := filepath.Join(t.TempDir(), "tools.log")
	logger, cleanup, err := New("info", path)
	require.NoError(t, err)

	logger.Info("reset complete")
	assert.True(t, holdsOpen(t, path), "log file is open while logging")

	cleanup()
	cleanup()
	assert.False(t, holdsOpen(t, path), "log file is closed after cleanup")
}

// holdsOpen reports whether this process has a descriptor open on path.
func holdsOpen(t *testing.T, path string) bool {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	require.NoError(t, err)
	for _, e := range entries {
		target, err := os.Readlink(filepath.Join("/proc/self/fd", e.Name()))
		if err == nil && target == path {
			return true
		}
	}
	return false
}
