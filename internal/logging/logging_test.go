package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests mutate the global logger and must not run in parallel.

func TestSetup_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wordhub.log")

	closeFn, err := Setup("debug", path)
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	log.Info().Str("game", "wordle").Msg("hello")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"game":"wordle"`))
	assert.True(t, strings.Contains(string(data), `"message":"hello"`))
}

func TestSetup_BadLevelFallsBackToInfo(t *testing.T) {
	closeFn, err := Setup("loud", "")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.NoError(t, closeFn())
}

func TestSetup_RotatesLargeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wordhub.log")
	require.NoError(t, os.WriteFile(path, make([]byte, MaxSizeMB*1024*1024), 0o600))

	closeFn, err := Setup("info", path)
	require.NoError(t, err)
	log.Info().Msg("after rotation")
	require.NoError(t, closeFn())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "old log moved to a backup")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Less(t, len(data), 1024)
	assert.Contains(t, string(data), "after rotation")
}
