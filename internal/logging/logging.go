// Package logging configures the global zerolog logger.
//
// The TUI owns the terminal, so logs go to a file managed by lumberjack,
// which rotates it once it grows past MaxSizeMB.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	MaxSizeMB  = 10
	MaxBackups = 3
)

// Setup points the global logger at path with the given level.
// An empty path discards logs. The returned func closes the file.
func Setup(level, path string) (func() error, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if path == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    MaxSizeMB,
		MaxBackups: MaxBackups,
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	log.Debug().Str("path", path).Str("level", lvl.String()).Msg("logger initialized")
	return w.Close, nil
}
