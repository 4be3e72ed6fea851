// Package logging builds the charmbracelet logger used across the puzzle,
// optionally writing to a size-rotated file.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/tui-128/internal/config"
)

// New creates a logger for cfg. When cfg.File is set, output goes to a
// rolling file; otherwise it goes to fallback (os.Stderr when nil).
// The returned closer releases the file and is never nil.
func New(cfg config.LogConfig, prefix string, fallback io.Writer) (*log.Logger, io.Closer) {
	var w io.Writer = fallback
	var closer io.Closer = nopCloser{}

	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   expandHome(cfg.File),
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     7, // days
		}
		w = lj
		closer = lj
	}
	if w == nil {
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           ParseLevel(cfg.Level),
	})
	return logger, closer
}

// ParseLevel maps a config level name to a log level, defaulting to info.
func ParseLevel(name string) log.Level {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
