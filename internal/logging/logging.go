// Package logging builds the charmbracelet/log loggers used across brickgame.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickgame/internal/config"
)

// Prefix is the default logger prefix.
const Prefix = "brickgame"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger configured from cfg. When toFile is set and cfg.File
// is not empty, output goes to that file (created with its directories) so
// the terminal UI stays clean; otherwise it goes to stderr. The returned
// closer releases the file.
func New(cfg config.LogConfig, toFile bool) (*log.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)

	if toFile && cfg.File != "" {
		path, err := config.ExpandHome(cfg.File)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// ParseLevel parses a level name; empty means info.
func ParseLevel(s string) (log.Level, error) {
	if s == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: %w", err)
	}
	return level, nil
}

// Discard returns a logger that drops everything. Used by tests and by
// callers that have no logger yet.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
