// Package logging configures the structured logger.
//
// The TUI owns the terminal, so logs normally go to a file under the user's
// state directory. The special path "-" selects stderr, which the
// non-interactive commands use.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// StderrPath selects stderr as the log destination.
const StderrPath = "-"

// ParseLevel maps a level name to a slog level. ok is false for unknown names,
// in which case info is returned.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// DefaultPath returns $XDG_STATE_HOME/flashdeck/flashdeck.log, falling back to
// ~/.local/state/flashdeck/flashdeck.log.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("finding home directory: %w", err)
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "flashdeck", "flashdeck.log"), nil
}

// New builds a JSON logger writing to w at the named level.
func New(w io.Writer, level string) *slog.Logger {
	lvl, ok := ParseLevel(level)
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "info")
	}
	return logger
}

// Setup opens the log destination, installs the logger as the slog default
// and returns it with a close function for the underlying file.
func Setup(path, level string) (*slog.Logger, func() error, error) {
	if path == StderrPath {
		logger := New(os.Stderr, level)
		slog.SetDefault(logger)
		return logger, func() error { return nil }, nil
	}

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := New(f, level)
	slog.SetDefault(logger)
	return logger, f.Close, nil
}

// Discard returns a logger that drops everything; handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
