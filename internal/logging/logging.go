// Package logging wires log/slog for a process that owns the terminal.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a config level name onto a slog level. Empty means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}

// New builds a text logger writing to w. A nil writer discards everything.
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup installs the default logger. Logs go to path when set and are
// discarded otherwise, since stdout belongs to the TUI. The returned closer
// must be called on exit.
func Setup(path, levelName string) (io.Closer, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	if path == "" {
		slog.SetDefault(New(nil, level))
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	slog.SetDefault(New(f, level))
	return f, nil
}
