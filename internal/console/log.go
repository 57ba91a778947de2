// Package console renders converter progress and tables for a terminal.
package console

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger creates a text slog logger writing to w at the given level.
// Supported levels: "debug", "info", "warn", "error". Defaults to "warn" if
// the level string is not recognised.
func NewLogger(level string, w io.Writer) *slog.Logger {
	var slevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slevel = slog.LevelDebug
	case "info":
		slevel = slog.LevelInfo
	case "warn":
		slevel = slog.LevelWarn
	case "error":
		slevel = slog.LevelError
	default:
		slevel = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slevel}))
}
