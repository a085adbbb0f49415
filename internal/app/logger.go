package app

import (
	"io"
	"log/slog"
)

// NewLogger builds a logger writing to outW. level is one of "debug", "info",
// "warn" or "error" (anything else means info); format "json" selects the
// JSON handler, anything else text. The global logger is left alone.
func NewLogger(level, format string, outW io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}

	return slog.New(slog.NewTextHandler(outW, opts))
}
