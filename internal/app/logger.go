package app

import (
	"io"
	"log/slog"
)

// newLogger builds the diagnostics logger for one invocation. It never
// touches slog's default logger, so tests can run processors side by side.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
