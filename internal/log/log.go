// Package log configures the process wide structured logger.
package log

import (
	"log/slog"
	"os"
)

// New returns a text logger writing to stderr, keeping standard output
// reserved for report data. Verbose enables the debug level, otherwise
// only warnings and errors are emitted.
func New(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
