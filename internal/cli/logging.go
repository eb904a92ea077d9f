package cli

import (
	"io"
	"log/slog"
)

// newLogger builds the diagnostic logger for a command.
// Verbose mode logs at debug level; otherwise only warnings and errors appear.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
