// Package logging wires slog to a tint handler for the CLI. Diagnostics
// (skipped files, resolved inputs) go through slog; the violation report
// has its own writer and never mixes with log output.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the default slog logger. Verbose lowers the level to
// Debug; otherwise only warnings and errors surface.
func Setup(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))
}
