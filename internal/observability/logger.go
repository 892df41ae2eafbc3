// Package observability configures structured logging for the CLI.
package observability

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// NewLogger returns a slog logger writing colored, human readable records to
// w. Debug records are kept only when verbose is set.
func NewLogger(w io.Writer, verbose bool, color bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !color,
	}))
}

// Setup installs a stderr logger as the slog default and returns it.
func Setup(verbose bool, color bool) *slog.Logger {
	logger := NewLogger(os.Stderr, verbose, color)
	slog.SetDefault(logger)
	return logger
}
