// Package logging builds the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the logger.
type Options struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Unknown values fall back to info.
	Level string

	// Console enables human-readable console output instead of JSON.
	Console bool

	// Writer overrides the output destination (defaults to stderr).
	// Diagnostics must not share stdout with machine-readable command
	// output.
	Writer io.Writer
}

// New builds a logger from the options.
func New(opt Options) zerolog.Logger {
	var w io.Writer = os.Stderr
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(opt.Level)
	if err != nil || opt.Level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
