// Package log builds the zerolog logger used by the CLI.
package log

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w.
// Debug events are emitted only when debug is true; otherwise the logger is disabled.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.Disabled
	if debug {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.Kitchen,
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}
