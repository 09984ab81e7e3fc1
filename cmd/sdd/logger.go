package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns a human-readable debug logger on w, or a no-op logger when debug is off.
func newLogger(w io.Writer, debug bool) zerolog.Logger {
	if !debug {
		return zerolog.Nop()
	}
	writer := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: !colorEnabled(w)}
	return zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
