// Package logging configures the diagnostic logger. Diagnostics go to
// stderr and are off unless a level is set, so the game transcript on
// stdout is never interleaved with log lines.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at the named level.
// An unknown level falls back to disabled and is reported by the error.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.Disabled
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), err
}
