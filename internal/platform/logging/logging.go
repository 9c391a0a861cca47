// Package logging configures the structured logger used by starhold commands.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console-format zerolog logger writing to out.
//
// Unknown level strings fall back to info rather than failing: logging must
// never prevent a game from starting.
func New(out io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}
