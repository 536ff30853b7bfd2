package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console-formatted logger. verbose lowers the level to
// debug; quiet raises it
// to warn, suppressing the normal progress lines. quiet wins if both are
// set.
func New(verbose, quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case quiet:
		level = zerolog.WarnLevel
	case verbose:
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).With().Timestamp().Logger()
}

// Discard returns a logger that drops every event, used by library code
// exercised in tests or by callers that want to opt entirely out of logging.
func Discard() zerolog.Logger {
	return zerolog.New(io.Discard)
}
