// Package applog configures the process-wide logger.
package applog

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup returns a console logger at info level, or debug when requested.
func Setup(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
