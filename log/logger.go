// Package log is the process-wide logger of the generator. Output goes
// to stderr so generated code written to stdout stays clean.
package log

import (
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger().
	Level(zerolog.InfoLevel)

// SetVerbose switches between info and debug level output. Call before
// any extraction starts; the logger is not guarded for concurrent
// reconfiguration.
func SetVerbose(v bool) {
	level := zerolog.InfoLevel
	if v {
		level = zerolog.DebugLevel
	}
	logger = logger.Level(level)
}

func Debug() *zerolog.Event { return logger.Debug() }

func Info() *zerolog.Event { return logger.Info() }

func Error() *zerolog.Event { return logger.Error() }
