// Package logpkg builds application loggers.
package logpkg

import (
	"io"
	"os"
	"time"

	"github.com/go-petr/household/pkg/configpkg"
	"github.com/rs/zerolog"
)

// New returns a JSON logger on stderr at the configured level.
// In development it writes human readable output with caller info instead.
func New(config configpkg.Config) zerolog.Logger {
	var output io.Writer = os.Stderr
	if config.Environment == "development" {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return newLogger(output, config)
}

func newLogger(output io.Writer, config configpkg.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || config.LogLevel == "" {
		level = zerolog.InfoLevel // default to INFO
	}

	ctx := zerolog.New(output).
		Level(level).
		With().
		Timestamp()

	if config.Environment == "development" {
		ctx = ctx.Caller()
	}

	return ctx.Logger()
}
