package logpkg

import (
	"bytes"
	"testing"

	"github.com/go-petr/household/pkg/configpkg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevel(t *testing.T) {
	testCases := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{"Debug", "debug", zerolog.DebugLevel},
		{"Warn", "warn", zerolog.WarnLevel},
		{"Empty", "", zerolog.InfoLevel},
		{"Unknown", "loud", zerolog.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(&buf, configpkg.Config{LogLevel: tc.level})
			require.Equal(t, tc.want, l.GetLevel())
		})
	}
}

func TestNewLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, configpkg.Config{Environment: "production", LogLevel: "info"})

	l.Debug().Msg("hidden")
	l.Info().Str("currency", "EUR").Msg("household income")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `"currency":"EUR"`)
	require.Contains(t, out, `"message":"household income"`)
	require.Contains(t, out, `"time":`)
	require.NotContains(t, out, `"caller":`)
}

func TestNewLoggerDevelopmentCaller(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, configpkg.Config{Environment: "development", LogLevel: "trace"})

	l.Trace().Msg("trace")
	require.Contains(t, buf.String(), `"caller":`)
}
