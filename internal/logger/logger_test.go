package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"command": "theme", "seed": "#3491fa"})
	log.Info("composing palette")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "composing palette", entry["message"])
	require.Equal(t, "theme", entry["command"])
	require.Equal(t, "#3491fa", entry["seed"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDefaultsToWarn(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Info("hidden")
	log.Debug("hidden")
	require.Equal(t, "", strings.TrimSpace(buf.String()))

	log.Warn("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"key": "warning"})
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "warning", entry["key"])
	require.Equal(t, "boom", entry["error"])
}

func TestZerologSharesConfiguration(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	zl := log.Zerolog()
	zl.Info().Msg("filtered")
	zl.Warn().Str("key", "border").Msg("kept")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "border", entry["key"])
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("x")
		nilLogger.Error(errors.New("x"), "x")
		_ = nilLogger.WithFields(map[string]any{"a": 1})
		zl := nilLogger.Zerolog()
		zl.Warn().Msg("x")
		Nop().Warn("x")
	})
}

func TestLoggerHumanReadableWritesConsoleLines(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: " Info ", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"seed": "#3491fa"}).Info("expanding seed")

	out := buf.String()
	require.Contains(t, out, "expanding seed")
	require.Contains(t, out, "seed=")
	require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
