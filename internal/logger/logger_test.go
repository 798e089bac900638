package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerWarnWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"value_type": "[]int", "strategy": "discrete"})
	log.Warn("no interpolation for value")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "no interpolation for value", entry["message"])
	require.Equal(t, "[]int", entry["value_type"])
	require.Equal(t, "discrete", entry["strategy"])
	require.Equal(t, "warn", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"ramp": "primary"})
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "primary", entry["ramp"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestFromZerologKeepsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := FromZerolog(zerolog.New(buf).Level(zerolog.ErrorLevel))

	log.Warn("dropped")
	require.Empty(t, buf.String())

	log.Error(nil, "kept")
	require.Contains(t, buf.String(), "kept")
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("ignored")
		log.Warn("ignored")
		require.Nil(t, log.WithFields(map[string]any{"a": 1}))
	})
}

func TestZerologExposesBase(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	base := log.Zerolog()
	base.Warn().Str("ramp", "dusk").Msg("from base")
	require.Contains(t, buf.String(), `"ramp":"dusk"`)
	require.Equal(t, zerolog.WarnLevel, base.GetLevel())

	var missing *Logger
	nop := missing.Zerolog()
	require.Equal(t, zerolog.Disabled, nop.GetLevel())
}

func TestStderrLoggerWarnsOnly(t *testing.T) {
	t.Parallel()

	base := Stderr().Zerolog()
	require.Equal(t, zerolog.WarnLevel, base.GetLevel())
}
