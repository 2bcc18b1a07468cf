package tesseract4d

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keepLogger(t *testing.T) {
	t.Helper()
	saved, savedDebug := Logger, Debug
	t.Cleanup(func() { Logger, Debug = saved, savedDebug })
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace": zerolog.TraceLevel,
		"DEBUG": zerolog.DebugLevel,
		"info":  zerolog.InfoLevel,
		"Warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
		"off":   zerolog.Disabled,
		"bogus": zerolog.InfoLevel,
		"":      zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestSetupLogging_Level(t *testing.T) {
	keepLogger(t)
	Debug = false
	var buf bytes.Buffer
	SetupLogging("warn", &buf)
	Logger.Info().Msg("hidden line")
	Logger.Warn().Msg("shown line")
	assert.NotContains(t, buf.String(), "hidden line")
	assert.Contains(t, buf.String(), "shown line")
}

func TestSetupLogging_DebugForcesLevel(t *testing.T) {
	keepLogger(t)
	Debug = true
	var buf bytes.Buffer
	SetupLogging("error", &buf)
	DebugLog("built %d things", 3)
	assert.Contains(t, buf.String(), "built 3 things")
}

func TestSetupLogging_NilSilences(t *testing.T) {
	keepLogger(t)
	SetupLogging("trace", nil)
	assert.Equal(t, zerolog.Disabled, Logger.GetLevel())
}

func TestDefaultLogger_HidesDebug(t *testing.T) {
	keepLogger(t)
	Debug = false
	assert.Equal(t, zerolog.InfoLevel, Logger.GetLevel())

	var buf bytes.Buffer
	Logger = Logger.Output(&buf)
	_, err := LoadConfig("", nil)
	require.NoError(t, err)
	DebugLogOnce("raster %d", 1)
	assert.Empty(t, buf.String(), "debug lines leaked before SetupLogging")

	Logger.Info().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
