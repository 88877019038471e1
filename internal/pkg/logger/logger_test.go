package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestComponentTagsJSONOutput(t *testing.T) {
	t.Cleanup(func() { Configure(Options{Level: zerolog.InfoLevel, Pretty: true}) })

	var buf bytes.Buffer
	Configure(Options{Level: zerolog.WarnLevel, Output: &buf})

	lgr := Component("http")
	lgr.Info().Msg("dropped")
	lgr.Warn().Msg("kept")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "http", line["component"])
	assert.Equal(t, "kept", line["message"])
	assert.Equal(t, "warn", line["level"])
}
