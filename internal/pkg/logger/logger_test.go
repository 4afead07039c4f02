package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true}) })

	lgr := Component("rooms")
	lgr.Info().Int64("roomID", 7).Msg("room checked")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "rooms", entry["component"])
	assert.Equal(t, "room checked", entry["message"])
	assert.Equal(t, float64(7), entry["roomID"])
	assert.Contains(t, entry, "time")
}

func TestConfigureFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true}) })

	Info().Msg("hidden")
	assert.Empty(t, buf.String())

	Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestToZerologLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, toZerologLevel("DEBUG"))
	assert.Equal(t, zerolog.ErrorLevel, toZerologLevel(ErrorLevel))
	assert.Equal(t, zerolog.InfoLevel, toZerologLevel("verbose"))
}
