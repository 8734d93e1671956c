package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Setup(&buf, "json", "debug"))
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	log.Debug().Str("component", "test").Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "test", line["component"])
	assert.Equal(t, "hello", line["message"])
}

func TestSetupLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Setup(&buf, "json", "warn"))
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	log.Info().Msg("dropped")
	assert.Empty(t, buf.String())
}

func TestSetupConsole(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Setup(&buf, "console", ""))

	log.Info().Msg("ready")
	assert.Contains(t, buf.String(), "ready")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestSetupBadLevel(t *testing.T) {
	assert.Error(t, Setup(&bytes.Buffer{}, "json", "loud"))
}
