package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
}

func TestSetup_JSONLevelFiltering(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer

	closer, err := Setup(Options{Level: "warn", Format: "json", Output: &buf})
	require.NoError(t, err)
	defer closer.Close()

	log.Info().Msg("hidden")
	log.Warn().Str("model", "x").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
	assert.Contains(t, buf.String(), `"model":"x"`)
}

func TestSetup_WritesLogFile(t *testing.T) {
	restoreLogger(t)
	path := filepath.Join(t.TempDir(), "logs", "pawsyears.log")
	var buf bytes.Buffer

	closer, err := Setup(Options{Level: "debug", Format: "console", File: path, Output: &buf})
	require.NoError(t, err)

	log.Debug().Msg("to both")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"to both"`)
	assert.Contains(t, buf.String(), "to both")
}

func TestSetup_InvalidLevel(t *testing.T) {
	restoreLogger(t)
	closer, err := Setup(Options{Level: "loud"})
	assert.Error(t, err)
	assert.NotNil(t, closer)
}
