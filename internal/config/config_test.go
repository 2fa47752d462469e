package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pawsyears.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[general]
default_model = "chat-model-reasoning"
strict_models = true

[log]
level = "debug"
format = "json"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "chat-model-reasoning", cfg.General.DefaultModel)
	assert.True(t, cfg.General.StrictModels)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Log.File)
	require.NoError(t, Validate(cfg))
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"warn\"\n")
	t.Setenv("PAWSYEARS_LOG_LEVEL", "error")
	t.Setenv("PAWSYEARS_GENERAL_DEFAULT_MODEL", "custom-model")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "custom-model", cfg.General.DefaultModel)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestInitConfig_WritesLoadableSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pawsyears.toml")
	require.NoError(t, InitConfig(path))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "chat-model", cfg.General.DefaultModel)
	require.NoError(t, Validate(cfg))

	assert.Error(t, InitConfig(path), "existing file must not be overwritten")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.General.DefaultModel = "chat-model"
		cfg.Log.Level = "info"
		cfg.Log.Format = "console"
		return cfg
	}

	require.NoError(t, Validate(valid()))

	cfg := valid()
	cfg.General.DefaultModel = ""
	assert.Error(t, Validate(cfg))

	cfg = valid()
	cfg.General.DefaultModel = "not-registered"
	assert.NoError(t, Validate(cfg), "permissive mode accepts unknown ids")
	cfg.General.StrictModels = true
	assert.Error(t, Validate(cfg))

	cfg = valid()
	cfg.Log.Level = "loud"
	assert.Error(t, Validate(cfg))

	cfg = valid()
	cfg.Log.Format = "xml"
	assert.Error(t, Validate(cfg))
}
