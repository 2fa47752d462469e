package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/pawsyears/internal/prompts"
)

// EnvPrefix is the prefix for environment overrides, e.g. PAWSYEARS_LOG_LEVEL.
const EnvPrefix = "PAWSYEARS_"

// Config represents the application configuration
type Config struct {
	General struct {
		DefaultModel string `koanf:"default_model"`
		StrictModels bool   `koanf:"strict_models"`
	} `koanf:"general"`

	Log struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
		File   string `koanf:"file"`
	} `koanf:"log"`
}

// DefaultPaths are searched in order when no config path is given.
var DefaultPaths = []string{"./pawsyears.toml", "$HOME/.pawsyears.toml"}

// LoadConfig loads the configuration from a file
func LoadConfig(configPath string) (*Config, error) {
	var k = koanf.New(".")

	// Set up default configuration
	k.Load(confmap.Provider(map[string]interface{}{
		"general.default_model": prompts.DefaultChatModel,
		"general.strict_models": false,
		"log.level":             "info",
		"log.format":            "console",
		"log.file":              "",
	}, "."), nil)

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	} else {
		for _, path := range DefaultPaths {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
					break
				}
			}
		}
	}

	// PAWSYEARS_GENERAL_DEFAULT_MODEL -> general.default_model
	k.Load(env.Provider(EnvPrefix, ".", envKey), nil)

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &config, nil
}

// envKey maps an environment variable to a koanf key. Only the first
// underscore after the prefix separates section from key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, key, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	return section + "." + key
}

// InitConfig initializes a new configuration file
func InitConfig(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists at %s", configPath)
	}

	sampleConfig := `# PAWSYears Configuration

[general]
# Model used when no --model is given
default_model = "chat-model"
# Reject model ids that are not in the registry
strict_models = false

[log]
level = "info"
# console | json
format = "console"
# Optional log file; logs also go to stderr
file = ""
`

	return os.WriteFile(configPath, []byte(sampleConfig), 0644)
}

// Validate validates the configuration
func Validate(config *Config) error {
	if config.General.DefaultModel == "" {
		return fmt.Errorf("default model is required")
	}

	if config.General.StrictModels {
		if _, ok := prompts.LookupChatModel(config.General.DefaultModel); !ok {
			return fmt.Errorf("default model %s is not a registered model", config.General.DefaultModel)
		}
	}

	if _, err := zerolog.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", config.Log.Level, err)
	}

	switch config.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", config.Log.Format)
	}

	return nil
}
