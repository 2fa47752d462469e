package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/pawsyears/internal/config"
	"github.com/pawsyears/internal/geo"
	"github.com/pawsyears/internal/logging"
	"github.com/pawsyears/internal/prompts"
)

// loadRuntime loads and validates configuration and configures logging.
// The returned cleanup func must be called when the command finishes.
func loadRuntime(c *cli.Context) (*config.Config, func(), error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if override := c.String("log-level"); override != "" {
		cfg.Log.Level = override
	}

	if err := config.Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	closer, err := logging.Setup(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return cfg, func() { closer.Close() }, nil
}

// hintFlags are shared by every command that renders request context.
func hintFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "lat", Usage: "Latitude of the request origin"},
		&cli.StringFlag{Name: "lon", Usage: "Longitude of the request origin"},
		&cli.StringFlag{Name: "city", Usage: "City of the request origin"},
		&cli.StringFlag{Name: "country", Usage: "Country of the request origin"},
		&cli.StringSliceFlag{
			Name:  "header",
			Usage: "Geolocation header as `\"Name: value\"`; repeatable. Explicit flags win.",
		},
	}
}

// requestHints builds hints from --header values, then applies any
// explicitly set hint flags on top.
func requestHints(c *cli.Context) (prompts.RequestHints, error) {
	h, err := geo.ParseHeaderLines(c.StringSlice("header"))
	if err != nil {
		return prompts.RequestHints{}, err
	}
	hints := geo.FromHeader(h)

	set := func(name string, field **string) {
		if c.IsSet(name) {
			v := c.String(name)
			*field = &v
		}
	}
	set("lat", &hints.Latitude)
	set("lon", &hints.Longitude)
	set("city", &hints.City)
	set("country", &hints.Country)
	return hints, nil
}

func modelFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "model",
			Aliases: []string{"m"},
			Usage:   "Model identifier (defaults to general.default_model)",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Reject model identifiers that are not in the registry",
		},
	}
}

// selectedModel resolves the model and strictness from flags and config.
func selectedModel(c *cli.Context, cfg *config.Config) (string, bool) {
	model := cfg.General.DefaultModel
	if c.IsSet("model") {
		model = c.String("model")
	}
	return model, cfg.General.StrictModels || c.Bool("strict")
}
