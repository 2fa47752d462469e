package cmd

import "github.com/urfave/cli/v2"

// GlobalFlags returns the flags shared by every command.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Load configuration from `FILE` (default: ./pawsyears.toml, then ~/.pawsyears.toml)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Override log.level for this run",
		},
	}
}

// Commands returns the top-level commands.
func Commands() []*cli.Command {
	return []*cli.Command{
		ModelsCommand(),
		PromptCommand(),
		ChatCommand(),
		ConfigCommand(),
	}
}
