package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/pawsyears/internal/prompts"
)

// ModelsCommand returns the models command
func ModelsCommand() *cli.Command {
	return &cli.Command{
		Name:  "models",
		Usage: "List the selectable chat models",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the registry as JSON",
			},
		},
		Action: runModels,
	}
}

type modelEntry struct {
	prompts.ModelDescriptor
	Default bool `json:"default"`
}

func runModels(c *cli.Context) error {
	var entries []modelEntry
	for _, m := range prompts.ChatModels() {
		entries = append(entries, modelEntry{ModelDescriptor: m, Default: m.ID == prompts.DefaultChatModel})
	}

	out := c.App.Writer
	if c.Bool("json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for _, e := range entries {
		id := e.ID
		if e.Default {
			id += " (default)"
		}
		fmt.Fprintf(out, "%-24s %-20s %s\n", id, e.Name, e.Description)
	}
	return nil
}
