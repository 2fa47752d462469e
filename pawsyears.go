package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pawsyears/cmd"
)

const (
	version = "0.1.0"
)

func main() {
	app := &cli.App{
		Name:     "pawsyears",
		Usage:    "Compose the prompts PAWSYears sends to its research models",
		Version:  version,
		Flags:    cmd.GlobalFlags(),
		Commands: cmd.Commands(),
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
