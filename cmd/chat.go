package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/pawsyears/internal/chat"
)

// ChatCommand returns the chat command
func ChatCommand() *cli.Command {
	return &cli.Command{
		Name:      "chat",
		Usage:     "Print the message list that would be sent to the model for MESSAGE",
		ArgsUsage: "MESSAGE",
		Flags:     append(modelFlags(), hintFlags()...),
		Action:    runChat,
	}
}

func runChat(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: MESSAGE")
	}

	cfg, cleanup, err := loadRuntime(c)
	if err != nil {
		return err
	}
	defer cleanup()

	hints, err := requestHints(c)
	if err != nil {
		return err
	}

	model, strict := selectedModel(c, cfg)
	messages, err := chat.Assembler{Strict: strict}.Assemble(model, hints, nil, strings.Join(c.Args().Slice(), " "))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(chat.Flatten(messages))
}
