package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/pawsyears/internal/chat"
	"github.com/pawsyears/internal/prompts"
)

// PromptCommand returns the prompt command
func PromptCommand() *cli.Command {
	return &cli.Command{
		Name:  "prompt",
		Usage: "Render prompts exactly as they are sent to the model",
		Subcommands: []*cli.Command{
			{
				Name:   "system",
				Usage:  "Render the system prompt for a chat turn",
				Flags:  append(modelFlags(), hintFlags()...),
				Action: runPromptSystem,
			},
			{
				Name:   "context",
				Usage:  "Render the request origin block only",
				Flags:  hintFlags(),
				Action: runPromptContext,
			},
			{
				Name:  "update",
				Usage: "Render the update instructions for an existing document",
				Flags: []cli.Flag{
					kindFlag(),
					&cli.StringFlag{
						Name:  "content",
						Usage: "Current document content",
					},
					&cli.PathFlag{
						Name:  "content-file",
						Usage: "Read current document content from `FILE`",
					},
				},
				Action: runPromptUpdate,
			},
			{
				Name:   "generate",
				Usage:  "Render the generation guide for a new document",
				Flags:  []cli.Flag{kindFlag()},
				Action: runPromptGenerate,
			},
		},
	}
}

func kindFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "kind",
		Aliases:  []string{"k"},
		Usage:    "Artifact kind: text, code, sheet or image",
		Required: true,
	}
}

func runPromptSystem(c *cli.Context) error {
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
	system, err := chat.Assembler{Strict: strict}.SystemPrompt(model, hints)
	if err != nil {
		return err
	}

	log.Debug().Str("model", model).Int("length", len(system)).Msg("Rendered system prompt")
	fmt.Fprint(c.App.Writer, system)
	return nil
}

func runPromptContext(c *cli.Context) error {
	hints, err := requestHints(c)
	if err != nil {
		return err
	}
	fmt.Fprint(c.App.Writer, prompts.RequestPrompt(hints))
	return nil
}

func runPromptUpdate(c *cli.Context) error {
	kind, err := prompts.ParseArtifactKind(c.String("kind"))
	if err != nil {
		return err
	}

	var content *string
	switch {
	case c.IsSet("content") && c.IsSet("content-file"):
		return fmt.Errorf("--content and --content-file are mutually exclusive")
	case c.IsSet("content"):
		v := c.String("content")
		content = &v
	case c.IsSet("content-file"):
		data, err := os.ReadFile(c.Path("content-file"))
		if err != nil {
			return fmt.Errorf("failed to read content file: %w", err)
		}
		v := string(data)
		content = &v
	}

	fmt.Fprint(c.App.Writer, prompts.UpdateDocumentPrompt(content, kind))
	return nil
}

func runPromptGenerate(c *cli.Context) error {
	kind, err := prompts.ParseArtifactKind(c.String("kind"))
	if err != nil {
		return err
	}
	fmt.Fprint(c.App.Writer, prompts.GenerationPrompt(kind))
	return nil
}
