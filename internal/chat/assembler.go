package chat

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/pawsyears/internal/prompts"
)

// ErrUnknownModel is returned in strict mode for ids missing from the registry.
var ErrUnknownModel = errors.New("chat: unknown model")

// Assembler builds the message list handed to the model client for a chat turn.
type Assembler struct {
	// Strict rejects model ids that are not in the registry instead of
	// falling back to the default prompt variant.
	Strict bool
}

// SystemPrompt returns the system prompt for selectedModel, applying the
// strict registry check.
func (a Assembler) SystemPrompt(selectedModel string, hints prompts.RequestHints) (string, error) {
	if _, ok := prompts.LookupChatModel(selectedModel); !ok {
		if a.Strict {
			return "", fmt.Errorf("%w: %q", ErrUnknownModel, selectedModel)
		}
		log.Warn().
			Str("model", selectedModel).
			Str("fallback", prompts.DefaultChatModel).
			Msg("Unknown model, using default system prompt")
	}
	return prompts.SystemPrompt(selectedModel, hints), nil
}

// Assemble returns system + history + user message. The system prompt is
// chosen by selectedModel.
func (a Assembler) Assemble(selectedModel string, hints prompts.RequestHints, history []llms.MessageContent, userText string) ([]llms.MessageContent, error) {
	system, err := a.SystemPrompt(selectedModel, hints)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("model", selectedModel).
		Int("system_len", len(system)).
		Int("history", len(history)).
		Msg("Assembled chat messages")

	messages := make([]llms.MessageContent, 0, len(history)+2)
	messages = append(messages, llms.TextParts(schema.ChatMessageTypeSystem, system))
	messages = append(messages, history...)
	messages = append(messages, llms.TextParts(schema.ChatMessageTypeHuman, userText))
	return messages, nil
}

// DocumentMessages returns the messages for generating a new document of
// kind from title. The system message is left out when the kind has no
// generation guide.
func DocumentMessages(kind prompts.ArtifactKind, title string) []llms.MessageContent {
	return withSystem(prompts.GenerationPrompt(kind), title)
}

// UpdateMessages returns the messages for revising an existing document.
// currentContent may be nil when the document is still empty.
func UpdateMessages(currentContent *string, kind prompts.ArtifactKind, description string) []llms.MessageContent {
	return withSystem(prompts.UpdateDocumentPrompt(currentContent, kind), description)
}

func withSystem(system, userText string) []llms.MessageContent {
	var messages []llms.MessageContent
	if system != "" {
		messages = append(messages, llms.TextParts(schema.ChatMessageTypeSystem, system))
	}
	return append(messages, llms.TextParts(schema.ChatMessageTypeHuman, userText))
}

// Transcript is a flattened, serializable view of a message list.
type Transcript []TranscriptEntry

// TranscriptEntry holds the concatenated text parts of one message.
type TranscriptEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Flatten converts messages into a Transcript. Non-text parts are skipped.
func Flatten(messages []llms.MessageContent) Transcript {
	out := make(Transcript, 0, len(messages))
	for _, m := range messages {
		var text string
		for _, part := range m.Parts {
			if tc, ok := part.(llms.TextContent); ok {
				text += tc.Text
			}
		}
		out = append(out, TranscriptEntry{Role: string(m.Role), Content: text})
	}
	return out
}
