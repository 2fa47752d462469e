package prompts

import "strings"

// SystemPrompt builds the system prompt for a chat turn. The reasoning model
// gets the persona and request context only; every other identifier,
// including ones missing from the registry, also gets the artifacts guide.
func SystemPrompt(selectedModel string, hints RequestHints) string {
	sections := []string{RegularPrompt, RequestPrompt(hints)}
	if selectedModel != ReasoningChatModel {
		sections = append(sections, ArtifactsPrompt)
	}
	return strings.Join(sections, fragmentSeparator)
}
