package prompts

// Model identifiers understood by the chat layer.
const (
	// DefaultChatModel is selected when the caller has no preference.
	DefaultChatModel = "chat-model"

	// ReasoningChatModel runs in text-only mode, so its system prompt
	// carries no artifact instructions.
	ReasoningChatModel = "chat-model-reasoning"
)

// ModelDescriptor is the display metadata for a selectable model.
type ModelDescriptor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// chatModels is fixed at build time. Consumers match on display names, so
// the strings must not change.
var chatModels = [...]ModelDescriptor{
	{
		ID:          DefaultChatModel,
		Name:        "Research model",
		Description: "Primary model for quick-research chat",
	},
	{
		ID:          ReasoningChatModel,
		Name:        "Deep Research model",
		Description: "Uses Advanced Research",
	},
}

// ChatModels returns the model registry in display order. The slice is a
// copy; modifying it does not affect the registry.
func ChatModels() []ModelDescriptor {
	out := make([]ModelDescriptor, len(chatModels))
	copy(out, chatModels[:])
	return out
}

// LookupChatModel returns the descriptor registered under id.
func LookupChatModel(id string) (ModelDescriptor, bool) {
	for _, m := range chatModels {
		if m.ID == id {
			return m, true
		}
	}
	return ModelDescriptor{}, false
}
