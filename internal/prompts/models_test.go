package prompts

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestChatModels_Registry(t *testing.T) {
	want := []ModelDescriptor{
		{ID: "chat-model", Name: "Research model", Description: "Primary model for quick-research chat"},
		{ID: "chat-model-reasoning", Name: "Deep Research model", Description: "Uses Advanced Research"},
	}
	if diff := cmp.Diff(want, ChatModels()); diff != "" {
		t.Fatalf("registry mismatch (-want +got):\n%s", diff)
	}
}

func TestChatModels_SingleDefault(t *testing.T) {
	seen := map[string]bool{}
	defaults := 0
	for _, m := range ChatModels() {
		assert.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
		if m.ID == DefaultChatModel {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestChatModels_ReturnsCopy(t *testing.T) {
	models := ChatModels()
	models[0].Name = "changed"

	assert.Equal(t, "Research model", ChatModels()[0].Name)
}

func TestLookupChatModel(t *testing.T) {
	m, ok := LookupChatModel(ReasoningChatModel)
	assert.True(t, ok)
	assert.Equal(t, "Deep Research model", m.Name)

	_, ok = LookupChatModel("unknown")
	assert.False(t, ok)
}
