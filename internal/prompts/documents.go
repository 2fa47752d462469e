package prompts

import (
	"errors"
	"fmt"
)

// ArtifactKind identifies the type of document shown beside the conversation.
type ArtifactKind string

const (
	ArtifactText  ArtifactKind = "text"
	ArtifactCode  ArtifactKind = "code"
	ArtifactSheet ArtifactKind = "sheet"
	ArtifactImage ArtifactKind = "image"
)

// ErrUnknownArtifactKind is returned by ParseArtifactKind.
var ErrUnknownArtifactKind = errors.New("prompts: unknown artifact kind")

// ArtifactKinds lists every recognized kind.
func ArtifactKinds() []ArtifactKind {
	return []ArtifactKind{ArtifactText, ArtifactCode, ArtifactSheet, ArtifactImage}
}

// ParseArtifactKind validates a kind name coming from outside the process.
func ParseArtifactKind(s string) (ArtifactKind, error) {
	for _, k := range ArtifactKinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownArtifactKind, s)
}

// MissingContent is rendered when a document has no content yet.
const MissingContent = "null"

// UpdateDocumentPrompt returns the system prompt for revising an existing
// document of the given kind, with currentContent embedded verbatim. Kinds
// without an update template yield the empty string.
func UpdateDocumentPrompt(currentContent *string, kind ArtifactKind) string {
	var instruction string
	switch kind {
	case ArtifactText:
		instruction = "Improve the following contents of the document based on the given prompt."
	case ArtifactCode:
		instruction = "Improve the following code snippet based on the given prompt."
	case ArtifactSheet:
		instruction = "Improve the following spreadsheet based on the given prompt."
	default:
		return ""
	}

	content := MissingContent
	if currentContent != nil {
		content = *currentContent
	}
	return instruction + fragmentSeparator + content + "\n"
}

// GenerationPrompt returns the system prompt for creating a new document of
// the given kind, or the empty string when the kind has no dedicated guide.
func GenerationPrompt(kind ArtifactKind) string {
	switch kind {
	case ArtifactCode:
		return CodePrompt
	case ArtifactSheet:
		return SheetPrompt
	default:
		return ""
	}
}
