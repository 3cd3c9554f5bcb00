package assistant

import (
	"context"
	"strings"

	"gedapi/internal/model"
)

// Package assistant defines the metadata-suggestion and Q&A collaborator.
// Both operations are best-effort: implementations must resolve every call
// with a usable value and never surface an error to the caller. On any
// transport, credential, or parse failure they return the fallbacks below.

// FallbackAnswer is returned when the Q&A call cannot be served.
const FallbackAnswer = "Désolé, je ne peux pas traiter votre demande pour le moment."

// Suggestion is the structured result of a metadata suggestion.
type Suggestion struct {
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// Assistant is the text-generation collaborator for the upload and search
// screens. Calls are single-shot: no retry, no streaming.
type Assistant interface {
	// Suggest proposes a description and keywords for a file about to be
	// catalogued under the given subcategory.
	Suggest(ctx context.Context, filename, subcategory string) Suggestion

	// Answer responds to a free-text query over the given documents. The
	// restriction to those documents is by prompt framing only.
	Answer(ctx context.Context, query string, docs []model.Document) string
}

// FallbackSuggestion is the deterministic local value used when no
// generated suggestion is available.
func FallbackSuggestion(subcategory string) Suggestion {
	return Suggestion{
		Description: "Document uploaded in " + subcategory + ".",
		Keywords:    []string{strings.ToLower(subcategory), "document"},
	}
}
