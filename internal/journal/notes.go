// Package journal decodes the structured notes document attached to
// trades and extracts mistake tags from it.
package journal

import (
	"encoding/json"
	"strings"

	"tradelens/internal/models"
)

// Decode parses a raw notes blob into the four-section document.
// The second return value is false when the blob is empty, is a legacy
// plain-text note, or is otherwise not a valid document. Decode never
// fails loudly: a bad document simply yields ok = false and the
// pipeline proceeds as if the trade had no tags.
func Decode(raw string) (models.NotesDocument, bool) {
	var doc models.NotesDocument
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return doc, false
	}
	// Legacy notes are plain strings, not JSON objects.
	if !strings.HasPrefix(trimmed, "{") {
		return doc, false
	}
	if err := json.Unmarshal([]byte(trimmed), &doc); err != nil {
		return models.NotesDocument{}, false
	}
	return doc, true
}

// Mistakes returns the flattened mistake tags of a raw notes blob in
// document order (preTrade, duringTrade, postTrade, improvement).
// Duplicates are preserved. Malformed or absent notes yield nil.
func Mistakes(raw string) []string {
	doc, ok := Decode(raw)
	if !ok {
		return nil
	}
	return doc.AllMistakes()
}
