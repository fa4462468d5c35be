// Package validate provides input validation helpers for the Voxnote CLI.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/manav03panchal/voxnote/internal/errors"
	"github.com/manav03panchal/voxnote/internal/model"
)

// IsBlank reports whether text is empty or whitespace-only after trimming.
// Blank input is not an error anywhere in Voxnote; adds are silently skipped.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// EntryText validates entry text before it reaches the store.
// Blank text is valid here (the store treats it as a no-op); only the
// length cap produces an error.
func EntryText(text string) error {
	if utf8.RuneCountInString(strings.TrimSpace(text)) > model.MaxEntryTextLength {
		return errors.NewUserErrorWithField("text", truncateForDisplay(text),
			"Entry text too long",
			"Entries are limited to 1000 characters")
	}
	return nil
}

// truncateForDisplay shortens long values for error messages.
func truncateForDisplay(s string) string {
	const max = 40
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

// SortOrderValue validates a user-supplied sort order string.
// Unknown values are accepted by the projector (they fall back to newest),
// but the CLI flags reject them so typos surface early.
func SortOrderValue(s string) error {
	switch model.SortOrder(s) {
	case model.SortNewest, model.SortOldest, model.SortFavorites:
		return nil
	}
	return errors.NewUserErrorWithField("sort", s,
		"Invalid sort order",
		"Use newest, oldest, or favorites")
}
