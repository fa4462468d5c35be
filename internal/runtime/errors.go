package runtime

import (
	"github.com/manav03panchal/voxnote/internal/errors"
)

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	return errors.GetSuggestion(err)
}

// FormatError formats an error with optional suggestion.
func FormatError(err error) string {
	msg := err.Error()
	if suggestion := errors.GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}
