package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrCaptureUnsupported: "Install a transcriber command and point VOXNOTE_TRANSCRIBER at it.",
	ErrCaptureActive:      "Stop the current recording before starting another.",
	ErrEntryNotFound:      "Use 'voxnote list' to see stored entries.",
	ErrTextTooLong:        "Entries are limited to 1000 characters.",
	ErrInvalidTimestamp:   "Try formats like '2 hours ago', 'yesterday at 3pm', or '9am'.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	return ""
}
