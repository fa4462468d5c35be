// Package parser provides natural language parsing for Voxnote.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/voxnote/internal/errors"
)

// TimestampResult holds the parsed timestamp and any error.
type TimestampResult struct {
	Time  time.Time
	Error error
}

// ParseTimestamp parses a natural language timestamp expression such as
// "2 hours ago", "yesterday at 3pm", or an RFC3339 string.
func ParseTimestamp(input string) TimestampResult {
	input = strings.TrimSpace(input)
	if input == "" || strings.ToLower(input) == "now" {
		return TimestampResult{Time: time.Now()}
	}

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return TimestampResult{Time: t}
	}

	// Use go-dateparser for natural language parsing
	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return TimestampResult{Error: errors.Wrapf(errors.ErrInvalidTimestamp, "%q", input)}
	}

	return TimestampResult{Time: result.Time}
}
