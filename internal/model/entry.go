package model

import (
	"fmt"
	"strings"
	"time"
)

// MaxEntryTextLength is the maximum length of an entry's text in runes.
const MaxEntryTextLength = 1000

// Entry represents one stored note.
//
// ID is a UUIDv7, so ids created later in the session always sort after
// earlier ones. Timestamp is set at creation and never changes; Favorited is
// the only mutable field.
type Entry struct {
	Key       string    `json:"key"`
	ID        string    `json:"id" validate:"required"`
	Text      string    `json:"text" validate:"required,max=1000"`
	Favorited bool      `json:"favorited"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
}

// SetKey sets the database key for this entry.
func (e *Entry) SetKey(key string) {
	e.Key = key
}

// GetKey returns the database key for this entry.
func (e *Entry) GetKey() string {
	return e.Key
}

// GenerateEntryKey generates a database key for an entry from its id.
func GenerateEntryKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixEntry, id)
}

// NewEntry creates a new unfavorited entry with trimmed text.
// The id must be a UUIDv7 string; timestamp is taken as given.
func NewEntry(id, text string, timestamp time.Time) *Entry {
	return &Entry{
		Key:       GenerateEntryKey(id),
		ID:        id,
		Text:      strings.TrimSpace(text),
		Favorited: false,
		Timestamp: timestamp,
	}
}
