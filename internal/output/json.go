package output

import (
	"time"

	"github.com/manav03panchal/voxnote/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// EntryOutput represents an entry in JSON output.
type EntryOutput struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Favorited bool   `json:"favorited"`
	Timestamp string `json:"timestamp"`
}

// NewEntryOutput creates an EntryOutput from an Entry.
func NewEntryOutput(e *model.Entry) *EntryOutput {
	return &EntryOutput{
		ID:        e.ID,
		Text:      e.Text,
		Favorited: e.Favorited,
		Timestamp: e.Timestamp.Format(time.RFC3339),
	}
}

// AddResponse represents the add command output in JSON.
type AddResponse struct {
	Status string       `json:"status"`
	Entry  *EntryOutput `json:"entry,omitempty"`
}

// EntriesResponse represents the list command output in JSON.
type EntriesResponse struct {
	Entries    []*EntryOutput `json:"entries"`
	Sort       string         `json:"sort"`
	TotalCount int            `json:"total_count"`
	ShownCount int            `json:"shown_count"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintAdd prints the result of an add operation.
func (j *JSONFormatter) PrintAdd(entry *model.Entry) error {
	resp := AddResponse{Status: "added"}
	if entry == nil {
		resp.Status = "skipped"
	} else {
		resp.Entry = NewEntryOutput(entry)
	}
	return j.JSON(resp)
}

// PrintEntries prints a projected entry list.
func (j *JSONFormatter) PrintEntries(entries []*model.Entry, sort model.SortOrder, total int) error {
	resp := EntriesResponse{
		Entries:    make([]*EntryOutput, 0, len(entries)),
		Sort:       string(sort),
		TotalCount: total,
		ShownCount: len(entries),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, NewEntryOutput(e))
	}
	return j.JSON(resp)
}

// PrintError prints an error response.
func (j *JSONFormatter) PrintError(status, message, suggestion string) error {
	return j.JSON(ErrorResponse{
		Status:     status,
		Error:      message,
		Suggestion: suggestion,
	})
}
