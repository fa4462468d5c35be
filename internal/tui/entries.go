package tui

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/voxnote/internal/model"
	"github.com/manav03panchal/voxnote/internal/output"
)

// EntriesComponent displays the projected entry list.
type EntriesComponent struct {
	Entries []*model.Entry
	Cursor  int
	Width   int
	Limit   int
	Sort    model.SortOrder
}

// NewEntriesComponent creates a new entries component.
func NewEntriesComponent(entries []*model.Entry, cursor, width, limit int, sort model.SortOrder) *EntriesComponent {
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return &EntriesComponent{
		Entries: entries,
		Cursor:  cursor,
		Width:   width,
		Limit:   limit,
		Sort:    sort,
	}
}

// View renders the entries component.
func (ec *EntriesComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Notes"))
	content.WriteString("  ")
	content.WriteString(StyleSubtitle.Render(ec.Sort.Label()))
	content.WriteString("\n\n")

	if len(ec.Entries) == 0 {
		content.WriteString(ec.placeholder())
	} else {
		for i, entry := range ec.Entries {
			if i > 0 {
				content.WriteString("\n")
			}
			content.WriteString(ec.renderEntry(entry, i == ec.Cursor))
		}
	}

	box := StyleEntriesBox.Width(ec.Width - 4)
	return box.Render(content.String())
}

func (ec *EntriesComponent) placeholder() string {
	if ec.Sort == model.SortFavorites {
		return StyleSubtitle.Render("No favorites yet. Select a note and press ctrl+f.")
	}
	return StyleSubtitle.Render("No notes yet. Type something and press enter.")
}

func (ec *EntriesComponent) renderEntry(entry *model.Entry, selected bool) string {
	var sb strings.Builder

	marker := "  "
	if entry.Favorited {
		marker = StyleFavorite.Render("★") + " "
	}
	sb.WriteString(marker)

	text := entry.Text
	if maxText := ec.Width - 20; maxText > 10 {
		runes := []rune(text)
		if len(runes) > maxText {
			text = string(runes[:maxText]) + "…"
		}
	}

	if selected {
		sb.WriteString(StyleSelectedEntry.Render(text))
	} else {
		sb.WriteString(StyleEntry.Render(text))
	}

	sb.WriteString("  ")
	sb.WriteString(StyleSubtitle.Render(output.FormatRelative(entry.Timestamp)))

	return sb.String()
}

// RecordIndicator renders the live recording marker.
func RecordIndicator(active bool) string {
	if !active {
		return ""
	}
	return StyleRecording.Render("● REC")
}

// HelpBar renders the help bar at the bottom.
func HelpBar() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"enter", "add"},
		{"ctrl+r", "record"},
		{"ctrl+s", "sort"},
		{"ctrl+f", "favorite"},
		{"↑/↓", "select"},
		{"ctrl+c", "quit"},
	}

	var parts []string
	for _, k := range keys {
		part := StyleHelpKey.Render(k.key) + " " + StyleHelpDesc.Render(k.desc)
		parts = append(parts, part)
	}

	return StyleHelp.Render(strings.Join(parts, "  •  "))
}

// headerLine renders the app title with the current sort and clock.
func headerLine(clock string, recording bool) string {
	title := StyleTitle.Render("Voxnote")
	parts := []string{title, StyleSubtitle.Render(clock)}
	if rec := RecordIndicator(recording); rec != "" {
		parts = append(parts, rec)
	}
	return fmt.Sprintf("%s\n", strings.Join(parts, "  "))
}
