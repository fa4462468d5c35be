package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/voxnote/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFavorite = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWarning)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// PrintEntry prints one entry line with its favorite marker and age.
func (c *CLIFormatter) PrintEntry(e *model.Entry) {
	marker := " "
	if e.Favorited {
		marker = "★"
		if c.IsColorEnabled() {
			marker = styleFavorite.Render("★")
		}
	}

	age := FormatRelative(e.Timestamp)
	if c.IsColorEnabled() {
		age = styleMuted.Render(age)
	}

	c.Printf("%s %s  %s\n", marker, e.Text, age)
}

// PrintEntries prints a projected entry list, or a placeholder when empty.
func (c *CLIFormatter) PrintEntries(entries []*model.Entry, sort model.SortOrder) {
	c.Title("Notes · " + sort.Label())
	if len(entries) == 0 {
		c.Muted("No notes yet. Type something or press the record key.")
		return
	}
	for _, e := range entries {
		c.PrintEntry(e)
	}
}
