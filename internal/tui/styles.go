// Package tui provides the terminal user interface for Voxnote.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#10B981") // Green
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorWarning   = lipgloss.Color("#F59E0B") // Yellow
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorRecording = lipgloss.Color("#EF4444") // Red
	ColorFavorite  = lipgloss.Color("#F59E0B") // Yellow
	ColorBorder    = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles for the TUI.
var (
	// StyleTitle is used for section titles.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleSubtitle is used for subtitles and secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleEntry is used for entry text.
	StyleEntry = lipgloss.NewStyle()

	// StyleSelectedEntry is used for the entry under the cursor.
	StyleSelectedEntry = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary)

	// StyleFavorite is used for the favorite marker.
	StyleFavorite = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorFavorite)

	// StyleRecording is used for the live recording indicator.
	StyleRecording = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRecording)

	// StyleWarning is used for warning messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleHelp is used for help text at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StyleHelpKey is used for keyboard shortcut keys.
	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	// StyleHelpDesc is used for keyboard shortcut descriptions.
	StyleHelpDesc = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Box styles for different sections.
var (
	// StyleInputBox frames the note input field.
	StyleInputBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginBottom(1)

	// StyleRecordingInputBox frames the input field while recording.
	StyleRecordingInputBox = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorRecording).
				Padding(0, 1).
				MarginBottom(1)

	// StyleEntriesBox frames the entry list.
	StyleEntriesBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			MarginBottom(1)
)
