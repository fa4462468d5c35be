// Package output provides output formatting for Voxnote.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

// Format represents the output format type.
type Format string

const (
	FormatCLI   Format = "cli"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ColorMode represents the color output mode.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Formatter handles output formatting.
type Formatter struct {
	Writer    io.Writer
	Format    Format
	ColorMode ColorMode
}

// NewFormatter creates a new formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		Writer:    os.Stdout,
		Format:    FormatCLI,
		ColorMode: ColorAuto,
	}
}

// IsColorEnabled returns true if color output is enabled.
func (f *Formatter) IsColorEnabled() bool {
	switch f.ColorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		// Auto-detect based on terminal
		if w, ok := f.Writer.(*os.File); ok {
			return isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd())
		}
		return false
	}
}

// Print outputs formatted text.
func (f *Formatter) Print(a ...interface{}) {
	fmt.Fprint(f.Writer, a...)
}

// Println outputs formatted text with newline.
func (f *Formatter) Println(a ...interface{}) {
	fmt.Fprintln(f.Writer, a...)
}

// Printf outputs formatted text.
func (f *Formatter) Printf(format string, a ...interface{}) {
	fmt.Fprintf(f.Writer, format, a...)
}

// JSON outputs data as JSON.
func (f *Formatter) JSON(v interface{}) error {
	encoder := json.NewEncoder(f.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// FormatTime formats a timestamp for display.
func FormatTime(t time.Time) string {
	return t.Format("Mon Jan 2, 15:04")
}

// FormatTimeOnly formats just the time portion.
func FormatTimeOnly(t time.Time) string {
	return t.Format("15:04:05")
}

// FormatRelative formats how long ago a timestamp was, in coarse units.
func FormatRelative(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("Jan 2")
	}
}
