// Package runtime provides application runtime context for Voxnote.
package runtime

import (
	"github.com/manav03panchal/voxnote/internal/capture"
	"github.com/manav03panchal/voxnote/internal/config"
	"github.com/manav03panchal/voxnote/internal/output"
	"github.com/manav03panchal/voxnote/internal/storage"
	"github.com/manav03panchal/voxnote/internal/view"
)

// Context holds the application runtime context.
type Context struct {
	DB        *storage.DB
	Formatter *output.Formatter

	// Domain components
	Entries   *storage.EntryRepo
	Projector *view.Projector
	Bridge    capture.Bridge

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
	}
}

// New creates a new runtime context with a fresh session store.
func New(opts Options) (*Context, error) {
	db, err := storage.Open()
	if err != nil {
		return nil, err
	}

	entries := storage.NewEntryRepo(db)

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		DB:        db,
		Formatter: formatter,
		Entries:   entries,
		Projector: view.NewProjector(entries),
		Bridge:    capture.NewExecBridge(config.Global.Capture),
		Debug:     opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.Bridge != nil {
		c.Bridge.Stop()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
