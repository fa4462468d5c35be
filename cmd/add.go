package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/voxnote/internal/validate"
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:     "add TEXT...",
	Aliases: []string{"a"},
	Short:   "Store a note for this session",
	Long: `Store a note for this session and print it back.

The text is trimmed of surrounding whitespace; adding empty or
whitespace-only text is silently skipped. Text is limited to 1000
characters.

Examples:
  voxnote add remember the milk
  voxnote add "call the plumber tomorrow"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	if err := validate.EntryText(text); err != nil {
		return err
	}

	entry, err := ctx.Entries.Add(text)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintAdd(entry)
	}

	cli := ctx.CLIFormatter()
	if entry == nil {
		cli.Muted("Nothing to add.")
		return nil
	}
	cli.Success("Added: " + entry.Text)
	return nil
}
