package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/voxnote/internal/model"
	"github.com/manav03panchal/voxnote/internal/parser"
	"github.com/manav03panchal/voxnote/internal/validate"
)

// List command flags.
var (
	listFlagSort  string
	listFlagSince string
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print this session's notes",
	Long: `Print this session's notes in display order.

Sort orders:
  newest     all notes, newest first (default)
  oldest     all notes, oldest first
  favorites  only favorited notes, newest first

Examples:
  voxnote list
  voxnote list --sort favorites
  voxnote list --since "30 minutes ago"`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFlagSort, "sort", "s", "newest",
		"Sort order: newest, oldest, favorites")
	listCmd.Flags().StringVar(&listFlagSince, "since", "",
		"Only show notes created after this time (natural language accepted)")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if err := validate.SortOrderValue(listFlagSort); err != nil {
		return err
	}
	order := model.ParseSortOrder(listFlagSort)

	entries, err := ctx.Projector.View(order)
	if err != nil {
		return err
	}
	total := len(entries)

	if listFlagSince != "" {
		result := parser.ParseTimestamp(listFlagSince)
		if result.Error != nil {
			return result.Error
		}
		filtered := entries[:0:0]
		for _, e := range entries {
			if !e.Timestamp.Before(result.Time) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintEntries(entries, order, total)
	}

	ctx.CLIFormatter().PrintEntries(entries, order)
	return nil
}
