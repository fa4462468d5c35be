// Package cmd provides the CLI commands for Voxnote.
//
// Copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/manav03panchal/voxnote/internal/config"
	"github.com/manav03panchal/voxnote/internal/logging"
	"github.com/manav03panchal/voxnote/internal/model"
	"github.com/manav03panchal/voxnote/internal/output"
	"github.com/manav03panchal/voxnote/internal/runtime"
	"github.com/manav03panchal/voxnote/internal/tui"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "voxnote",
	Short: "A dictation-friendly note widget for the terminal",
	Long: `Voxnote is a single-screen note widget: type or dictate short notes,
mark them favorite, and view them sorted by recency or favorite status.

Notes live for the session only; nothing is written to disk.

Examples:
  voxnote                     launch the interactive widget
  voxnote add remember milk   store one note and print it
  voxnote list --sort favorites
  voxnote list --since "2 hours ago"`,
	// Errors are reported once, through Die.
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		// Parse format flag
		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		// Parse color flag
		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		level := slog.LevelInfo
		if flagDebug {
			level = slog.LevelDebug
		}
		logging.Init(logging.Config{Level: level, Output: os.Stderr})

		var err error
		ctx, err = runtime.New(opts)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWidget()
	},
}

// runWidget launches the TUI, or prints the (empty) session list when
// stdout is not a terminal.
func runWidget() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		entries, err := ctx.Projector.View(model.SortNewest)
		if err != nil {
			return err
		}
		ctx.CLIFormatter().PrintEntries(entries, model.SortNewest)
		return nil
	}

	// The TUI owns the terminal; send diagnostics to the state log file.
	level := slog.LevelInfo
	if ctx.Debug {
		level = slog.LevelDebug
	}
	logFile, err := logging.InitFile(level)
	if err == nil {
		defer logFile.Close()
	}

	return tui.Run(tui.AppConfig{
		Repo:         ctx.Entries,
		Projector:    ctx.Projector,
		Bridge:       ctx.Bridge,
		TickInterval: config.Global.TUI.TickInterval,
		MaxVisible:   config.Global.TUI.MaxVisibleEntries,
	})
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Command errors are printed through Die so suggestions reach the user.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		Die(err)
	}
	return nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("voxnote %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits.
func Die(err error) {
	reportError(err)
	os.Exit(1)
}

// reportError prints an error on the active formatter, including its
// suggestion when one is known.
func reportError(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError("error", err.Error(), runtime.GetSuggestion(err))
	} else {
		os.Stderr.WriteString("Error: " + runtime.FormatError(err) + "\n")
	}
}
