// Package cli implements the sheetdelta command line interface. It is
// an external collaborator of the core packages: presentation and path
// wiring live here, never in the loader, diff engine or parser.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/roach88/sheetdelta/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the sheetdelta CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sheetdelta",
		Short: "Snapshot change detection for moderated response exports",
		Long: "sheetdelta compares two CSV snapshots of the moderated responses sheet,\n" +
			"extracts the rows that are new since the previous export, and parses rows\n" +
			"into typed records for ingestion.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewDiffCommand(opts))
	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewFilterCommand(opts))

	return cmd
}

// Logger builds the diagnostic logger for a command invocation.
// Diagnostics always go to stderr so JSON output on stdout stays clean.
func (o *RootOptions) Logger() zerolog.Logger {
	level := "info"
	if o.Verbose {
		level = "debug"
	}
	return logging.New(logging.Options{
		Level:   level,
		Console: o.Format != "json",
	})
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
