package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sheetdelta/internal/diff"
	"github.com/roach88/sheetdelta/internal/tabular"
)

// FilterSummary is the payload reported after a filter run.
type FilterSummary struct {
	Total    int    `json:"total"`
	Verified int    `json:"verified"`
	Output   string `json:"output,omitempty"`
}

// String renders the summary for text output.
func (s FilterSummary) String() string {
	out := fmt.Sprintf("Kept %d verified rows of %d", s.Verified, s.Total)
	if s.Output != "" {
		out += fmt.Sprintf("\n  saved to: %s", s.Output)
	}
	return out
}

// NewFilterCommand creates the "filter" command: keep only rows whose
// status cell matches the sheet's accepted value.
func NewFilterCommand(opts *RootOptions) *cobra.Command {
	var (
		input     string
		output    string
		schemaDir string
		sheetName string
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Keep only verified rows of a snapshot",
		Long: "Retains rows whose status cell case-insensitively equals the sheet's\n" +
			"accepted value. Rows too short to carry a status cell are treated as\n" +
			"unverified and dropped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(opts, input, output, schemaDir, sheetName, cmd)
		},
	}

	cmd.Flags().StringVar(&input, "in", "", "snapshot file to filter (required)")
	cmd.Flags().StringVar(&output, "out", "", "output file for verified rows")
	cmd.Flags().StringVar(&schemaDir, "schema", "", "directory of CUE sheet declarations")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "sheet name within the schema directory")
	cmd.MarkFlagRequired("in")

	return cmd
}

func runFilter(opts *RootOptions, input, output, schemaDir, sheetName string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	log := opts.Logger()

	sheet, err := resolveSheet(schemaDir, sheetName)
	if err != nil {
		formatter.Error(ErrCodeSchema, err.Error(), nil)
		return WrapExitError(ExitCommandError, "resolving sheet schema", err)
	}

	table, found, err := tabular.Load(input)
	if err != nil {
		formatter.Error(ErrCodeLoadFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, "loading snapshot", err)
	}
	if !found {
		formatter.Error(ErrCodeNotFound, fmt.Sprintf("snapshot not found: %s", input), nil)
		return NewExitError(ExitCommandError, "snapshot not found")
	}

	statusIdx := table.Index(sheet.StatusColumn)
	if statusIdx < 0 {
		formatter.Error(ErrCodeSchema, fmt.Sprintf("status column %q not in snapshot header", sheet.StatusColumn), nil)
		return NewExitError(ExitCommandError, "status column not found")
	}

	verified := diff.FilterVerified(table.Rows, statusIdx, sheet.Accepted)
	summary := FilterSummary{Total: len(table.Rows), Verified: len(verified)}

	if output != "" {
		if err := tabular.Write(output, &tabular.Table{Header: table.Header, Rows: verified}); err != nil {
			formatter.Error(ErrCodeWrite, err.Error(), nil)
			return WrapExitError(ExitFailure, "writing verified rows", err)
		}
		summary.Output = output
		log.Info().Str("path", output).Int("rows", len(verified)).Msg("saved verified rows")
	}

	return formatter.Success(summary)
}
