package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sheetdelta/internal/diff"
	"github.com/roach88/sheetdelta/internal/snapshot"
	"github.com/roach88/sheetdelta/internal/tabular"
)

// DiffSummary is the payload reported after a diff run.
type DiffSummary struct {
	RunID         string `json:"run_id"`
	Outcome       string `json:"outcome"`
	Strategy      string `json:"strategy"`
	CurrentCount  int    `json:"current_count"`
	PreviousCount int    `json:"previous_count"`
	NewCount      int    `json:"new_count"`
	VerifiedCount int    `json:"verified_count,omitempty"`
	Output        string `json:"output,omitempty"`
}

// String renders the summary for text output.
func (s DiffSummary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Comparison %s (%s strategy)\n", s.Outcome, s.Strategy)
	fmt.Fprintf(&b, "  current rows:  %d\n", s.CurrentCount)
	fmt.Fprintf(&b, "  previous rows: %d\n", s.PreviousCount)
	fmt.Fprintf(&b, "  new rows:      %d", s.NewCount)
	if s.VerifiedCount > 0 {
		fmt.Fprintf(&b, "\n  verified:      %d", s.VerifiedCount)
	}
	if s.Output != "" {
		fmt.Fprintf(&b, "\n  saved to:      %s", s.Output)
	}
	return b.String()
}

// NewDiffCommand creates the "diff" command: detect rows present in the
// current snapshot but absent from the previous one.
func NewDiffCommand(opts *RootOptions) *cobra.Command {
	var (
		cfgPath      string
		current      string
		previous     string
		output       string
		metadata     string
		strategyName string
		keyPrefix    int
		schemaDir    string
		sheetName    string
		verifiedOnly bool
	)

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Find rows new in the current snapshot",
		Long: "Compares the current snapshot against the previous one and writes the\n" +
			"new rows (header included) to the output path. A missing previous\n" +
			"snapshot means every current row is new.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &Config{}
			if cfgPath != "" {
				loaded, err := LoadConfig(cfgPath)
				if err != nil {
					return WrapExitError(ExitCommandError, "loading config", err)
				}
				cfg = loaded
			}

			// Explicit flags win over config values.
			flags := cmd.Flags()
			if flags.Changed("current") || cfg.Current == "" {
				cfg.Current = current
			}
			if flags.Changed("previous") || cfg.Previous == "" {
				cfg.Previous = previous
			}
			if flags.Changed("out") || cfg.Output == "" {
				cfg.Output = output
			}
			if flags.Changed("metadata") || cfg.Metadata == "" {
				cfg.Metadata = metadata
			}
			if flags.Changed("strategy") || cfg.Strategy == "" {
				cfg.Strategy = strategyName
			}
			if flags.Changed("key-prefix") {
				cfg.KeyPrefix = keyPrefix
			}
			if flags.Changed("schema") {
				cfg.SchemaDir = schemaDir
			}
			if flags.Changed("sheet") {
				cfg.Sheet = sheetName
			}
			if flags.Changed("verified-only") {
				cfg.VerifiedOnly = verifiedOnly
			}

			return runDiff(opts, cfg, cmd)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "YAML pipeline config file")
	cmd.Flags().StringVar(&current, "current", "", "current snapshot file (required unless set in config)")
	cmd.Flags().StringVar(&previous, "previous", "", "previous snapshot file")
	cmd.Flags().StringVar(&output, "out", "", "output file for new rows")
	cmd.Flags().StringVar(&metadata, "metadata", "", "write a JSON audit metadata artifact to this path")
	cmd.Flags().StringVar(&strategyName, "strategy", diff.StrategyKeyed, "diff strategy (keyed|set)")
	cmd.Flags().IntVar(&keyPrefix, "key-prefix", 0, "leading cells forming the row key (default from sheet schema)")
	cmd.Flags().StringVar(&schemaDir, "schema", "", "directory of CUE sheet declarations")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "sheet name within the schema directory")
	cmd.Flags().BoolVar(&verifiedOnly, "verified-only", false, "keep only verified rows in the output")

	return cmd
}

func runDiff(opts *RootOptions, cfg *Config, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	log := opts.Logger()

	if cfg.Current == "" {
		formatter.Error(ErrCodeConfig, "no current snapshot given (use --current or config)", nil)
		return NewExitError(ExitCommandError, "missing current snapshot path")
	}

	sheet, err := resolveSheet(cfg.SchemaDir, cfg.Sheet)
	if err != nil {
		formatter.Error(ErrCodeSchema, err.Error(), nil)
		return WrapExitError(ExitCommandError, "resolving sheet schema", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == 0 {
		prefix = sheet.KeyPrefix
	}
	strategy, err := diff.ForName(cfg.Strategy, prefix)
	if err != nil {
		formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "selecting strategy", err)
	}

	comparer := &snapshot.Comparer{Strategy: strategy, Log: log}
	rep, err := comparer.Run(cfg.Current, cfg.Previous)
	if err != nil {
		formatter.Error(ErrCodeLoadFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, "comparing snapshots", err)
	}

	if rep.Outcome == diff.OutcomeCurrentMissing {
		formatter.Error(ErrCodeNotFound, fmt.Sprintf("current snapshot not found: %s", cfg.Current), nil)
		return NewExitError(ExitCommandError, "current snapshot not found")
	}

	summary := DiffSummary{
		RunID:         rep.RunID,
		Outcome:       string(rep.Outcome),
		Strategy:      rep.Strategy,
		CurrentCount:  rep.CurrentCount,
		PreviousCount: rep.PreviousCount,
		NewCount:      rep.NewCount,
	}

	rows := rep.NewRows
	if cfg.VerifiedOnly {
		statusIdx := (&tabular.Table{Header: rep.Header}).Index(sheet.StatusColumn)
		if statusIdx < 0 {
			formatter.Error(ErrCodeSchema, fmt.Sprintf("status column %q not in snapshot header", sheet.StatusColumn), nil)
			return NewExitError(ExitCommandError, "status column not found")
		}
		rows = diff.FilterVerified(rows, statusIdx, sheet.Accepted)
		summary.VerifiedCount = len(rows)
	}

	// Match the sheet export convention: nothing new, nothing written.
	if cfg.Output != "" && len(rows) > 0 {
		out := &snapshot.Report{Result: cloneResultWithRows(rep, rows), RunID: rep.RunID, Timestamp: rep.Timestamp}
		if err := snapshot.WriteNewRows(cfg.Output, out); err != nil {
			formatter.Error(ErrCodeWrite, err.Error(), nil)
			return WrapExitError(ExitFailure, "writing new rows", err)
		}
		summary.Output = cfg.Output
		log.Info().Str("path", cfg.Output).Int("rows", len(rows)).Msg("saved new rows")
	}

	if cfg.Metadata != "" {
		if err := snapshot.WriteMetadata(cfg.Metadata, rep); err != nil {
			formatter.Error(ErrCodeWrite, err.Error(), nil)
			return WrapExitError(ExitFailure, "writing metadata", err)
		}
		log.Info().Str("path", cfg.Metadata).Msg("saved comparison metadata")
	}

	return formatter.Success(summary)
}

// cloneResultWithRows copies the diff result, swapping in the (possibly
// filtered) row set without mutating the original report.
func cloneResultWithRows(rep *snapshot.Report, rows [][]string) *diff.Result {
	res := *rep.Result
	res.NewRows = rows
	res.NewCount = len(rows)
	return &res
}
