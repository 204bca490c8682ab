package diff

import "github.com/roach88/sheetdelta/internal/tabular"

// Outcome classifies the result of a comparison. Missing and empty
// inputs are distinct, reportable states - never errors.
type Outcome string

const (
	// OutcomeCompared means both snapshots had data rows and were diffed.
	OutcomeCompared Outcome = "compared"

	// OutcomeCurrentMissing means the current snapshot file was absent.
	OutcomeCurrentMissing Outcome = "current_missing"

	// OutcomeCurrentEmpty means the current snapshot had a header but no
	// data rows.
	OutcomeCurrentEmpty Outcome = "current_empty"

	// OutcomeNoPrevious means the previous snapshot was absent or
	// header-only, so every current data row is new.
	OutcomeNoPrevious Outcome = "no_previous"
)

// Result is the structured outcome of one comparison.
type Result struct {
	// Outcome classifies how the comparison resolved.
	Outcome Outcome `json:"outcome"`

	// Strategy is the name of the strategy that produced NewRows.
	Strategy string `json:"strategy"`

	// Header is the current snapshot's header (empty if current was
	// missing). Callers need it to persist NewRows as a valid snapshot.
	Header []string `json:"-"`

	// NewRows holds the rows present in current but not in previous.
	NewRows [][]string `json:"-"`

	// Summary statistics.
	CurrentCount  int `json:"current_count"`
	PreviousCount int `json:"previous_count"`
	NewCount      int `json:"new_count"`
}

// Compare diffs a current snapshot against a previous one.
//
// A nil current table means the current file was missing; a nil previous
// table means there was no prior snapshot. Header-only tables are
// treated the same as missing ones on both sides, per the outcome
// taxonomy above. Inputs are never mutated.
func Compare(current, previous *tabular.Table, s Strategy) *Result {
	res := &Result{Strategy: s.Name(), NewRows: [][]string{}}

	if current == nil {
		res.Outcome = OutcomeCurrentMissing
		return res
	}
	res.Header = current.Header
	res.CurrentCount = len(current.Rows)

	if current.Empty() {
		res.Outcome = OutcomeCurrentEmpty
		return res
	}

	if previous == nil || previous.Empty() {
		res.Outcome = OutcomeNoPrevious
		res.NewRows = append(res.NewRows, current.Rows...)
		res.NewCount = len(res.NewRows)
		return res
	}

	res.Outcome = OutcomeCompared
	res.PreviousCount = len(previous.Rows)
	res.NewRows = s.NewRows(current.Rows, previous.Rows)
	res.NewCount = len(res.NewRows)
	return res
}
