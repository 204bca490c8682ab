package snapshot

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/roach88/sheetdelta/internal/diff"
	"github.com/roach88/sheetdelta/internal/tabular"
)

// Comparer runs one snapshot comparison pass.
type Comparer struct {
	// Strategy selects the row-identity policy. Required.
	Strategy diff.Strategy

	// Log receives per-stage progress events. Optional.
	Log zerolog.Logger

	// LoadOpts are applied to both snapshot loads (e.g. a legacy
	// encoding).
	LoadOpts []tabular.LoadOption

	// Now and NewRunID exist so tests can pin the report's timestamp
	// and run ID. Nil means time.Now / a fresh UUID.
	Now      func() time.Time
	NewRunID func() string
}

// Report is the structured result of one comparison run: the diff
// result plus audit identity.
type Report struct {
	*diff.Result

	// RunID uniquely identifies this comparison run.
	RunID string `json:"run_id"`

	// Timestamp is when the comparison ran.
	Timestamp time.Time `json:"timestamp"`
}

// Run loads both snapshots and diffs them.
//
// Missing input files are normal states, reflected in the report's
// Outcome - Run only returns an error for real I/O or CSV problems.
func (c *Comparer) Run(currentPath, previousPath string) (*Report, error) {
	current, found, err := tabular.Load(currentPath, c.LoadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load current snapshot: %w", err)
	}
	if !found {
		c.Log.Warn().Str("path", currentPath).Msg("current snapshot not found")
		current = nil
	} else {
		c.Log.Debug().Str("path", currentPath).Int("rows", len(current.Rows)).Msg("loaded current snapshot")
	}

	previous, found, err := tabular.Load(previousPath, c.LoadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load previous snapshot: %w", err)
	}
	if !found {
		c.Log.Warn().Str("path", previousPath).Msg("previous snapshot not found, all current rows are new")
		previous = nil
	} else {
		c.Log.Debug().Str("path", previousPath).Int("rows", len(previous.Rows)).Msg("loaded previous snapshot")
	}

	rep := &Report{
		Result:    diff.Compare(current, previous, c.Strategy),
		RunID:     c.runID(),
		Timestamp: c.now(),
	}

	c.Log.Info().
		Str("run_id", rep.RunID).
		Str("outcome", string(rep.Outcome)).
		Int("current", rep.CurrentCount).
		Int("previous", rep.PreviousCount).
		Int("new", rep.NewCount).
		Msg("comparison complete")

	return rep, nil
}

func (c *Comparer) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Comparer) runID() string {
	if c.NewRunID != nil {
		return c.NewRunID()
	}
	return uuid.NewString()
}
