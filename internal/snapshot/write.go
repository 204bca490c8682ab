package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/roach88/sheetdelta/internal/diff"
	"github.com/roach88/sheetdelta/internal/tabular"
)

// WriteNewRows persists the report's new rows to path as a snapshot file
// (header line first). Parent directories are created if absent. Write
// failures are hard errors.
func WriteNewRows(path string, rep *Report) error {
	return tabular.Write(path, &tabular.Table{
		Header: rep.Header,
		Rows:   rep.NewRows,
	})
}

// Metadata is the audit artifact persisted alongside a diff output.
type Metadata struct {
	RunID         string       `json:"run_id"`
	Timestamp     time.Time    `json:"timestamp"`
	Strategy      string       `json:"strategy"`
	Outcome       diff.Outcome `json:"outcome"`
	TotalNewRows  int          `json:"total_new_rows"`
	CurrentTotal  int          `json:"current_total"`
	PreviousTotal int          `json:"previous_total"`
}

// NewMetadata extracts the audit metadata from a report.
func NewMetadata(rep *Report) Metadata {
	return Metadata{
		RunID:         rep.RunID,
		Timestamp:     rep.Timestamp,
		Strategy:      rep.Strategy,
		Outcome:       rep.Outcome,
		TotalNewRows:  rep.NewCount,
		CurrentTotal:  rep.CurrentCount,
		PreviousTotal: rep.PreviousCount,
	}
}

// WriteMetadata persists the report's audit metadata to path as indented
// JSON. Parent directories are created if absent.
func WriteMetadata(path string, rep *Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create metadata directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(NewMetadata(rep), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}
