package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Write persists a table to path as UTF-8 CSV: header first, then the
// data rows in order. Parent directories are created if absent.
//
// Write failures (permissions, disk full) propagate as hard errors; this
// is the one place in the pipeline where I/O problems are not recovered.
func Write(path string, t *Table) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	// Close errors matter on write paths (buffered data may still be
	// in flight); surface them instead of relying on the defer.
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}
