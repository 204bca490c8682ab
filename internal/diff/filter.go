package diff

import (
	"strings"

	"github.com/roach88/sheetdelta/internal/tabular"
)

// FilterVerified retains only rows whose status cell case-insensitively
// equals accepted. Rows too short to have the status cell are treated as
// unverified and excluded, not errored.
func FilterVerified(rows [][]string, statusCol int, accepted string) [][]string {
	verified := make([][]string, 0, len(rows))
	for _, row := range rows {
		if statusCol < 0 || statusCol >= len(row) {
			continue
		}
		if strings.EqualFold(tabular.Cell(row, statusCol), accepted) {
			verified = append(verified, row)
		}
	}
	return verified
}
