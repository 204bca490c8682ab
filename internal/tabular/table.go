package tabular

// Table is an in-memory snapshot: a header row plus the data rows that
// follow it, in file order. Tables are treated as immutable once loaded;
// operations that derive new row sets allocate fresh slices.
type Table struct {
	// Header holds the column names from the first line of the file.
	Header []string

	// Rows holds the data rows in original file order. Rows may be
	// shorter than the header (trailing cells omitted by the export).
	Rows [][]string
}

// Empty reports whether the table has no data rows.
// A header-only file is empty for diff purposes.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Index returns the position of the named column in the header,
// or -1 if the column is not present.
func (t *Table) Index(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Cell returns row[i], or "" when the row is too short.
// Short rows are valid input everywhere in this package.
func Cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// Record maps a data row to column-name -> cell using the table header.
// Cells beyond the row's length map to "" so that parsers can treat
// short rows and empty cells uniformly.
func (t *Table) Record(row []string) map[string]string {
	rec := make(map[string]string, len(t.Header))
	for i, name := range t.Header {
		rec[name] = Cell(row, i)
	}
	return rec
}
