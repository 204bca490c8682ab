// Package tabular reads and writes delimited snapshot files.
//
// A snapshot is a CSV export whose first line is always a header; every
// downstream consumer treats it as column metadata, never as data. The
// loader deliberately performs no column-count validation - exports from
// the moderation sheet routinely carry short rows, and tolerating them is
// the consumers' job (see Table.Cell and Table.Record).
//
// Loading distinguishes "file does not exist" from "file is malformed":
// a missing snapshot is an expected state (no prior export yet) and is
// reported as found=false, not as an error.
package tabular
