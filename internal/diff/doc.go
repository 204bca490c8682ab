// Package diff computes which rows of a current snapshot were absent
// from a previous snapshot.
//
// Row identity is a RowKey derived from the cell sequence. Two selectable
// strategies exist and genuinely diverge - neither subsumes the other:
//
//   - Keyed: identity is a fixed-size prefix of the row. Preserves the
//     current file's row order, and emits each current occurrence of a
//     duplicate row (the key set only excludes matches against previous).
//   - Set: identity is the full row, and current/previous are treated as
//     mathematical sets. Duplicates within current collapse to one, and
//     input order is not preserved (output is sorted for determinism).
//
// Missing or header-only input files are outcomes, not errors: a missing
// previous snapshot means every current row is new.
package diff
