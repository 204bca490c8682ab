// Package snapshot composes the loader and the diff engine into the
// end-to-end comparison pipeline: load both snapshot files, diff them,
// and persist the new rows (plus an optional audit metadata artifact)
// for the downstream ingest step.
package snapshot
