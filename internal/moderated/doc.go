// Package moderated parses raw snapshot rows into typed Item records.
//
// Parsing is deliberately lenient: per-row problems never abort a batch.
// A row missing a required field is skipped with a reason; a years-ago
// cell that fails integer parsing degrades to an absent value. Optional
// fields normalize whitespace-only input to nil so that "not provided"
// and "provided as empty" cannot be confused downstream.
package moderated
