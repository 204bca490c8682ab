// Package schema defines the dataset layout a snapshot is expected to
// follow: column names, which columns are required, which column carries
// the moderation status, and how many leading cells form a row's
// identity key.
//
// Layouts are declared in CUE and compiled with the CUE Go API, so the
// key prefix length and status column are configuration tied to a named
// sheet rather than constants baked into the diff engine. A built-in
// default layout (the moderated-responses sheet) is available via
// Default for zero-configuration use.
package schema
