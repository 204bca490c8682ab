package schema

import "fmt"

// Default values applied when a sheet declaration omits the field.
const (
	// DefaultKeyPrefix is the number of leading cells used as a row's
	// identity key. Five covers status, moderator, timestamp, item name
	// and the first content column of the moderated-responses layout.
	DefaultKeyPrefix = 5

	// DefaultAccepted is the status cell value that marks a row as
	// having passed moderation. Matching is case-insensitive.
	DefaultAccepted = "verified"
)

// Sheet describes the expected layout of one snapshot type.
type Sheet struct {
	// Name identifies the sheet (the CUE struct label).
	Name string

	// KeyPrefix is the number of leading cells forming the row key for
	// the key-based diff strategy. Rows shorter than this use all
	// available cells.
	KeyPrefix int

	// StatusColumn names the column holding the moderation status.
	StatusColumn string

	// Accepted is the status value that counts as verified
	// (case-insensitive).
	Accepted string

	// Columns lists the expected header, in order. Informational; the
	// loader never enforces it, but the CLI can warn on drift.
	Columns []string

	// Required lists columns that must be non-empty for a row to parse
	// into a record.
	Required []string
}

// Validate checks the sheet for internally inconsistent values.
// Returns all problems found, not just the first.
func (s *Sheet) Validate() []error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, fmt.Errorf("sheet name is empty"))
	}
	if s.KeyPrefix < 1 {
		errs = append(errs, fmt.Errorf("sheet %s: key_prefix must be >= 1, got %d", s.Name, s.KeyPrefix))
	}
	for _, req := range s.Required {
		if len(s.Columns) > 0 && !contains(s.Columns, req) {
			errs = append(errs, fmt.Errorf("sheet %s: required column %q not in columns", s.Name, req))
		}
	}
	if s.StatusColumn != "" && len(s.Columns) > 0 && !contains(s.Columns, s.StatusColumn) {
		errs = append(errs, fmt.Errorf("sheet %s: status column %q not in columns", s.Name, s.StatusColumn))
	}
	return errs
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Default returns the built-in moderated-responses layout. Used when no
// schema directory is configured.
func Default() *Sheet {
	return &Sheet{
		Name:         "moderated_responses",
		KeyPrefix:    DefaultKeyPrefix,
		StatusColumn: "Verification_Status",
		Accepted:     DefaultAccepted,
		Columns: []string{
			"Verification_Status",
			"Moderator_Name",
			"Timestamp",
			"Item_Name",
			"Item_Name_Audio_File_Link",
			"Item_Description_Text",
			"Item_Description_Audio_File_Link",
			"Date_Of_Origin_Calendar",
			"Date_Of_Origin_Years_Ago",
			"Location_Of_Origin_Place_Name",
			"Location_Of_Origin_GPS",
			"Item_Image_File_Link",
			"Image_Source_Link",
			"Image Credit",
			"Next_12",
			"Tags",
			"Sources",
		},
		Required: []string{"Item_Name", "Item_Description_Text"},
	}
}
