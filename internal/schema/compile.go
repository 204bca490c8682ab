package schema

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// CompileError reports a problem compiling a CUE sheet declaration.
type CompileError struct {
	Field   string    // the sheet field that failed ("key_prefix", "columns", ...)
	Message string    // human-readable description
	Pos     token.Pos // CUE source position if available
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Compile parses a CUE value into a Sheet. The value should be the sheet
// struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`sheet: responses: { key_prefix: 5, ... }`)
//	s, err := schema.Compile(v.LookupPath(cue.ParsePath("sheet.responses")))
//
// Omitted optional fields fall back to the package defaults; required
// column declarations are validated against the column list when one is
// given.
func Compile(v cue.Value) (*Sheet, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	s := &Sheet{
		KeyPrefix: DefaultKeyPrefix,
		Accepted:  DefaultAccepted,
	}

	// Sheet name comes from the struct label (the path selector).
	labels := v.Path().Selectors()
	if len(labels) > 0 {
		s.Name = labels[len(labels)-1].String()
	}

	// key_prefix (optional, defaulted)
	if kp := v.LookupPath(cue.ParsePath("key_prefix")); kp.Exists() {
		n, err := kp.Int64()
		if err != nil {
			return nil, &CompileError{Field: "key_prefix", Message: "must be an integer", Pos: kp.Pos()}
		}
		if n < 1 {
			return nil, &CompileError{Field: "key_prefix", Message: fmt.Sprintf("must be >= 1, got %d", n), Pos: kp.Pos()}
		}
		s.KeyPrefix = int(n)
	}

	// status_column / accepted (optional)
	var err error
	if s.StatusColumn, err = optionalString(v, "status_column"); err != nil {
		return nil, err
	}
	if acc := v.LookupPath(cue.ParsePath("accepted")); acc.Exists() {
		val, strErr := acc.String()
		if strErr != nil {
			return nil, &CompileError{Field: "accepted", Message: "must be a string", Pos: acc.Pos()}
		}
		s.Accepted = val
	}

	// columns (optional list of strings)
	if s.Columns, err = optionalStringList(v, "columns"); err != nil {
		return nil, err
	}

	// required (optional list of strings)
	if s.Required, err = optionalStringList(v, "required"); err != nil {
		return nil, err
	}

	if verrs := s.Validate(); len(verrs) > 0 {
		return nil, &CompileError{Field: "sheet", Message: verrs[0].Error(), Pos: v.Pos()}
	}

	return s, nil
}

func optionalString(v cue.Value, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", nil
	}
	val, err := fv.String()
	if err != nil {
		return "", &CompileError{Field: field, Message: "must be a string", Pos: fv.Pos()}
	}
	return val, nil
}

func optionalStringList(v cue.Value, field string) ([]string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return nil, nil
	}
	iter, err := fv.List()
	if err != nil {
		return nil, &CompileError{Field: field, Message: "must be a list of strings", Pos: fv.Pos()}
	}
	var out []string
	for iter.Next() {
		item, err := iter.Value().String()
		if err != nil {
			return nil, &CompileError{Field: field, Message: "must be a list of strings", Pos: iter.Value().Pos()}
		}
		out = append(out, item)
	}
	return out, nil
}

// formatCUEError converts a CUE error into a CompileError with position.
// CUE errors may contain multiple errors; the first one wins.
func formatCUEError(err error) *CompileError {
	pos := token.NoPos
	if errs := errors.Errors(err); len(errs) > 0 {
		if positions := errors.Positions(errs[0]); len(positions) > 0 {
			pos = positions[0]
		}
	}
	return &CompileError{Field: "cue", Message: err.Error(), Pos: pos}
}
