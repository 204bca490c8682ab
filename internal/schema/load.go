package schema

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
)

// LoadError reports a problem loading sheet declarations from disk.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Load error codes.
const (
	ErrCodeNotFound   = "S001" // schema directory not found
	ErrCodeNoFiles    = "S002" // no CUE files in directory
	ErrCodeLoadFailed = "S003" // CUE load/build failed
	ErrCodeCompile    = "S004" // sheet compilation failed
)

// LoadDir loads every sheet declared in the CUE files under dir.
//
// All declarations live under the top-level "sheet" struct, keyed by
// sheet name. Compilation errors for individual sheets are collected;
// sheets that compile cleanly are still returned alongside the errors,
// so a CLI can report every problem in one pass.
func LoadDir(dir string) ([]*Sheet, []error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("schema directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing schema directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	cueFiles, err := findCUEFiles(dir)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(cueFiles) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}}
	}

	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("building CUE value: %v", err)}}
	}

	sheetsVal := value.LookupPath(cue.ParsePath("sheet"))
	if !sheetsVal.Exists() {
		return nil, []error{&LoadError{Code: ErrCodeCompile, Message: "no sheet declarations found"}}
	}

	var sheets []*Sheet
	var errs []error

	iter, iterErr := sheetsVal.Fields()
	if iterErr != nil {
		return nil, []error{&LoadError{Code: ErrCodeCompile, Message: fmt.Sprintf("iterating sheets: %v", iterErr)}}
	}
	for iter.Next() {
		s, compileErr := Compile(iter.Value())
		if compileErr != nil {
			errs = append(errs, compileErr)
			continue
		}
		sheets = append(sheets, s)
	}

	if len(sheets) == 0 && len(errs) == 0 {
		errs = append(errs, &LoadError{Code: ErrCodeCompile, Message: "no sheets compiled"})
	}
	return sheets, errs
}

// Find returns the sheet with the given name, or nil.
func Find(sheets []*Sheet, name string) *Sheet {
	for _, s := range sheets {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func findCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
