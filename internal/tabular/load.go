package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	encoding encoding.Encoding
}

// WithEncoding decodes the file from the given character encoding before
// CSV parsing. The default is UTF-8 (no transformation). Use this for
// exports produced by spreadsheet tools that write legacy encodings,
// e.g. charmap.Windows1252.
func WithEncoding(enc encoding.Encoding) LoadOption {
	return func(c *loadConfig) {
		c.encoding = enc
	}
}

// Load reads a delimited snapshot file into a Table.
//
// Returns found=false (and no error) when the file does not exist - a
// missing snapshot means "no prior export", which callers handle as a
// normal state rather than a failure. All other I/O and CSV syntax
// problems are returned as errors.
//
// The first record becomes the header. Records are not checked for a
// consistent field count; short rows pass through unchanged.
func Load(path string, opts ...LoadOption) (*Table, bool, error) {
	cfg := loadConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	var src io.Reader = f
	if cfg.encoding != nil {
		src = transform.NewReader(f, cfg.encoding.NewDecoder())
	}

	r := csv.NewReader(src)
	// Short rows are legal input; disable the reader's field-count check.
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, true, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	t := &Table{}
	if len(records) > 0 {
		t.Header = records[0]
		t.Rows = records[1:]
	}
	return t, true, nil
}
