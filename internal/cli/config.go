package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/sheetdelta/internal/schema"
)

// Config is the optional YAML pipeline configuration. Every field has a
// corresponding flag; explicit flags win over config values.
type Config struct {
	// Snapshot paths.
	Current  string `yaml:"current"`
	Previous string `yaml:"previous"`
	Output   string `yaml:"output"`
	Metadata string `yaml:"metadata"`

	// Diff policy.
	Strategy  string `yaml:"strategy"`
	KeyPrefix int    `yaml:"key_prefix"`

	// Dataset schema.
	SchemaDir string `yaml:"schema_dir"`
	Sheet     string `yaml:"sheet"`

	// Keep only verified rows in the diff output.
	VerifiedOnly bool `yaml:"verified_only"`
}

// LoadConfig reads a YAML pipeline config from path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveSheet loads the sheet layout named by the config, or the
// built-in default when no schema directory is configured.
func resolveSheet(schemaDir, sheetName string) (*schema.Sheet, error) {
	if schemaDir == "" {
		return schema.Default(), nil
	}

	sheets, errs := schema.LoadDir(schemaDir)
	if len(errs) > 0 {
		return nil, fmt.Errorf("load schemas from %s: %w", schemaDir, errs[0])
	}

	if sheetName == "" {
		if len(sheets) == 1 {
			return sheets[0], nil
		}
		return nil, fmt.Errorf("schema dir %s declares %d sheets, use --sheet to pick one", schemaDir, len(sheets))
	}

	s := schema.Find(sheets, sheetName)
	if s == nil {
		return nil, fmt.Errorf("sheet %q not found in %s", sheetName, schemaDir)
	}
	return s, nil
}
