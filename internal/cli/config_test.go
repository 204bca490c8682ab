package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	src := `
current: data/latest.csv
previous: data/previous.csv
output: data/new_rows.csv
metadata: data/comparison_metadata.json
strategy: set
key_prefix: 3
verified_only: true
`
	path := writeTestFile(t, dir, "pipeline.yaml", src)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "data/latest.csv", cfg.Current)
	assert.Equal(t, "data/previous.csv", cfg.Previous)
	assert.Equal(t, "data/new_rows.csv", cfg.Output)
	assert.Equal(t, "set", cfg.Strategy)
	assert.Equal(t, 3, cfg.KeyPrefix)
	assert.True(t, cfg.VerifiedOnly)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "bad.yaml", "current: [unclosed\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestResolveSheet_Default(t *testing.T) {
	s, err := resolveSheet("", "")
	require.NoError(t, err)
	assert.Equal(t, "moderated_responses", s.Name)
}

func TestResolveSheet_NamedSheet(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "sheets.cue", `
sheet: a: { key_prefix: 2 }
sheet: b: { key_prefix: 7 }
`)

	s, err := resolveSheet(dir, "b")
	require.NoError(t, err)
	assert.Equal(t, 7, s.KeyPrefix)

	_, err = resolveSheet(dir, "c")
	require.Error(t, err)

	// Two sheets and no name is ambiguous.
	_, err = resolveSheet(dir, "")
	require.Error(t, err)
}
