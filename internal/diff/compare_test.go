package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sheetdelta/internal/tabular"
)

func table(header []string, rows ...[]string) *tabular.Table {
	return &tabular.Table{Header: header, Rows: rows}
}

var header = []string{"status", "mod", "ts", "name", "audio"}

func TestCompare_KeyedFindsNewRows(t *testing.T) {
	// Key on the first 3 cells; only the B row is unseen.
	current := table(header,
		[]string{"A", "1", "x", "x", "x"},
		[]string{"B", "2", "y", "y", "y"},
	)
	previous := table(header,
		[]string{"A", "1", "x", "x", "x"},
	)

	res := Compare(current, previous, Keyed{Prefix: 3})

	assert.Equal(t, OutcomeCompared, res.Outcome)
	require.Len(t, res.NewRows, 1)
	assert.Equal(t, []string{"B", "2", "y", "y", "y"}, res.NewRows[0])
	assert.Equal(t, 2, res.CurrentCount)
	assert.Equal(t, 1, res.PreviousCount)
	assert.Equal(t, 1, res.NewCount)
}

func TestCompare_Idempotent(t *testing.T) {
	snap := table(header,
		[]string{"A", "1", "x", "x", "x"},
		[]string{"B", "2", "y", "y", "y"},
	)

	for _, s := range []Strategy{Keyed{Prefix: 5}, Set{}} {
		res := Compare(snap, snap, s)
		assert.Empty(t, res.NewRows, "diff(current, current) must be empty for %s", s.Name())
		assert.Equal(t, 0, res.NewCount)
	}
}

func TestCompare_PreviousMissingAllNew(t *testing.T) {
	current := table(header,
		[]string{"B", "2", "y", "y", "y"},
		[]string{"A", "1", "x", "x", "x"},
	)

	res := Compare(current, nil, Keyed{Prefix: 5})

	assert.Equal(t, OutcomeNoPrevious, res.Outcome)
	assert.Equal(t, current.Rows, res.NewRows, "all rows new, original order")
	assert.Equal(t, 0, res.PreviousCount)
}

func TestCompare_PreviousHeaderOnlyAllNew(t *testing.T) {
	current := table(header, []string{"A", "1", "x", "x", "x"})
	previous := table(header)

	res := Compare(current, previous, Keyed{Prefix: 5})

	assert.Equal(t, OutcomeNoPrevious, res.Outcome)
	require.Len(t, res.NewRows, 1)
}

func TestCompare_CurrentMissing(t *testing.T) {
	res := Compare(nil, table(header, []string{"A"}), Keyed{Prefix: 5})

	assert.Equal(t, OutcomeCurrentMissing, res.Outcome)
	assert.Empty(t, res.NewRows)
	assert.Equal(t, 0, res.CurrentCount)
}

func TestCompare_CurrentEmpty(t *testing.T) {
	res := Compare(table(header), table(header, []string{"A"}), Keyed{Prefix: 5})

	assert.Equal(t, OutcomeCurrentEmpty, res.Outcome,
		"missing and empty current are distinct outcomes")
	assert.Empty(t, res.NewRows)
}

func TestCompare_KeyedPreservesOrder(t *testing.T) {
	current := table(header,
		[]string{"C", "3", "z", "z", "z"},
		[]string{"A", "1", "x", "x", "x"},
		[]string{"B", "2", "y", "y", "y"},
	)
	previous := table(header,
		[]string{"A", "1", "x", "x", "x"},
	)

	res := Compare(current, previous, Keyed{Prefix: 5})

	require.Len(t, res.NewRows, 2)
	assert.Equal(t, "C", res.NewRows[0][0], "current's original order is preserved")
	assert.Equal(t, "B", res.NewRows[1][0])
}

func TestCompare_KeyedEmitsDuplicatesPerOccurrence(t *testing.T) {
	dup := []string{"D", "4", "w", "w", "w"}
	current := table(header, dup, dup)
	previous := table(header, []string{"A", "1", "x", "x", "x"})

	res := Compare(current, previous, Keyed{Prefix: 5})

	assert.Len(t, res.NewRows, 2,
		"keyed strategy does not de-duplicate within current")
}

func TestCompare_SetCollapsesDuplicates(t *testing.T) {
	dup := []string{"D", "4", "w", "w", "w"}
	current := table(header, dup, dup)
	previous := table(header, []string{"A", "1", "x", "x", "x"})

	res := Compare(current, previous, Set{})

	assert.Len(t, res.NewRows, 1,
		"set strategy collapses duplicates within current")
}

func TestCompare_SetUsesFullRowIdentity(t *testing.T) {
	// Same 3-cell prefix, different trailing cell: distinct under Set.
	current := table(header,
		[]string{"A", "1", "x", "x", "edited"},
	)
	previous := table(header,
		[]string{"A", "1", "x", "x", "x"},
	)

	assert.Len(t, Compare(current, previous, Set{}).NewRows, 1)
	assert.Empty(t, Compare(current, previous, Keyed{Prefix: 3}).NewRows)
}

func TestCompare_ShortRowsKeyOnAvailableCells(t *testing.T) {
	current := table(header,
		[]string{"A", "1"},
		[]string{"B"},
	)
	previous := table(header,
		[]string{"A", "1"},
	)

	res := Compare(current, previous, Keyed{Prefix: 5})

	require.Len(t, res.NewRows, 1)
	assert.Equal(t, []string{"B"}, res.NewRows[0])
}

func TestCompare_DoesNotMutateInputs(t *testing.T) {
	current := table(header,
		[]string{"B", "2", "y", "y", "y"},
		[]string{"A", "1", "x", "x", "x"},
	)
	previous := table(header, []string{"A", "1", "x", "x", "x"})
	wantCurrent := [][]string{
		{"B", "2", "y", "y", "y"},
		{"A", "1", "x", "x", "x"},
	}

	_ = Compare(current, previous, Set{})

	assert.Equal(t, wantCurrent, current.Rows)
	assert.Len(t, previous.Rows, 1)
}

func TestForName(t *testing.T) {
	s, err := ForName("keyed", 3)
	require.NoError(t, err)
	assert.Equal(t, Keyed{Prefix: 3}, s)

	s, err = ForName("set", 0)
	require.NoError(t, err)
	assert.Equal(t, Set{}, s)

	_, err = ForName("fuzzy", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fuzzy")
}
