package diff

import (
	"fmt"
	"sort"
)

// Strategy decides which current rows count as new relative to previous.
// Implementations must not mutate their inputs; returned slices are
// freshly allocated.
type Strategy interface {
	// Name identifies the strategy in config and reports.
	Name() string

	// NewRows returns the current rows absent from previous, under the
	// strategy's identity and ordering rules.
	NewRows(current, previous [][]string) [][]string
}

// Strategy names accepted by ForName.
const (
	StrategyKeyed = "keyed"
	StrategySet   = "set"
)

// ForName returns the named strategy. prefix only applies to the keyed
// strategy.
func ForName(name string, prefix int) (Strategy, error) {
	switch name {
	case StrategyKeyed:
		return Keyed{Prefix: prefix}, nil
	case StrategySet:
		return Set{}, nil
	default:
		return nil, fmt.Errorf("unknown diff strategy %q (want %q or %q)", name, StrategyKeyed, StrategySet)
	}
}

// Keyed detects new rows by a fixed-size prefix key, preserving the
// original order of current's rows.
//
// Duplicate rows within current that are absent from previous are each
// emitted once per occurrence: the key set is built from previous only,
// so occurrences within current never exclude each other.
type Keyed struct {
	// Prefix is the number of leading cells forming the key.
	Prefix int
}

// Name implements Strategy.
func (k Keyed) Name() string { return StrategyKeyed }

// NewRows implements Strategy.
func (k Keyed) NewRows(current, previous [][]string) [][]string {
	prev := keySet(previous, k.Prefix)

	newRows := make([][]string, 0)
	for _, row := range current {
		if _, seen := prev[KeyOf(row, k.Prefix)]; !seen {
			newRows = append(newRows, row)
		}
	}
	return newRows
}

// Set detects new rows by exact full-row equality, treating current and
// previous as mathematical sets.
//
// Duplicates within current collapse to a single occurrence and input
// order is not preserved; output is sorted by key so results are
// deterministic across runs.
type Set struct{}

// Name implements Strategy.
func (Set) Name() string { return StrategySet }

// NewRows implements Strategy.
func (Set) NewRows(current, previous [][]string) [][]string {
	prev := keySet(previous, 0)

	// Collapse current into a set keyed by the full row.
	distinct := make(map[Key][]string, len(current))
	for _, row := range current {
		distinct[KeyOf(row, 0)] = row
	}

	keys := make([]Key, 0, len(distinct))
	for key := range distinct {
		if _, seen := prev[key]; !seen {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	newRows := make([][]string, 0, len(keys))
	for _, key := range keys {
		newRows = append(newRows, distinct[key])
	}
	return newRows
}
