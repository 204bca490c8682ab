package diff

import "strconv"

// Key is a comparable identity value derived from a row's cells.
// Keys are stable: the same cell sequence always yields the same Key,
// independent of the row's position in the file.
type Key string

// KeyOf derives a Key from the first prefix cells of the row. Rows
// shorter than the prefix use all available cells - graceful
// degradation, not an error. A prefix <= 0 keys the entire row.
//
// Each cell is length-prefixed in the encoding so that cell boundaries
// never collide: {"ab", "c"} and {"a", "bc"} produce distinct keys.
func KeyOf(row []string, prefix int) Key {
	cells := row
	if prefix > 0 && prefix < len(row) {
		cells = row[:prefix]
	}

	n := 0
	for _, c := range cells {
		n += len(c) + 4
	}
	buf := make([]byte, 0, n)
	for _, c := range cells {
		buf = strconv.AppendInt(buf, int64(len(c)), 10)
		buf = append(buf, ':')
		buf = append(buf, c...)
	}
	return Key(buf)
}

// keySet builds the set of keys for every row under the given prefix.
func keySet(rows [][]string, prefix int) map[Key]struct{} {
	set := make(map[Key]struct{}, len(rows))
	for _, row := range rows {
		set[KeyOf(row, prefix)] = struct{}{}
	}
	return set
}
