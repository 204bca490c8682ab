package moderated

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/roach88/sheetdelta/internal/tabular"
)

// Skip records why a row was dropped during parsing. Skips are values,
// not errors: the batch continues with the next row.
type Skip struct {
	// RowNum is the row's sequence position in the snapshot, counted
	// from 2 so numbers match the source file (row 1 is the header).
	RowNum int

	// Field is the required column that was missing or empty.
	Field string
}

// Reason is a human-readable description of the skip.
func (s Skip) Reason() string {
	return "missing " + s.Field
}

// Parser converts rows into Items. The zero value is usable; Log
// defaults to a no-op logger.
type Parser struct {
	// Log receives a warn event per skipped row. Optional.
	Log zerolog.Logger

	// OnSkip, if set, is called for each skipped row in addition to
	// logging. Side channel for callers that collect diagnostics.
	OnSkip func(Skip)
}

// Result reports a batch parse. Skip reasons travel through the side
// channel (Parser.OnSkip / log events); the counts here are always
// observable regardless.
type Result struct {
	Items   []Item
	Parsed  int
	Skipped int
}

// ParseRow converts one raw row into an Item.
//
// Returns (nil, skip) when a required field is empty after trimming -
// never a partially populated Item. Every optional field is trimmed and
// becomes nil when empty. rowNum is only used for diagnostics.
func (p *Parser) ParseRow(rec map[string]string, rowNum int) (*Item, *Skip) {
	name := strings.TrimSpace(rec[ColItemName])
	if name == "" {
		return nil, &Skip{RowNum: rowNum, Field: ColItemName}
	}
	desc := strings.TrimSpace(rec[ColDescription])
	if desc == "" {
		return nil, &Skip{RowNum: rowNum, Field: ColDescription}
	}

	return &Item{
		Name:                 name,
		Description:          desc,
		NameAudioLink:        strOrNil(rec[ColItemNameAudio]),
		DescriptionAudioLink: strOrNil(rec[ColDescriptionAudio]),
		DateCalendar:         strOrNil(rec[ColDateCalendar]),
		YearsAgo:             intOrNil(rec[ColDateYearsAgo]),
		PlaceName:            strOrNil(rec[ColLocationPlace]),
		GPS:                  strOrNil(rec[ColLocationGPS]),
		ImageLink:            strOrNil(rec[ColImageLink]),
		ImageSource:          strOrNil(rec[ColImageSource]),
		ImageCredit:          strOrNil(rec[ColImageCredit]),
		Next:                 strOrNil(rec[ColNext]),
		Tags:                 strOrNil(rec[ColTags]),
		Sources:              strOrNil(rec[ColSources]),
	}, nil
}

// ParseAll parses every data row of the table, skipping invalid rows
// individually. Returned items are in row order.
func (p *Parser) ParseAll(t *tabular.Table) *Result {
	res := &Result{Items: make([]Item, 0, len(t.Rows))}

	for i, row := range t.Rows {
		// Row 1 is the header, so data rows start at 2.
		rowNum := i + 2

		item, skip := p.ParseRow(t.Record(row), rowNum)
		if skip != nil {
			res.Skipped++
			p.Log.Warn().
				Int("row", skip.RowNum).
				Str("field", skip.Field).
				Msg("skipping row")
			if p.OnSkip != nil {
				p.OnSkip(*skip)
			}
			continue
		}
		res.Items = append(res.Items, *item)
		res.Parsed++
	}
	return res
}

// strOrNil trims s and returns nil for empty input.
func strOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// intOrNil parses s as an integer. Empty input or a parse failure both
// yield nil - coercion failures degrade silently rather than rejecting
// the row.
func intOrNil(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
