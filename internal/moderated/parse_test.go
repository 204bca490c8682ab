package moderated

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sheetdelta/internal/tabular"
)

func fullRecord() map[string]string {
	return map[string]string{
		ColItemName:         "clay pot",
		ColItemNameAudio:    "https://cdn.example/pot-name.mp3",
		ColDescription:      "A fired clay vessel for storing water and grain.",
		ColDescriptionAudio: " https://cdn.example/pot-desc.mp3 ",
		ColDateCalendar:     "",
		ColDateYearsAgo:     "120",
		ColLocationPlace:    "Kisumu",
		ColLocationGPS:      "-0.0917, 34.7680",
		ColImageLink:        "https://cdn.example/pot.jpg",
		ColImageSource:      "",
		ColImageCredit:      "  ",
		ColNext:             "",
		ColTags:             "pottery, storage",
		ColSources:          "oral history",
	}
}

func TestParseRow_AllFields(t *testing.T) {
	p := &Parser{}

	item, skip := p.ParseRow(fullRecord(), 2)
	require.Nil(t, skip)
	require.NotNil(t, item)

	assert.Equal(t, "clay pot", item.Name)
	assert.Equal(t, "A fired clay vessel for storing water and grain.", item.Description)

	require.NotNil(t, item.DescriptionAudioLink)
	assert.Equal(t, "https://cdn.example/pot-desc.mp3", *item.DescriptionAudioLink,
		"optional fields are trimmed")

	require.NotNil(t, item.YearsAgo)
	assert.Equal(t, 120, *item.YearsAgo)

	assert.Nil(t, item.DateCalendar, "empty cell becomes nil")
	assert.Nil(t, item.ImageSource)
	assert.Nil(t, item.ImageCredit, "whitespace-only cell becomes nil")
	assert.Nil(t, item.Next)
}

func TestParseRow_MissingName(t *testing.T) {
	rec := fullRecord()
	rec[ColItemName] = "   "
	p := &Parser{}

	item, skip := p.ParseRow(rec, 7)
	assert.Nil(t, item, "never a partially populated record")
	require.NotNil(t, skip)
	assert.Equal(t, 7, skip.RowNum)
	assert.Equal(t, ColItemName, skip.Field)
	assert.Contains(t, skip.Reason(), ColItemName)
}

func TestParseRow_MissingDescription(t *testing.T) {
	rec := fullRecord()
	rec[ColDescription] = ""
	p := &Parser{}

	item, skip := p.ParseRow(rec, 3)
	assert.Nil(t, item)
	require.NotNil(t, skip)
	assert.Equal(t, ColDescription, skip.Field)
}

func TestParseRow_NonNumericYearsAgo(t *testing.T) {
	rec := fullRecord()
	rec[ColDateYearsAgo] = "about a hundred"
	p := &Parser{}

	item, skip := p.ParseRow(rec, 2)
	require.Nil(t, skip, "coercion failure is not a validation failure")
	assert.Nil(t, item.YearsAgo, "unparseable years-ago degrades to absent")
	assert.Equal(t, "clay pot", item.Name)
}

func TestParseRow_NegativeYearsAgo(t *testing.T) {
	rec := fullRecord()
	rec[ColDateYearsAgo] = "-40"
	p := &Parser{}

	item, _ := p.ParseRow(rec, 2)
	require.NotNil(t, item.YearsAgo)
	assert.Equal(t, -40, *item.YearsAgo)
}

func TestParseAll_SkipsInvalidRowsIndividually(t *testing.T) {
	table := &tabular.Table{
		Header: []string{ColItemName, ColDescription, ColTags},
		Rows: [][]string{
			{"clay pot", "holds water", "pottery"},
			{"", "no name", ""},
			{"loom", "weaves cloth"},   // short row: Tags absent
			{"drum", "", "music"},      // missing description
			{"basket", "woven reeds "}, // short row, still valid
		},
	}

	var skips []Skip
	p := &Parser{OnSkip: func(s Skip) { skips = append(skips, s) }}

	res := p.ParseAll(table)

	assert.Equal(t, 3, res.Parsed)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.Items, 3)
	assert.Equal(t, "clay pot", res.Items[0].Name)
	assert.Equal(t, "loom", res.Items[1].Name)
	assert.Equal(t, "basket", res.Items[2].Name)
	assert.Nil(t, res.Items[1].Tags, "short row's missing cells parse as absent")

	require.Len(t, skips, 2)
	assert.Equal(t, 3, skips[0].RowNum, "row numbers count from 2 to match the file")
	assert.Equal(t, ColItemName, skips[0].Field)
	assert.Equal(t, 5, skips[1].RowNum)
	assert.Equal(t, ColDescription, skips[1].Field)
}

func TestParseAll_EmptyTable(t *testing.T) {
	p := &Parser{}
	res := p.ParseAll(&tabular.Table{Header: []string{ColItemName}})

	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Parsed)
	assert.Equal(t, 0, res.Skipped)
}
