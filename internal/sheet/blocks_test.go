// ABOUTME: Tests for the multi-block importer.
// ABOUTME: Covers block listing, date association, selection and merging.
package sheet

import (
	"errors"
	"testing"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestListBlocks(t *testing.T) {
	listing, err := ListBlocks(multiBlockTable(), testOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, listing.HeaderRow)
	require.Len(t, listing.Blocks, 2)
	require.Len(t, listing.Unresolved, 1)

	assert.Equal(t, "2026-01-06", listing.Blocks[0].DateKey())
	assert.Equal(t, 0, listing.Blocks[0].StartCol)
	assert.Equal(t, 7, listing.Blocks[0].EndCol)
	assert.Equal(t, "Tue 06 Jan 2026", listing.Blocks[0].Label)

	assert.Equal(t, "2026-01-07", listing.Blocks[1].DateKey())
	assert.Equal(t, 8, listing.Blocks[1].StartCol)

	un := listing.Unresolved[0]
	assert.False(t, un.HasDate)
	assert.Equal(t, "", un.DateKey())
	assert.Equal(t, 16, un.StartCol)
	assert.Equal(t, 23, un.EndCol)
	assert.Equal(t, "block 3 (column Q)", un.Label)

	assert.Equal(t, []time.Time{day(2026, 1, 6), day(2026, 1, 7)}, listing.Dates())
}

func TestListBlocksNoMarkers(t *testing.T) {
	_, err := ListBlocks(Table{{"DUPONT", "4"}}, testOptions())
	assert.True(t, errors.Is(err, ErrNoBlocks), "err = %v", err)

	_, err = ListBlocks(Table{}, testOptions())
	assert.True(t, errors.Is(err, ErrEmptyTable))
}

func TestListBlocksDateNotReused(t *testing.T) {
	// One date above the first marker only: the second block must not borrow it.
	table := Table{
		blockRow([]string{"6 janvier 2026"}, nil),
		blockRow([]string{"Joueur"}, []string{"Joueur"}),
	}
	listing, err := ListBlocks(table, testOptions())
	require.NoError(t, err)

	require.Len(t, listing.Blocks, 1)
	assert.Equal(t, 0, listing.Blocks[0].StartCol)
	require.Len(t, listing.Unresolved, 1)
	assert.Equal(t, 8, listing.Unresolved[0].StartCol)
}

func TestListBlocksUndatedMiddleBlock(t *testing.T) {
	// The middle block has no date of its own; it does not inherit the first
	// block's date and the third block keeps its own.
	table := Table{
		blockRow([]string{"lundi 5 janvier 2026"}, nil, []string{"mercredi 7 janvier 2026"}),
		blockRow([]string{"Joueur"}, []string{"Joueur"}, []string{"Joueur"}),
	}
	listing, err := ListBlocks(table, testOptions())
	require.NoError(t, err)

	require.Len(t, listing.Blocks, 2)
	assert.Equal(t, "2026-01-05", listing.Blocks[0].DateKey())
	assert.Equal(t, "2026-01-07", listing.Blocks[1].DateKey())
	assert.Equal(t, 16, listing.Blocks[1].StartCol)

	require.Len(t, listing.Unresolved, 1)
	assert.Equal(t, 8, listing.Unresolved[0].StartCol)
	assert.Equal(t, "block 2 (column I)", listing.Unresolved[0].Label)
}

func TestImportBlocksSelected(t *testing.T) {
	mb, err := ImportBlocks(multiBlockTable(), []time.Time{day(2026, 1, 7)}, testOptions())
	require.NoError(t, err)

	require.Len(t, mb.Batches, 1)
	assert.Len(t, mb.Unresolved, 1)

	b := mb.Batches[0]
	assert.Equal(t, "2026-01-07", b.DateKey())
	require.Len(t, b.Entries, 2)

	dupont := b.Entries[0]
	assert.Equal(t, "DUPONT", dupont.Name)
	assert.Nil(t, dupont.Weight)
	require.NotNil(t, dupont.Sleep)
	assert.Equal(t, 2.0, *dupont.Sleep)
	assert.Equal(t, "fatigué", dupont.Remark)

	martin := b.Entries[1]
	assert.Equal(t, "MARTIN", martin.Name)
	assert.Nil(t, martin.Sleep)
	require.NotNil(t, martin.MentalLoad)
	assert.Equal(t, 4.0, *martin.MentalLoad)

	assert.Equal(t, 1, mb.Diagnostics.AggregateRows)
	assert.Equal(t, 2, mb.EntriesCount())
}

func TestImportBlocksAllDatesChronological(t *testing.T) {
	selected := []time.Time{day(2026, 1, 7), day(2026, 1, 6)}
	mb, err := ImportBlocks(multiBlockTable(), selected, testOptions())
	require.NoError(t, err)

	require.Len(t, mb.Batches, 2)
	assert.Equal(t, "2026-01-06", mb.Batches[0].DateKey())
	assert.Equal(t, "2026-01-07", mb.Batches[1].DateKey())

	first := mb.Batches[0]
	require.Len(t, first.Entries, 2)
	assert.Equal(t, "ok", first.Entries[0].Remark)
	assert.Equal(t, 1, first.Diagnostics.RemarkRows)
	assert.Equal(t, 4, mb.EntriesCount())
}

func TestImportBlocksNoMatch(t *testing.T) {
	_, err := ImportBlocks(multiBlockTable(), []time.Time{day(2026, 1, 8)}, testOptions())
	assert.True(t, errors.Is(err, ErrNoMatchingBlocks), "err = %v", err)

	_, err = ImportBlocks(multiBlockTable(), nil, testOptions())
	assert.True(t, errors.Is(err, ErrNoMatchingBlocks))
}

func TestImportBlocksSameDateMerge(t *testing.T) {
	header := []string{"Joueur", "", "", "", "", "", "Remarque"}
	table := Table{
		blockRow([]string{"6 janvier 2026"}, []string{"6 janvier 2026"}),
		blockRow(header, header),
		blockRow(
			[]string{"DUPONT", "1", "1", "1", "1", "1"},
			[]string{"DUPONT", "5", "5", "5", "5", "5"},
		),
		blockRow(
			[]string{"MARTIN", "3", "3", "3", "3", "3"},
			nil,
		),
	}

	mb, err := ImportBlocks(table, []time.Time{day(2026, 1, 6)}, testOptions())
	require.NoError(t, err)
	require.Len(t, mb.Batches, 1)

	entries := mb.Batches[0].Entries
	require.Len(t, entries, 2)
	assert.Equal(t, "DUPONT", entries[0].Name)
	assert.Equal(t, 5.0, *entries[0].Sleep)
	assert.Equal(t, "MARTIN", entries[1].Name)
}

func TestMergeEntries(t *testing.T) {
	a := models.NewEntry("2026-01-06", "DUPONT").WithWeight(90)
	b := models.NewEntry("2026-01-06", "MARTIN").WithWeight(100)
	c := models.NewEntry("2026-01-06", "DUPONT").WithWeight(91)

	merged := mergeEntries([]*models.WellnessEntry{a, b}, []*models.WellnessEntry{c})
	require.Len(t, merged, 2)
	assert.Same(t, c, merged[0])
	assert.Same(t, b, merged[1])
}
