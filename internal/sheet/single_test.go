// ABOUTME: Tests for the single-day importer.
// ABOUTME: Runs full tables through date, header, mapping and row rules.
package sheet

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportSingleDayMinimal(t *testing.T) {
	batch, err := ImportSingleDay(e2eTable(), testOptions())
	require.NoError(t, err)

	assert.True(t, batch.Diagnostics.DateFallback)
	assert.Equal(t, "2026-03-02", batch.DateKey())
	assert.Equal(t, 1, batch.Diagnostics.AggregateRows)
	require.Len(t, batch.Entries, 1)

	e := batch.Entries[0]
	assert.Equal(t, "DUPONT", e.Name)
	assert.Equal(t, "2026-03-02", e.Date)
	require.NotNil(t, e.Weight)
	assert.Equal(t, 92.0, *e.Weight)
	require.NotNil(t, e.Sleep)
	assert.Equal(t, 4.0, *e.Sleep)
	assert.Equal(t, "ça va", e.Remark)

	avg, ok := e.Average()
	require.True(t, ok)
	assert.Equal(t, 4.0, avg)
}

func TestImportSingleDayDirtySheet(t *testing.T) {
	batch, err := ImportSingleDay(dayTable(), testOptions())
	require.NoError(t, err)

	assert.False(t, batch.Diagnostics.DateFallback)
	assert.Equal(t, "2026-01-06", batch.DateKey())
	assert.False(t, batch.Mapping.Fallback)

	require.Len(t, batch.Entries, 2)
	dupont, martin := batch.Entries[0], batch.Entries[1]

	// The second DUPONT row replaces the first.
	assert.Equal(t, "DUPONT", dupont.Name)
	require.NotNil(t, dupont.Weight)
	assert.Equal(t, 93.0, *dupont.Weight)
	assert.Equal(t, "", dupont.Remark)

	assert.Equal(t, "MARTIN", martin.Name)
	require.NotNil(t, martin.Weight)
	assert.Equal(t, 101.5, *martin.Weight)
	assert.Nil(t, martin.MentalLoad)
	assert.Nil(t, martin.Motivation)
	assert.Nil(t, martin.BDC)
	assert.Equal(t, 2, martin.MetricCount())

	d := batch.Diagnostics
	assert.Equal(t, 8, d.RowsScanned)
	assert.Equal(t, 2, d.AggregateRows)
	assert.Equal(t, 1, d.RemarkRows)
	assert.Equal(t, 1, d.EmptyRows)
	assert.Equal(t, 1, d.BlankRows)
	assert.Equal(t, 1, d.DuplicateRows)
	assert.Equal(t, 4, d.Skipped())
}

func TestImportSingleDayPositionalFallback(t *testing.T) {
	table := Table{
		{"", "5 février 2026"},
		{"", "Joueur", "Poids", "Sommeil", "", "", "", "", "", ""},
		{"", "PETIT", "88", "3", "2", "4", "3", "3", "3", "RAS"},
	}

	batch, err := ImportSingleDay(table, testOptions())
	require.NoError(t, err)
	assert.Equal(t, "2026-02-05", batch.DateKey())
	assert.True(t, batch.Mapping.Fallback)
	assert.True(t, batch.Diagnostics.FallbackMapping)

	require.Len(t, batch.Entries, 1)
	e := batch.Entries[0]
	assert.Equal(t, 5, e.MetricCount())
	require.NotNil(t, e.MentalLoad)
	assert.Equal(t, 2.0, *e.MentalLoad)
	assert.Equal(t, "RAS", e.Remark)
}

func TestImportSingleDayErrors(t *testing.T) {
	_, err := ImportSingleDay(Table{}, testOptions())
	assert.True(t, errors.Is(err, ErrEmptyTable), "err = %v", err)

	_, err = ImportSingleDay(Table{{"DUPONT", "4", "3"}}, testOptions())
	assert.True(t, errors.Is(err, ErrNoHeader), "err = %v", err)

	noName := Table{{"Poids", "Sommeil", "Motivation", "Charge mentale"}}
	_, err = ImportSingleDay(noName, testOptions())
	assert.True(t, errors.Is(err, ErrNoNameColumn), "err = %v", err)
}

func TestImportSingleDayScanWindows(t *testing.T) {
	table := dayTable()
	opts := testOptions()
	opts.HeaderScanRows = 2

	_, err := ImportSingleDay(table, opts)
	assert.True(t, errors.Is(err, ErrNoHeader))

	opts = testOptions()
	opts.DateScanRows = 1
	opts.Now = func() time.Time { return time.Date(2026, 1, 1, 23, 0, 0, 0, time.UTC) }
	batch, err := ImportSingleDay(table, opts)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-06", batch.DateKey(), "date on first row is inside a one-row window")
}
