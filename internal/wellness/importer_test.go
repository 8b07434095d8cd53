// ABOUTME: Tests for the Importer: local CSV/Excel files and remote sheets.
// ABOUTME: Remote sources are served by httptest.
package wellness

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImporterCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.csv")
	require.NoError(t, os.WriteFile(path, []byte(e2eCSV), 0600))

	s := New(nil, nil)
	im := NewImporter(s, testOptions(), nil)

	res, err := im.ImportSingleDay(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, res.EntriesCount)
	assert.Equal(t, 1, res.NewPlayersCount)
}

func TestImporterExcelFile(t *testing.T) {
	day := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
	e := models.NewEntry("2026-01-06", "DUPONT").WithWeight(92)
	e.SetValue(models.MetricSleep, 4)

	var buf bytes.Buffer
	require.NoError(t, sheet.WriteWorkbook(&buf, []sheet.DaySheet{{Date: day, Entries: []*models.WellnessEntry{e}}}))
	path := filepath.Join(t.TempDir(), "day.xlsx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0600))

	s := New(nil, nil)
	res, err := NewImporter(s, testOptions(), nil).ImportSingleDay(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-06", res.Date)

	got, ok := s.Snapshot().Entry("2026-01-06", "DUPONT")
	require.True(t, ok)
	assert.Equal(t, 4.0, *got.Sleep)
}

func TestImporterMissingFile(t *testing.T) {
	im := NewImporter(New(nil, nil), testOptions(), nil)
	_, err := im.ImportSingleDay(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestImporterURLWithoutFetcher(t *testing.T) {
	im := NewImporter(New(nil, nil), testOptions(), nil)
	_, err := im.ImportSingleDay(context.Background(), "https://docs.google.com/spreadsheets/d/abc/edit")
	assert.ErrorIs(t, err, ErrNoFetcher)
}

func TestImporterGoogleSheet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spreadsheets/d/abc123/gviz/tq", r.URL.Path)
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(e2eCSV))
	}))
	defer srv.Close()

	fetcher := sheet.NewFetcher(sheet.FetchConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
	s := New(nil, nil)
	im := NewImporter(s, testOptions(), fetcher)

	res, err := im.ImportSingleDay(context.Background(), "https://docs.google.com/spreadsheets/d/abc123/edit#gid=0")
	require.NoError(t, err)
	assert.Equal(t, 1, res.EntriesCount)
}

func TestImporterBlocksFromCSV(t *testing.T) {
	var buf bytes.Buffer
	for _, row := range twoBlockTable() {
		for i, c := range row {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(c)
		}
		buf.WriteByte('\n')
	}
	path := filepath.Join(t.TempDir(), "week.csv")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0600))

	s := New(nil, nil)
	im := NewImporter(s, testOptions(), nil)

	listing, err := im.ListBlocks(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, listing.Blocks, 2)

	res, err := im.ImportBlocks(context.Background(), path, []time.Time{listing.Blocks[1].Date})
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-06"}, res.DatesImported)
	assert.Equal(t, 1, res.EntriesCount)
	assert.Equal(t, []string{"2026-01-06"}, s.Snapshot().Dates())
}
