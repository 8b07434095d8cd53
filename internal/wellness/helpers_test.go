// ABOUTME: Shared fixtures for wellness store tests.
// ABOUTME: Provides repositories, clocks and sample sheets.
package wellness

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/sheet"
	"github.com/harperreed/wellness/internal/storage"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "wellness.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestStore(t *testing.T) (*Store, *storage.DB) {
	t.Helper()
	db := setupTestDB(t)
	s, err := Open(db, nil)
	require.NoError(t, err)
	return s, db
}

func fixedNow() time.Time {
	return time.Date(2026, 1, 6, 9, 0, 0, 0, time.UTC)
}

func testOptions() sheet.Options {
	return sheet.Options{Now: fixedNow}
}

const e2eCSV = "Joueur,Poids,Sommeil,Charge mentale,Motivation,HDC,BDC,Remarque\n" +
	"EQUIPE,,4,3,5,4,4,\n" +
	"DUPONT,92,4,3,5,4,4,ça va\n"

func e2eTable() sheet.Table {
	return sheet.Table{
		{"Joueur", "Poids", "Sommeil", "Charge mentale", "Motivation", "HDC", "BDC", "Remarque"},
		{"EQUIPE", "", "4", "3", "5", "4", "4", ""},
		{"DUPONT", "92", "4", "3", "5", "4", "4", "ça va"},
	}
}

// twoBlockTable has two dated blocks of eight columns each.
func twoBlockTable() sheet.Table {
	pad := func(cells ...string) []string {
		row := make([]string, 16)
		copy(row, cells)
		return row
	}
	join := func(a, b []string) []string {
		row := pad(a...)
		copy(row[8:], b)
		return row
	}
	header := []string{"Joueur", "Sommeil", "Charge", "Motivation", "HDC", "BDC", "Remarque"}
	return sheet.Table{
		join([]string{"lundi 5 janvier 2026"}, []string{"mardi 6 janvier 2026"}),
		join(header, header),
		join([]string{"DUPONT", "4", "4", "4", "4", "4", "ok"}, []string{"DUPONT", "2", "2", "2", "2", "2"}),
		join([]string{"MARTIN", "3", "3", "3", "3", "3"}, []string{"TOTAL"}),
	}
}

func batch(date string, entries ...*models.WellnessEntry) *sheet.Batch {
	d, _ := time.Parse(models.DateLayout, date)
	for _, e := range entries {
		e.Date = date
	}
	return &sheet.Batch{Date: d, Entries: entries}
}

func entry(name string, sleep float64) *models.WellnessEntry {
	e := models.NewEntry("", name)
	e.SetValue(models.MetricSleep, sleep)
	return e
}

var errBoom = errors.New("boom")

// entryFailKV keeps everything in memory but refuses entry writes.
type entryFailKV struct {
	*storage.MemoryKV
}

func (f *entryFailKV) Set(key, value []byte) error {
	if strings.HasPrefix(string(key), storage.EntryPrefix) {
		return errBoom
	}
	return f.MemoryKV.Set(key, value)
}

// newFailingRepo returns a repository whose entry writes fail, along with
// the KV underneath it.
func newFailingRepo() (*storage.KVStore, *storage.MemoryKV) {
	mem := storage.NewMemoryKV()
	return storage.NewKVStore(&entryFailKV{MemoryKV: mem}), mem
}
