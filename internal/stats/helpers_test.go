// ABOUTME: Shared fixtures for statistics tests.
// ABOUTME: Builds snapshots directly from players and entries.
package stats

import (
	"fmt"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/wellness"
)

type metrics map[models.Metric]float64

func mkEntry(date, name string, m metrics) *models.WellnessEntry {
	e := models.NewEntry(date, name)
	for k, v := range m {
		e.SetValue(k, v)
	}
	return e
}

func snapshot(players []*models.Player, entries ...*models.WellnessEntry) *wellness.Snapshot {
	return wellness.NewSnapshot(players, entries, nil, models.DefaultSettings())
}

// dayN returns 2026-01-01 plus n days as a date key.
func dayN(n int) string {
	return fmt.Sprintf("2026-01-%02d", n+1)
}
