// ABOUTME: Per-player entry history across dates.
package stats

import (
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/wellness"
)

// HistoryPoint is one dated entry of a player.
type HistoryPoint struct {
	Date    string                `json:"date"`
	Entry   *models.WellnessEntry `json:"entry"`
	Average *float64              `json:"average,omitempty"`
}

// PlayerHistory returns the player's most recent days entries in
// chronological order. A days of zero or less returns every entry.
func PlayerHistory(snap *wellness.Snapshot, name string, days int) []HistoryPoint {
	dates := snap.Dates()
	var out []HistoryPoint
	for i := len(dates) - 1; i >= 0; i-- {
		if days > 0 && len(out) == days {
			break
		}
		e, ok := snap.Entry(dates[i], name)
		if !ok {
			continue
		}
		pt := HistoryPoint{Date: dates[i], Entry: e}
		if avg, ok := e.Average(); ok {
			pt.Average = &avg
		}
		out = append(out, pt)
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// PlayerDay returns a player's entry and the date's team aggregate for
// comparison. Either may be nil.
func PlayerDay(snap *wellness.Snapshot, name, date string) (*models.WellnessEntry, *Aggregate) {
	if dateIndex(snap.Dates(), date) < 0 {
		return nil, nil
	}
	e, _ := snap.Entry(date, name)
	return e, TeamAverage(snap, date, nil)
}
