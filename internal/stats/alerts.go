// ABOUTME: Per-date alerts: low metric values, weight drift, and sudden drops.
// ABOUTME: Alerts are derived on every call and never stored.
package stats

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/wellness"
)

// AlertKind identifies the rule that fired.
type AlertKind string

const (
	AlertLowValue  AlertKind = "low_value"
	AlertWeight    AlertKind = "weight"
	AlertVariation AlertKind = "variation"
)

// Alert is one fired rule for one player on one date.
type Alert struct {
	Kind      AlertKind     `json:"kind"`
	Date      string        `json:"date"`
	PlayerID  uuid.UUID     `json:"player_id"`
	Player    string        `json:"player"`
	Metric    models.Metric `json:"metric,omitempty"`
	Value     float64       `json:"value"`
	Threshold float64       `json:"threshold"`
	// Diff is value minus target for weight alerts, and current minus
	// previous average for variation alerts.
	Diff     float64  `json:"diff,omitempty"`
	Target   float64  `json:"target,omitempty"`
	Previous *float64 `json:"previous,omitempty"`
	Since    string   `json:"since,omitempty"`
}

// AlertsForDate evaluates every alert rule on a date's entries. Rows with no
// matching player are skipped.
func AlertsForDate(snap *wellness.Snapshot, date string) []Alert {
	settings := snap.Settings
	dir := snap.Directory()
	var alerts []Alert

	for _, e := range snap.Day(date) {
		p, ok := dir.Lookup(e.Name)
		if !ok {
			continue
		}

		for _, m := range models.Metrics {
			v := e.Value(m)
			if v == nil || *v > settings.LowValueThreshold {
				continue
			}
			alerts = append(alerts, Alert{
				Kind:      AlertLowValue,
				Date:      date,
				PlayerID:  p.ID,
				Player:    p.Name,
				Metric:    m,
				Value:     *v,
				Threshold: settings.LowValueThreshold,
			})
		}

		if e.Weight != nil {
			diff := *e.Weight - p.TargetWeight
			if math.Abs(diff) > settings.WeightThreshold {
				alerts = append(alerts, Alert{
					Kind:      AlertWeight,
					Date:      date,
					PlayerID:  p.ID,
					Player:    p.Name,
					Value:     *e.Weight,
					Threshold: settings.WeightThreshold,
					Diff:      diff,
					Target:    p.TargetWeight,
				})
			}
		}

		if a, ok := variationAlert(snap, date, e, p); ok {
			alerts = append(alerts, a)
		}
	}
	return alerts
}

// variationAlert compares the entry's average with the player's most recent
// earlier entry that has one.
func variationAlert(snap *wellness.Snapshot, date string, e *models.WellnessEntry, p *models.Player) (Alert, bool) {
	current, ok := e.Average()
	if !ok {
		return Alert{}, false
	}

	dates := snap.Dates()
	idx := sort.SearchStrings(dates, date)
	for i := idx - 1; i >= 0; i-- {
		prev, ok := snap.Entry(dates[i], e.Name)
		if !ok {
			continue
		}
		prevAvg, ok := prev.Average()
		if !ok {
			continue
		}
		drop := prevAvg - current
		if drop < snap.Settings.VariationThreshold {
			return Alert{}, false
		}
		return Alert{
			Kind:      AlertVariation,
			Date:      date,
			PlayerID:  p.ID,
			Player:    p.Name,
			Metric:    models.MetricGlobal,
			Value:     current,
			Threshold: snap.Settings.VariationThreshold,
			Diff:      current - prevAvg,
			Previous:  &prevAvg,
			Since:     dates[i],
		}, true
	}
	return Alert{}, false
}
