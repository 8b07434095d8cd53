// ABOUTME: Team and group day averages over the five metrics.
// ABOUTME: The global score is a mean of per-entry averages, not a flat mean.
package stats

import (
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/wellness"
)

// Aggregate is the averaged state of a set of entries for one date.
// Metric fields are nil when no entry has that metric.
type Aggregate struct {
	Date       string   `json:"date"`
	Label      string   `json:"label,omitempty"`
	Count      int      `json:"count"`
	Global     *float64 `json:"global,omitempty"`
	Sleep      *float64 `json:"sleep,omitempty"`
	MentalLoad *float64 `json:"mental_load,omitempty"`
	Motivation *float64 `json:"motivation,omitempty"`
	HDC        *float64 `json:"hdc,omitempty"`
	BDC        *float64 `json:"bdc,omitempty"`
}

// Value returns the aggregate for a metric; MetricGlobal gives Global.
func (a *Aggregate) Value(m models.Metric) *float64 {
	switch m {
	case models.MetricSleep:
		return a.Sleep
	case models.MetricMentalLoad:
		return a.MentalLoad
	case models.MetricMotivation:
		return a.Motivation
	case models.MetricHDC:
		return a.HDC
	case models.MetricBDC:
		return a.BDC
	case models.MetricGlobal:
		return a.Global
	}
	return nil
}

func (a *Aggregate) set(m models.Metric, v float64) {
	switch m {
	case models.MetricSleep:
		a.Sleep = &v
	case models.MetricMentalLoad:
		a.MentalLoad = &v
	case models.MetricMotivation:
		a.Motivation = &v
	case models.MetricHDC:
		a.HDC = &v
	case models.MetricBDC:
		a.BDC = &v
	}
}

// TeamAverage averages a date's entries, optionally filtered. It returns nil
// when no entry matches.
func TeamAverage(snap *wellness.Snapshot, date string, f *Filter) *Aggregate {
	entries := selectEntries(snap, date, f)
	if len(entries) == 0 {
		return nil
	}
	return average(date, entries)
}

func average(date string, entries []*models.WellnessEntry) *Aggregate {
	agg := &Aggregate{Date: date, Count: len(entries)}

	for _, m := range models.Metrics {
		var sum float64
		n := 0
		for _, e := range entries {
			if v := e.Value(m); v != nil {
				sum += *v
				n++
			}
		}
		if n > 0 {
			agg.set(m, sum/float64(n))
		}
	}

	var sum float64
	n := 0
	for _, e := range entries {
		if avg, ok := e.Average(); ok {
			sum += avg
			n++
		}
	}
	if n > 0 {
		g := sum / float64(n)
		agg.Global = &g
	}
	return agg
}

// Breakdown returns the team average followed by each group and line that
// has entries on the date, in taxonomy order.
func Breakdown(snap *wellness.Snapshot, date string) []*Aggregate {
	team := TeamAverage(snap, date, nil)
	if team == nil {
		return nil
	}
	team.Label = "Team"
	out := []*Aggregate{team}

	for _, g := range models.Taxonomy {
		if agg := TeamAverage(snap, date, &Filter{Group: g.Name}); agg != nil {
			agg.Label = g.Name
			out = append(out, agg)
		}
		for _, l := range g.Lines {
			if agg := TeamAverage(snap, date, &Filter{Line: l.Name}); agg != nil {
				agg.Label = l.Name
				out = append(out, agg)
			}
		}
	}
	return out
}
