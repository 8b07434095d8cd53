// ABOUTME: WellnessEntry model and the five questionnaire metrics.
// ABOUTME: An entry is one player's answers for one date; all fields are optional.
package models

import "strings"

// Metric identifies one of the five 1-5 questionnaire scores.
type Metric string

const (
	MetricSleep      Metric = "sleep"
	MetricMentalLoad Metric = "mental_load"
	MetricMotivation Metric = "motivation"
	MetricHDC        Metric = "hdc"
	MetricBDC        Metric = "bdc"

	// MetricGlobal is the per-entry average of the five metrics.
	MetricGlobal Metric = "global"
)

// Metrics lists the questionnaire metrics in canonical order.
var Metrics = []Metric{MetricSleep, MetricMentalLoad, MetricMotivation, MetricHDC, MetricBDC}

// MetricLabels maps metrics to display labels.
var MetricLabels = map[Metric]string{
	MetricSleep:      "Sleep",
	MetricMentalLoad: "Mental load",
	MetricMotivation: "Motivation",
	MetricHDC:        "Upper body",
	MetricBDC:        "Lower body",
	MetricGlobal:     "Global",
}

// Value bounds enforced at import time.
const (
	MetricMin = 1.0
	MetricMax = 5.0
	WeightMin = 40.0
	WeightMax = 200.0
)

// ParseMetric accepts a metric key, including "global".
func ParseMetric(s string) (Metric, bool) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	if m == MetricGlobal {
		return m, true
	}
	for _, known := range Metrics {
		if known == m {
			return m, true
		}
	}
	return "", false
}

// DateLayout is the key format for dated entries.
const DateLayout = "2006-01-02"

// WellnessEntry is one player's questionnaire answers for one date.
type WellnessEntry struct {
	Date       string   `json:"date"`
	Name       string   `json:"name"`
	Weight     *float64 `json:"weight,omitempty"`
	Sleep      *float64 `json:"sleep,omitempty"`
	MentalLoad *float64 `json:"mental_load,omitempty"`
	Motivation *float64 `json:"motivation,omitempty"`
	HDC        *float64 `json:"hdc,omitempty"`
	BDC        *float64 `json:"bdc,omitempty"`
	Remark     string   `json:"remark,omitempty"`
}

// NewEntry creates an empty entry for a date and player name.
func NewEntry(date, name string) *WellnessEntry {
	return &WellnessEntry{Date: date, Name: NormalizeName(name)}
}

// Value returns the entry's value for a metric, or nil if missing.
// MetricGlobal yields the per-entry average.
func (e *WellnessEntry) Value(m Metric) *float64 {
	switch m {
	case MetricSleep:
		return e.Sleep
	case MetricMentalLoad:
		return e.MentalLoad
	case MetricMotivation:
		return e.Motivation
	case MetricHDC:
		return e.HDC
	case MetricBDC:
		return e.BDC
	case MetricGlobal:
		if avg, ok := e.Average(); ok {
			return &avg
		}
	}
	return nil
}

// SetValue stores v for a questionnaire metric. Unknown metrics are ignored.
func (e *WellnessEntry) SetValue(m Metric, v float64) {
	switch m {
	case MetricSleep:
		e.Sleep = &v
	case MetricMentalLoad:
		e.MentalLoad = &v
	case MetricMotivation:
		e.Motivation = &v
	case MetricHDC:
		e.HDC = &v
	case MetricBDC:
		e.BDC = &v
	}
}

// WithWeight sets the weight in kg.
func (e *WellnessEntry) WithWeight(kg float64) *WellnessEntry {
	e.Weight = &kg
	return e
}

// WithRemark sets the free-text remark.
func (e *WellnessEntry) WithRemark(remark string) *WellnessEntry {
	e.Remark = remark
	return e
}

// MetricCount returns how many questionnaire metrics are present.
func (e *WellnessEntry) MetricCount() int {
	n := 0
	for _, m := range Metrics {
		if e.Value(m) != nil {
			n++
		}
	}
	return n
}

// Average is the mean of the entry's non-missing metrics.
func (e *WellnessEntry) Average() (float64, bool) {
	var sum float64
	n := 0
	for _, m := range Metrics {
		if v := e.Value(m); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// HasData reports whether the entry carries any metric or a weight.
func (e *WellnessEntry) HasData() bool {
	return e.Weight != nil || e.MetricCount() > 0
}

// Clone returns a deep copy.
func (e *WellnessEntry) Clone() *WellnessEntry {
	c := *e
	c.Weight = cloneFloat(e.Weight)
	c.Sleep = cloneFloat(e.Sleep)
	c.MentalLoad = cloneFloat(e.MentalLoad)
	c.Motivation = cloneFloat(e.Motivation)
	c.HDC = cloneFloat(e.HDC)
	c.BDC = cloneFloat(e.BDC)
	return &c
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}
