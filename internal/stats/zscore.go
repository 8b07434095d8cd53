// ABOUTME: Rolling Z-score of day averages against the preceding days.
// ABOUTME: Uses population standard deviation; too little history yields no score.
package stats

import (
	"math"
	"sort"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/wellness"
)

// Band classifies a Z-score for display.
type Band string

const (
	BandNormal   Band = "normal"
	BandWarning  Band = "warning"
	BandCritical Band = "critical"
)

// ZPoint is one date of a Z-score series. Value is nil when the filtered set
// has no data on that date; ZScore is nil when it cannot be computed.
type ZPoint struct {
	Date   string   `json:"date"`
	Value  *float64 `json:"value"`
	ZScore *float64 `json:"zscore"`
	Band   Band     `json:"band,omitempty"`
}

// zeroSpread is the standard deviation below which history counts as flat.
// Rounding in the mean leaves a residue of a few ulps on identical values.
const zeroSpread = 1e-9

// ZScore standardizes value against history. It reports false when history
// has fewer than minHistory points. Zero spread gives a score of 0.
func ZScore(value float64, history []float64, minHistory int) (float64, bool) {
	if len(history) == 0 || len(history) < minHistory {
		return 0, false
	}

	var sum float64
	for _, h := range history {
		sum += h
	}
	mean := sum / float64(len(history))

	var sq float64
	for _, h := range history {
		d := h - mean
		sq += d * d
	}
	stdev := math.Sqrt(sq / float64(len(history)))
	if stdev < zeroSpread {
		return 0, true
	}
	return (value - mean) / stdev, true
}

// Classify maps a Z-score to a band using the settings thresholds.
func Classify(z float64, s models.Settings) Band {
	switch {
	case z < s.ZScoreAlert:
		return BandCritical
	case z < s.ZScoreWarning:
		return BandWarning
	}
	return BandNormal
}

// ZScoreSeries computes the filtered day average of metric for the last
// windowDays dates and scores each against the ZScoreDays dates before it.
// A windowDays of zero or less covers every date.
func ZScoreSeries(snap *wellness.Snapshot, metric models.Metric, f *Filter, windowDays int) []ZPoint {
	dates := snap.Dates()
	if len(dates) == 0 {
		return nil
	}

	values := make([]*float64, len(dates))
	for i, d := range dates {
		if agg := TeamAverage(snap, d, f); agg != nil {
			values[i] = agg.Value(metric)
		}
	}

	start := 0
	if windowDays > 0 && len(dates) > windowDays {
		start = len(dates) - windowDays
	}

	settings := snap.Settings
	points := make([]ZPoint, 0, len(dates)-start)
	for i := start; i < len(dates); i++ {
		pt := ZPoint{Date: dates[i], Value: values[i]}
		if values[i] != nil {
			history := historyBefore(values, i, settings.ZScoreDays)
			if z, ok := ZScore(*values[i], history, settings.ZScoreMinHistory); ok {
				pt.ZScore = &z
				pt.Band = Classify(z, settings)
			}
		}
		points = append(points, pt)
	}
	return points
}

// historyBefore collects the non-missing values of the n dates before idx.
func historyBefore(values []*float64, idx, n int) []float64 {
	from := idx - n
	if from < 0 {
		from = 0
	}
	var out []float64
	for _, v := range values[from:idx] {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// LatestZScore returns the last point of the series for the most recent date.
func LatestZScore(snap *wellness.Snapshot, metric models.Metric, f *Filter) (ZPoint, bool) {
	series := ZScoreSeries(snap, metric, f, 1)
	if len(series) == 0 {
		return ZPoint{}, false
	}
	return series[len(series)-1], true
}

// dateIndex returns the position of date in the sorted dates, or -1.
func dateIndex(dates []string, date string) int {
	i := sort.SearchStrings(dates, date)
	if i < len(dates) && dates[i] == date {
		return i
	}
	return -1
}
