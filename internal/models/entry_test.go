// ABOUTME: Tests for WellnessEntry and Metric helpers.
// ABOUTME: Covers per-entry averaging, value access, and deep copies.
package models

import (
	"testing"
)

func TestEntryAverage(t *testing.T) {
	tests := []struct {
		name   string
		entry  *WellnessEntry
		want   float64
		wantOK bool
	}{
		{
			name:   "no metrics",
			entry:  NewEntry("2026-01-06", "a").WithWeight(90),
			wantOK: false,
		},
		{
			name:   "single metric",
			entry:  &WellnessEntry{Sleep: Float(5)},
			want:   5,
			wantOK: true,
		},
		{
			name:   "missing metrics ignored",
			entry:  &WellnessEntry{Sleep: Float(1), Motivation: Float(1), HDC: Float(4)},
			want:   2,
			wantOK: true,
		},
		{
			name: "all metrics",
			entry: &WellnessEntry{
				Sleep: Float(4), MentalLoad: Float(3), Motivation: Float(5), HDC: Float(4), BDC: Float(4),
			},
			want:   4,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.entry.Average()
			if ok != tt.wantOK {
				t.Fatalf("Average() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Average() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestEntryValueAndSetValue(t *testing.T) {
	e := NewEntry("2026-01-06", "dupont")
	if e.Name != "DUPONT" {
		t.Errorf("Name = %q, want DUPONT", e.Name)
	}
	for i, m := range Metrics {
		e.SetValue(m, float64(i+1))
	}
	for i, m := range Metrics {
		v := e.Value(m)
		if v == nil || *v != float64(i+1) {
			t.Errorf("Value(%s) = %v, want %d", m, v, i+1)
		}
	}
	if g := e.Value(MetricGlobal); g == nil || *g != 3 {
		t.Errorf("Value(global) = %v, want 3", g)
	}
	if e.MetricCount() != 5 {
		t.Errorf("MetricCount() = %d, want 5", e.MetricCount())
	}
}

func TestEntryHasData(t *testing.T) {
	if NewEntry("2026-01-06", "a").HasData() {
		t.Error("empty entry should have no data")
	}
	if !NewEntry("2026-01-06", "a").WithWeight(92).HasData() {
		t.Error("weight-only entry should have data")
	}
}

func TestEntryClone(t *testing.T) {
	e := &WellnessEntry{Name: "A", Sleep: Float(3)}
	c := e.Clone()
	*c.Sleep = 5
	if *e.Sleep != 3 {
		t.Errorf("clone shares storage: original sleep = %f", *e.Sleep)
	}
}

func TestParseMetric(t *testing.T) {
	for _, s := range []string{"sleep", "MENTAL_LOAD", "global", " bdc "} {
		if _, ok := ParseMetric(s); !ok {
			t.Errorf("ParseMetric(%q) should succeed", s)
		}
	}
	if _, ok := ParseMetric("mood"); ok {
		t.Error("ParseMetric(mood) should fail")
	}
}
