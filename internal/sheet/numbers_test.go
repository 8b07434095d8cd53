// ABOUTME: Tests for tolerant numeric parsing and range checks.
// ABOUTME: Covers comma decimals, NBSP, sentinels, and metric/weight bounds.
package sheet

import (
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"4", 4, true},
		{" 3,5 ", 3.5, true},
		{"92.4", 92.4, true},
		{"1 02,5", 102.5, true},
		{"1\u00a002,5", 102.5, true},
		{"#DIV/0!", 0, false},
		{"#N/A", 0, false},
		{"#VALUE!", 0, false},
		{"#REF!", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"nan", 0, false},
		{"NaN", 0, false},
		{"abc", 0, false},
		{"Inf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseNumber(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseNumber(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseNumber(%q) = %f, want %f", tt.input, got, tt.want)
			}
		})
	}
}

func TestMetricAndWeightBounds(t *testing.T) {
	metricCases := map[string]bool{"1": true, "5": true, "0": false, "5,5": false, "2.5": true, "-1": false}
	for in, want := range metricCases {
		if _, ok := parseMetric(in); ok != want {
			t.Errorf("parseMetric(%q) ok = %v, want %v", in, ok, want)
		}
	}

	weightCases := map[string]bool{"40": true, "200": true, "39.9": false, "250": false, "92": true}
	for in, want := range weightCases {
		if _, ok := parseWeight(in); ok != want {
			t.Errorf("parseWeight(%q) ok = %v, want %v", in, ok, want)
		}
	}
}
