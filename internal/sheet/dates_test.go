// ABOUTME: Tests for French and numeric date recognition.
// ABOUTME: Covers weekday prefixes, accents, ISO forms, and invalid calendar dates.
package sheet

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	jan6 := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		input  string
		want   time.Time
		wantOK bool
	}{
		{"mardi 6 janvier 2026", jan6, true},
		{"06/01/2026", jan6, true},
		{"2026-01-06", jan6, true},
		{"not a date", time.Time{}, false},
		{"MARDI 6 JANVIER 2026", jan6, true},
		{"Bien-être du 6 janvier 2026", jan6, true},
		{"6-1-2026", jan6, true},
		{"6.1.2026", jan6, true},
		{"2026/1/6", jan6, true},
		{"2026-01-06 00:00:00", jan6, true},
		{"samedi 15 août 2026", time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), true},
		{"15 aout 2026", time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), true},
		{"1er décembre 2025", time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), true},
		{"3 févr. 2026", time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), true},
		{"31/02/2026", time.Time{}, false},
		{"6 brumaire 2026", time.Time{}, false},
		{"", time.Time{}, false},
		{"4", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindDateScansLeadingRowsOnly(t *testing.T) {
	table := Table{
		{"", "Suivi"},
		{"", ""},
		{"", ""},
		{"", ""},
		{"", ""},
		{"", "mardi 6 janvier 2026"},
	}
	if _, ok := FindDate(table, 5); ok {
		t.Error("FindDate should not look past the scan window")
	}
	got, ok := FindDate(table, 6)
	if !ok || FormatDate(got) != "2026-01-06" {
		t.Errorf("FindDate(6 rows) = %v, %v", got, ok)
	}
}

func TestFormatFrenchDateRoundTrip(t *testing.T) {
	d := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
	text := FormatFrenchDate(d)
	if text != "samedi 14 février 2026" {
		t.Errorf("FormatFrenchDate = %q", text)
	}
	got, ok := ParseDate(text)
	if !ok || !got.Equal(d) {
		t.Errorf("ParseDate(FormatFrenchDate) = %v, %v", got, ok)
	}
}
