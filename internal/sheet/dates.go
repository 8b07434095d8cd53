// ABOUTME: Date recognition for French free text and delimited numeric dates.
// ABOUTME: Accent-insensitive; used to locate the import date in leading rows.
package sheet

import (
	"regexp"
	"strconv"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/textnorm"
)

var frenchMonths = map[string]time.Month{
	"janvier":   time.January,
	"janv":      time.January,
	"fevrier":   time.February,
	"fevr":      time.February,
	"fev":       time.February,
	"mars":      time.March,
	"avril":     time.April,
	"avr":       time.April,
	"mai":       time.May,
	"juin":      time.June,
	"juillet":   time.July,
	"juil":      time.July,
	"aout":      time.August,
	"septembre": time.September,
	"sept":      time.September,
	"octobre":   time.October,
	"oct":       time.October,
	"novembre":  time.November,
	"nov":       time.November,
	"decembre":  time.December,
	"dec":       time.December,
}

var (
	frenchDateRe = regexp.MustCompile(`\b(\d{1,2})(?:er)?\s+([a-z]+)\.?\s+(\d{4})\b`)
	isoDateRe    = regexp.MustCompile(`\b(\d{4})[-/](\d{1,2})[-/](\d{1,2})\b`)
	dmyDateRe    = regexp.MustCompile(`\b(\d{1,2})[/.-](\d{1,2})[/.-](\d{4})\b`)
)

// ParseDate extracts a calendar date from a cell. It recognizes
// "<weekday> <day> <month> <year>" in French and D/M/Y, D-M-Y, D.M.Y,
// Y-M-D and Y/M/D numeric forms.
func ParseDate(text string) (time.Time, bool) {
	s := textnorm.Fold(text)
	if s == "" {
		return time.Time{}, false
	}

	for _, m := range frenchDateRe.FindAllStringSubmatch(s, -1) {
		month, ok := frenchMonths[m[2]]
		if !ok {
			continue
		}
		if t, ok := makeDate(m[3], int(month), m[1]); ok {
			return t, true
		}
	}

	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		mon, _ := strconv.Atoi(m[2])
		if t, ok := makeDate(m[1], mon, m[3]); ok {
			return t, true
		}
	}

	if m := dmyDateRe.FindStringSubmatch(s); m != nil {
		mon, _ := strconv.Atoi(m[2])
		if t, ok := makeDate(m[3], mon, m[1]); ok {
			return t, true
		}
	}

	return time.Time{}, false
}

// makeDate builds a UTC date and rejects impossible days such as 31/02.
func makeDate(yearStr string, month int, dayStr string) (time.Time, bool) {
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

// dateCell records where a date was found.
type dateCell struct {
	Row  int
	Col  int
	Date time.Time
}

// FindDate returns the first parseable date in the first maxRows rows,
// scanning each row left to right.
func FindDate(t Table, maxRows int) (time.Time, bool) {
	cells := findDates(t, maxRows)
	if len(cells) == 0 {
		return time.Time{}, false
	}
	return cells[0].Date, true
}

// findDates lists every parseable date cell in the first maxRows rows.
func findDates(t Table, maxRows int) []dateCell {
	var out []dateCell
	for r := 0; r < len(t) && r < maxRows; r++ {
		for c := range t[r] {
			if d, ok := ParseDate(t[r][c]); ok {
				out = append(out, dateCell{Row: r, Col: c, Date: d})
			}
		}
	}
	return out
}

// FormatDate renders a date as the store's YYYY-MM-DD key.
func FormatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}
