// ABOUTME: Excel workbook source and writer for wellness sheets.
// ABOUTME: Reads the "Bien-être" tab when present; writes one tab per day.
package sheet

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/textnorm"
	"github.com/xuri/excelize/v2"
)

// excelDateRows bounds the rows whose date-formatted cells are rewritten
// as ISO dates so the date scanner can read them.
const excelDateRows = DefaultHeaderScanRows

// ReadExcel reads the wellness tab of a workbook. It picks the first sheet
// whose name mentions "bien" or "etre", otherwise the first sheet.
func ReadExcel(r io.Reader) (Table, string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, "", fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, "", ErrEmptyTable
	}
	name := PickSheet(sheets)

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, "", fmt.Errorf("read sheet %q: %w", name, err)
	}
	t := Table(rows)
	if t.IsEmpty() {
		return nil, name, ErrEmptyTable
	}

	normalizeExcelDates(f, name, t)
	return t, name, nil
}

// PickSheet chooses the wellness tab from a list of sheet names.
func PickSheet(names []string) string {
	for _, n := range names {
		folded := textnorm.Fold(n)
		if strings.Contains(folded, "bien") || strings.Contains(folded, "etre") {
			return n
		}
	}
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// normalizeExcelDates replaces date-formatted serial numbers in the leading
// rows with YYYY-MM-DD text. Formatted values such as "01-06-26" carry a
// two-digit year the date parser would reject.
func normalizeExcelDates(f *excelize.File, sheetName string, t Table) {
	for r := 0; r < len(t) && r < excelDateRows; r++ {
		for c, formatted := range t[r] {
			if formatted == "" {
				continue
			}
			if _, err := strconv.ParseFloat(strings.TrimSpace(formatted), 64); err == nil {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				continue
			}
			raw, err := f.GetCellValue(sheetName, cellName, excelize.Options{RawCellValue: true})
			if err != nil {
				continue
			}
			serial, err := strconv.ParseFloat(raw, 64)
			if err != nil || serial < 1 || serial > 2958465 {
				continue
			}
			d, err := excelize.ExcelDateToTime(serial, false)
			if err != nil || d.Year() < 2000 || d.Year() > 2100 {
				continue
			}
			t[r][c] = d.Format(models.DateLayout)
		}
	}
}

// DaySheet is one day of entries to write.
type DaySheet struct {
	Date    time.Time
	Entries []*models.WellnessEntry
}

var dayHeader = []string{
	"Joueur", "Poids", "Sommeil", "Charge mentale", "Motivation", "HDC", "BDC", "Moyenne", "Remarque",
}

// WriteWorkbook writes one "Bien-être" tab per day, newest first, in the
// layout the single-day importer reads back.
func WriteWorkbook(w io.Writer, days []DaySheet) error {
	f := excelize.NewFile()
	defer f.Close()

	sorted := append([]DaySheet(nil), days...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, day := range sorted {
		name := fmt.Sprintf("Bien-être %s", FormatDate(day.Date))
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}
		if err := writeDay(f, name, day, headerStyle); err != nil {
			return err
		}
	}
	if len(sorted) == 0 {
		if err := f.SetSheetName("Sheet1", "Bien-être"); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeDay(f *excelize.File, sheetName string, day DaySheet, headerStyle int) error {
	set := func(col, row int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return fmt.Errorf("convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
		return nil
	}

	if err := set(2, 1, FormatFrenchDate(day.Date)); err != nil {
		return err
	}

	const headerRow = 3
	for i, h := range dayHeader {
		if err := set(i+2, headerRow, h); err != nil {
			return err
		}
	}
	first, _ := excelize.CoordinatesToCellName(2, headerRow)
	last, _ := excelize.CoordinatesToCellName(len(dayHeader)+1, headerRow)
	if err := f.SetCellStyle(sheetName, first, last, headerStyle); err != nil {
		return fmt.Errorf("set header style: %w", err)
	}

	row := headerRow + 1
	for _, e := range day.Entries {
		values := []any{e.Name, optional(e.Weight)}
		for _, m := range models.Metrics {
			values = append(values, optional(e.Value(m)))
		}
		if avg, ok := e.Average(); ok {
			values = append(values, round2(avg))
		} else {
			values = append(values, "")
		}
		values = append(values, e.Remark)

		for i, v := range values {
			if err := set(i+2, row, v); err != nil {
				return err
			}
		}
		row++
	}
	return nil
}

func optional(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

var frenchWeekdays = []string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}

var frenchMonthNames = []string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatFrenchDate renders a date like "mardi 6 janvier 2026".
func FormatFrenchDate(t time.Time) string {
	return fmt.Sprintf("%s %d %s %d",
		frenchWeekdays[t.Weekday()], t.Day(), frenchMonthNames[t.Month()-1], t.Year())
}
