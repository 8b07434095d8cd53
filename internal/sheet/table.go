// ABOUTME: Raw spreadsheet grid shared by every import source.
// ABOUTME: Cells are strings; rows may be ragged and any cell may be empty.
package sheet

import (
	"errors"
	"strings"
)

// ErrEmptyTable is returned when a source yields no rows.
var ErrEmptyTable = errors.New("spreadsheet is empty")

// Table is a grid of cell texts, row-major. Rows may differ in length.
type Table [][]string

// Cell returns the trimmed text at (row, col), or "" when out of range.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t) || col < 0 || col >= len(t[row]) {
		return ""
	}
	return strings.TrimSpace(t[row][col])
}

// Row returns the cells of a row, or nil when out of range.
func (t Table) Row(row int) []string {
	if row < 0 || row >= len(t) {
		return nil
	}
	return t[row]
}

// Width is the length of the longest row.
func (t Table) Width() int {
	w := 0
	for _, r := range t {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

// IsEmpty reports whether every cell is blank.
func (t Table) IsEmpty() bool {
	for _, r := range t {
		for _, c := range r {
			if strings.TrimSpace(c) != "" {
				return false
			}
		}
	}
	return true
}
