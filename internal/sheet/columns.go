// ABOUTME: Header-row detection and keyword-driven column mapping.
// ABOUTME: Falls back to fixed positional offsets when too few fields resolve.
package sheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harperreed/wellness/internal/textnorm"
)

var (
	// ErrNoHeader means no header row was found in the leading rows.
	ErrNoHeader = errors.New("no header row found")
	// ErrNoNameColumn means the header has no player name column.
	ErrNoNameColumn = errors.New("no player name column found")
)

// Field is a semantic column of the wellness sheet.
type Field string

const (
	FieldName       Field = "name"
	FieldWeight     Field = "weight"
	FieldSleep      Field = "sleep"
	FieldMentalLoad Field = "mental_load"
	FieldMotivation Field = "motivation"
	FieldHDC        Field = "hdc"
	FieldBDC        Field = "bdc"
	FieldRemark     Field = "remark"
)

// CoreFields are the six fields counted when deciding on positional fallback.
var CoreFields = []Field{FieldWeight, FieldSleep, FieldMentalLoad, FieldMotivation, FieldHDC, FieldBDC}

// FieldRule lists the folded header fragments that identify a field.
type FieldRule struct {
	Field    Field
	Keywords []string
}

// FieldKeywords is evaluated in order; each column is claimed by at most one field.
var FieldKeywords = []FieldRule{
	{FieldName, []string{"joueur", "nom", "player", "name"}},
	{FieldWeight, []string{"poids", "weight"}},
	{FieldSleep, []string{"sommeil", "sleep"}},
	{FieldMentalLoad, []string{"charge", "mental"}},
	{FieldMotivation, []string{"motivation"}},
	{FieldHDC, []string{"hdc", "haut du corps", "upper body"}},
	{FieldBDC, []string{"bdc", "bas du corps", "lower body"}},
	{FieldRemark, []string{"remarque", "remark", "comment", "observation"}},
}

// positionalOffsets places core fields relative to the name column when
// keyword matching fails.
var positionalOffsets = map[Field]int{
	FieldWeight:     1,
	FieldSleep:      2,
	FieldMentalLoad: 3,
	FieldMotivation: 4,
	FieldHDC:        5,
	FieldBDC:        6,
	FieldRemark:     8,
}

// minResolvedFields is the number of core fields keyword matching must
// resolve before positional fallback is skipped.
const minResolvedFields = 3

// headerGroups are the keyword families a header row must mostly contain.
var headerGroups = [][]string{
	{"joueur", "nom", "player", "name"},
	{"poids", "weight"},
	{"sommeil", "sleep"},
	{"motivation"},
	{"charge mentale", "mental"},
}

// ColumnMapping maps fields to column indexes; -1 means unresolved.
type ColumnMapping struct {
	Name       int  `json:"name"`
	Weight     int  `json:"weight"`
	Sleep      int  `json:"sleep"`
	MentalLoad int  `json:"mental_load"`
	Motivation int  `json:"motivation"`
	HDC        int  `json:"hdc"`
	BDC        int  `json:"bdc"`
	Remark     int  `json:"remark"`
	Fallback   bool `json:"fallback"`
}

func emptyMapping() ColumnMapping {
	return ColumnMapping{Name: -1, Weight: -1, Sleep: -1, MentalLoad: -1, Motivation: -1, HDC: -1, BDC: -1, Remark: -1}
}

// Column returns the column index for f, or -1.
func (m ColumnMapping) Column(f Field) int {
	switch f {
	case FieldName:
		return m.Name
	case FieldWeight:
		return m.Weight
	case FieldSleep:
		return m.Sleep
	case FieldMentalLoad:
		return m.MentalLoad
	case FieldMotivation:
		return m.Motivation
	case FieldHDC:
		return m.HDC
	case FieldBDC:
		return m.BDC
	case FieldRemark:
		return m.Remark
	}
	return -1
}

func (m *ColumnMapping) set(f Field, col int) {
	switch f {
	case FieldName:
		m.Name = col
	case FieldWeight:
		m.Weight = col
	case FieldSleep:
		m.Sleep = col
	case FieldMentalLoad:
		m.MentalLoad = col
	case FieldMotivation:
		m.Motivation = col
	case FieldHDC:
		m.HDC = col
	case FieldBDC:
		m.BDC = col
	case FieldRemark:
		m.Remark = col
	}
}

// Resolved counts the core fields that have a column.
func (m ColumnMapping) Resolved() int {
	n := 0
	for _, f := range CoreFields {
		if m.Column(f) >= 0 {
			n++
		}
	}
	return n
}

// String renders the mapping for log output.
func (m ColumnMapping) String() string {
	parts := make([]string, 0, len(FieldKeywords))
	for _, rule := range FieldKeywords {
		parts = append(parts, fmt.Sprintf("%s=%d", rule.Field, m.Column(rule.Field)))
	}
	s := strings.Join(parts, " ")
	if m.Fallback {
		s += " (positional)"
	}
	return s
}

// MapColumns resolves field columns from a header row. Matching is by
// folded substring, first match wins scanning left to right.
func MapColumns(header []string) (ColumnMapping, error) {
	m := emptyMapping()
	folded := make([]string, len(header))
	for i, h := range header {
		folded[i] = textnorm.Fold(h)
	}

	claimed := make(map[int]bool)
	for _, rule := range FieldKeywords {
		for col, text := range folded {
			if text == "" || claimed[col] {
				continue
			}
			if containsAny(text, rule.Keywords) {
				m.set(rule.Field, col)
				claimed[col] = true
				break
			}
		}
	}

	if m.Name < 0 {
		return m, ErrNoNameColumn
	}

	if m.Resolved() < minResolvedFields {
		remark := m.Remark
		for _, f := range CoreFields {
			m.set(f, m.Name+positionalOffsets[f])
		}
		if remark < 0 {
			remark = m.Name + positionalOffsets[FieldRemark]
		}
		m.Remark = remark
		m.Fallback = true
	}

	return m, nil
}

// FindHeaderRow returns the first of the leading maxRows rows that contains
// at least three of the header keyword families.
func FindHeaderRow(t Table, maxRows int) (int, error) {
	for r := 0; r < len(t) && r < maxRows; r++ {
		if headerScore(t[r]) >= minResolvedFields {
			return r, nil
		}
	}
	return -1, fmt.Errorf("%w in the first %d rows", ErrNoHeader, maxRows)
}

// headerScore counts keyword families found in the row. A cell counts for
// one family at most, so a title cell listing several fields scores once.
func headerScore(row []string) int {
	folded := make([]string, len(row))
	for i, cell := range row {
		folded[i] = textnorm.Fold(cell)
	}
	claimed := make(map[int]bool)
	score := 0
	for _, group := range headerGroups {
		for col, text := range folded {
			if claimed[col] || !containsAny(text, group) {
				continue
			}
			claimed[col] = true
			score++
			break
		}
	}
	return score
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
