// ABOUTME: Shared fixtures for sheet package tests.
// ABOUTME: Builds wellness tables in single-day and multi-block layouts.
package sheet

import (
	"os"
	"time"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0600)
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)
}

func testOptions() Options {
	return Options{Now: fixedNow}
}

// e2eTable is the minimal single-day sheet: header, team row, one player.
func e2eTable() Table {
	return Table{
		{"Joueur", "Poids", "Sommeil", "Charge mentale", "Motivation", "HDC", "BDC", "Remarque"},
		{"EQUIPE", "", "4", "3", "5", "4", "4", ""},
		{"DUPONT", "92", "4", "3", "5", "4", "4", "ça va"},
	}
}

// dayTable is a dirty single-day sheet laid out like the squad's tab.
func dayTable() Table {
	return Table{
		{"", "mardi 6 janvier 2026"},
		{},
		{"", "Joueur", "Poids", "Sommeil", "Charge mentale", "Motivation", "HDC", "BDC", "Moyenne", "Remarque"},
		{"", "EQUIPE", "", "3,6", "3", "4", "3,8", "3,9", "3,7", ""},
		{"", "dupont", "92", "4", "3", "5", "4", "4", "4", "ça va"},
		{"", "MARTIN", "101,5", "2", "#DIV/0!", "7", "3", "", "", ""},
		{"", "douleur genou depuis hier", "", "", "", "", "", "", "", ""},
		{"", "LEROUX", "", "", "", "", "", "", "", "absent"},
		{"", "", "", "", "", "", "", "", "", ""},
		{"", "Dupont", "93", "5", "5", "5", "5", "5", "5", ""},
		{"", "TOTAL", "", "", "", "", "", "", "", ""},
	}
}

const blockWidth = 8

func blockRow(blocks ...[]string) []string {
	var row []string
	for _, b := range blocks {
		cells := make([]string, blockWidth)
		copy(cells, b)
		row = append(row, cells...)
	}
	return row
}

// multiBlockTable has three day blocks side by side; the third has no date.
func multiBlockTable() Table {
	header := []string{"Joueur", "", "", "", "", "", "Remarque"}
	return Table{
		blockRow([]string{"mardi 6 janvier 2026"}, []string{"mercredi 7 janvier 2026"}, nil),
		blockRow(header, header, header),
		blockRow(
			[]string{"DUPONT", "4", "3", "5", "4", "4", "ok"},
			[]string{"DUPONT", "2", "2", "3", "3", "3", "fatigué"},
			[]string{"DUPONT", "5", "5", "5", "5", "5"},
		),
		blockRow(
			[]string{"MARTIN", "3", "3", "3", "3", "3"},
			[]string{"EQUIPE", "3", "3", "3", "3", "3"},
			nil,
		),
		blockRow(
			[]string{"douleur genou depuis hier"},
			[]string{"MARTIN", "#N/A", "4", "", "", ""},
			nil,
		),
	}
}
