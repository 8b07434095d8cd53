// ABOUTME: Tests for header detection and column mapping.
// ABOUTME: Covers keyword matching, column claiming, and positional fallback.
package sheet

import (
	"errors"
	"testing"
)

func TestMapColumnsKeywords(t *testing.T) {
	header := []string{"Joueur", "Poids", "Sommeil", "Charge mentale", "Motivation", "HDC", "BDC", "Remarque"}

	m, err := MapColumns(header)
	if err != nil {
		t.Fatalf("MapColumns failed: %v", err)
	}
	if m.Fallback {
		t.Error("expected keyword mapping, got fallback")
	}

	want := map[Field]int{
		FieldName: 0, FieldWeight: 1, FieldSleep: 2, FieldMentalLoad: 3,
		FieldMotivation: 4, FieldHDC: 5, FieldBDC: 6, FieldRemark: 7,
	}
	for f, col := range want {
		if got := m.Column(f); got != col {
			t.Errorf("Column(%s) = %d, want %d", f, got, col)
		}
	}
}

func TestMapColumnsEnglishAndLongForms(t *testing.T) {
	header := []string{"", "Player", "Weight (kg)", "Sleep", "Mental", "Motivation", "Upper body state", "Lower body state", "Average", "Comment"}

	m, err := MapColumns(header)
	if err != nil {
		t.Fatalf("MapColumns failed: %v", err)
	}
	if m.Name != 1 || m.Weight != 2 || m.HDC != 6 || m.BDC != 7 || m.Remark != 9 {
		t.Errorf("unexpected mapping: %s", m)
	}
}

func TestMapColumnsFirstMatchWins(t *testing.T) {
	header := []string{"Joueur", "Poids", "Sommeil", "Sommeil (h)", "Motivation"}
	m, err := MapColumns(header)
	if err != nil {
		t.Fatalf("MapColumns failed: %v", err)
	}
	if m.Sleep != 2 {
		t.Errorf("Sleep = %d, want 2", m.Sleep)
	}
	if m.MentalLoad != -1 {
		t.Errorf("MentalLoad = %d, want -1", m.MentalLoad)
	}
	if m.Fallback {
		t.Error("three resolved fields should not trigger fallback")
	}
}

func TestMapColumnsPositionalFallback(t *testing.T) {
	header := []string{"", "Joueur", "Col C", "Col D", "Col E", "", "", "", "", ""}

	m, err := MapColumns(header)
	if err != nil {
		t.Fatalf("MapColumns failed: %v", err)
	}
	if !m.Fallback {
		t.Fatal("expected positional fallback")
	}
	if m.Weight != 2 || m.Sleep != 3 || m.MentalLoad != 4 || m.Motivation != 5 || m.HDC != 6 || m.BDC != 7 {
		t.Errorf("unexpected positional mapping: %s", m)
	}
	if m.Remark != 9 {
		t.Errorf("Remark = %d, want 9", m.Remark)
	}
}

func TestMapColumnsNoNameColumn(t *testing.T) {
	_, err := MapColumns([]string{"Poids", "Sommeil", "Motivation"})
	if !errors.Is(err, ErrNoNameColumn) {
		t.Errorf("err = %v, want ErrNoNameColumn", err)
	}
}

func TestFindHeaderRow(t *testing.T) {
	table := Table{
		{"", "mardi 6 janvier 2026"},
		{"", "Joueur", "Remarque"},
		{"", "Joueur", "Poids", "Sommeil", "Charge mentale"},
	}
	row, err := FindHeaderRow(table, 10)
	if err != nil {
		t.Fatalf("FindHeaderRow failed: %v", err)
	}
	if row != 2 {
		t.Errorf("header row = %d, want 2", row)
	}

	if _, err := FindHeaderRow(table, 2); !errors.Is(err, ErrNoHeader) {
		t.Errorf("bounded scan err = %v, want ErrNoHeader", err)
	}
}

func TestFindHeaderRowSkipsTitleCell(t *testing.T) {
	table := Table{
		{"Joueurs : poids, sommeil, motivation"},
		{"", "Joueur", "Poids", "Sommeil", "Motivation"},
	}
	row, err := FindHeaderRow(table, 10)
	if err != nil {
		t.Fatalf("FindHeaderRow failed: %v", err)
	}
	if row != 1 {
		t.Errorf("header row = %d, want 1", row)
	}

	if got := headerScore(table[0]); got != 1 {
		t.Errorf("title cell score = %d, want 1", got)
	}
	if got := headerScore(table[1]); got != 4 {
		t.Errorf("header score = %d, want 4", got)
	}
}
