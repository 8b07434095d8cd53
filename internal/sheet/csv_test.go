// ABOUTME: Tests for CSV reading and delimiter sniffing.
// ABOUTME: Uses inline documents in comma, semicolon and tab dialects.
package sheet

import (
	"errors"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name  string
		input string
		rows  int
		cell  string
	}{
		{"comma", "Joueur,Poids\nDUPONT,92\n", 2, "92"},
		{"semicolon with decimal commas", "Joueur;Poids;Sommeil\nDUPONT;92;4,5\n", 2, "92"},
		{"tab", "Joueur\tPoids\nDUPONT\t92\n", 2, "92"},
		{"bom", "\xEF\xBB\xBFJoueur,Poids\nDUPONT,92\n", 2, "92"},
		{"quoted delimiters", "Joueur,Remarque,Poids\nDUPONT,\"ok; rien\",92\n", 2, "ok; rien"},
		{"ragged rows", "Joueur,Poids,Sommeil\nDUPONT,92\n", 2, "92"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ReadCSV(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadCSV failed: %v", err)
			}
			if len(table) != tt.rows {
				t.Errorf("rows = %d, want %d", len(table), tt.rows)
			}
			if table.Cell(0, 0) != "Joueur" {
				t.Errorf("first cell = %q, want Joueur", table.Cell(0, 0))
			}
			if got := table.Cell(1, 1); got != tt.cell {
				t.Errorf("cell(1,1) = %q, want %q", got, tt.cell)
			}
		})
	}
}

func TestReadCSVEmpty(t *testing.T) {
	for _, input := range []string{"", "\n\n", ",,\n , ,\n"} {
		if _, err := ReadCSV(strings.NewReader(input)); !errors.Is(err, ErrEmptyTable) {
			t.Errorf("ReadCSV(%q) err = %v, want ErrEmptyTable", input, err)
		}
	}
}

func TestSniffDelimiter(t *testing.T) {
	tests := []struct {
		input string
		want  rune
	}{
		{"a,b,c", ','},
		{"a;b;c", ';'},
		{"a\tb\tc", '\t'},
		{"a;b,c", ','},
		{"\"a;b;c\",d", ','},
		{"", ','},
	}
	for _, tt := range tests {
		if got := sniffDelimiter([]byte(tt.input)); got != tt.want {
			t.Errorf("sniffDelimiter(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
