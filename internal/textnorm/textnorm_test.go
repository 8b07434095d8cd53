// ABOUTME: Tests for accent folding and word splitting.
// ABOUTME: Covers French accents, cedilla, NBSP, and punctuation.
package textnorm

import (
	"reflect"
	"testing"
)

func TestFold(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Décembre", "decembre"},
		{"  Charge   Mentale ", "charge mentale"},
		{"ça va", "ca va"},
		{"Bien-être", "bien-etre"},
		{"AOÛT", "aout"},
		{"12 janvier", "12 janvier"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Fold(tt.input); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWords(t *testing.T) {
	got := Words("Douleur genou, depuis-hier!")
	want := []string{"douleur", "genou", "depuis", "hier"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
}

func TestEqual(t *testing.T) {
	if !Equal("Blessé", "BLESSE") {
		t.Error("expected Blessé and BLESSE to fold equal")
	}
	if Equal("Apte", "Blessé") {
		t.Error("expected Apte and Blessé to differ")
	}
}
