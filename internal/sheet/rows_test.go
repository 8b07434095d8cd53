// ABOUTME: Tests for row classification and entry building.
// ABOUTME: Covers reserved tokens, remark spill-over, and range validation.
package sheet

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(nil, 0)

	tests := []struct {
		name string
		want RowKind
	}{
		{"", RowBlank},
		{"   ", RowBlank},
		{"EQUIPE", RowAggregate},
		{"Équipe", RowAggregate},
		{"TOTAL", RowAggregate},
		{"Moyenne équipe", RowAggregate},
		{"nan", RowAggregate},
		{"None", RowAggregate},
		{"Joueur", RowAggregate},
		{"#N/A", RowAggregate},
		{"12", RowAggregate},
		{"douleur genou depuis hier", RowRemark},
		{"mal au dos", RowRemark},
		{"GENOU", RowRemark},
		{"ABCDEFGHIJKLMNOPQRSTUVWXYZ", RowRemark},
		{"DUPONT", RowPlayer},
		{"Jean Dupont", RowPlayer},
		{"DOS SANTOS", RowPlayer},
		{"N'DIAYE", RowPlayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.name); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.name, got, tt.want)
			}
		})
	}
}

func TestClassifyCustomVocabulary(t *testing.T) {
	vocab := DefaultVocabulary()
	vocab.Add("absent")
	c := NewClassifier(vocab, 25)

	if got := c.Classify("ABSENT"); got != RowRemark {
		t.Errorf("Classify(ABSENT) = %s, want remark", got)
	}
	if got := NewClassifier(nil, 25).Classify("ABSENT"); got != RowPlayer {
		t.Errorf("default Classify(ABSENT) = %s, want player", got)
	}
}

func TestBuildEntryDropsInvalidFields(t *testing.T) {
	m := ColumnMapping{Name: 0, Weight: 1, Sleep: 2, MentalLoad: 3, Motivation: 4, HDC: 5, BDC: 6, Remark: 7}
	row := []string{"dupont", "250", "4", "0", "#DIV/0!", "3,5", "6", "  RAS  "}

	e, ok := BuildEntry(row, m, "2026-01-06")
	if !ok {
		t.Fatal("expected an entry")
	}
	if e.Name != "DUPONT" || e.Date != "2026-01-06" {
		t.Errorf("identity = %s/%s", e.Name, e.Date)
	}
	if e.Weight != nil {
		t.Errorf("out-of-range weight kept: %v", *e.Weight)
	}
	if e.Sleep == nil || *e.Sleep != 4 {
		t.Errorf("Sleep = %v, want 4", e.Sleep)
	}
	if e.MentalLoad != nil || e.Motivation != nil || e.BDC != nil {
		t.Error("invalid metrics should be missing")
	}
	if e.HDC == nil || *e.HDC != 3.5 {
		t.Errorf("HDC = %v, want 3.5", e.HDC)
	}
	if e.Remark != "RAS" {
		t.Errorf("Remark = %q, want RAS", e.Remark)
	}
}

func TestBuildEntryEmptyRow(t *testing.T) {
	m := ColumnMapping{Name: 0, Weight: 1, Sleep: 2, MentalLoad: -1, Motivation: -1, HDC: -1, BDC: -1, Remark: 3}
	if _, ok := BuildEntry([]string{"DUPONT", "", "-", "absent"}, m, "2026-01-06"); ok {
		t.Error("row without metrics or weight should be dropped")
	}
	if _, ok := BuildEntry([]string{"DUPONT"}, m, "2026-01-06"); ok {
		t.Error("short row should be dropped")
	}
}

func TestVocabularyLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/words.txt"
	if err := writeFile(path, "# extra\nBlessure légère\nostéo\n"); err != nil {
		t.Fatalf("write vocabulary: %v", err)
	}

	v, err := LoadVocabulary(path)
	if err != nil {
		t.Fatalf("LoadVocabulary failed: %v", err)
	}
	if !v.Contains("OSTEO") || !v.Contains("legere") {
		t.Errorf("custom words missing: %s", strings.Join(v.Words(), ","))
	}
	if !v.Contains("genou") {
		t.Error("default words should still be present")
	}
	if v.Len() <= DefaultVocabulary().Len() {
		t.Error("custom file should extend the default list")
	}

	if _, err := LoadVocabulary(dir + "/missing.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}
