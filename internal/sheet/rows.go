// ABOUTME: Row classification and validated entry building.
// ABOUTME: Skips aggregate rows and remark spill-over; drops out-of-range values.
package sheet

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/textnorm"
)

// RowKind is the classifier's verdict on a row.
type RowKind int

const (
	RowPlayer RowKind = iota
	RowBlank
	RowAggregate
	RowRemark
)

func (k RowKind) String() string {
	switch k {
	case RowPlayer:
		return "player"
	case RowBlank:
		return "blank"
	case RowAggregate:
		return "aggregate"
	case RowRemark:
		return "remark"
	}
	return "unknown"
}

// ReservedNames are name-cell tokens that mark team, total or repeated header rows.
var ReservedNames = []string{
	"equipe", "team", "total", "moyenne", "average",
	"joueur", "joueurs", "player", "players", "nom", "name",
	"nan", "none",
}

var reservedNames = func() map[string]bool {
	m := make(map[string]bool, len(ReservedNames))
	for _, n := range ReservedNames {
		m[n] = true
	}
	return m
}()

// Classifier decides which rows are real player rows.
type Classifier struct {
	vocab         *Vocabulary
	maxNameLength int
}

// NewClassifier creates a classifier. A nil vocabulary uses the default list.
func NewClassifier(vocab *Vocabulary, maxNameLength int) *Classifier {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	if maxNameLength <= 0 {
		maxNameLength = DefaultMaxNameLength
	}
	return &Classifier{vocab: vocab, maxNameLength: maxNameLength}
}

// Classify applies the name rules in order: blank, reserved token, then
// remark spill-over (too long, two or more inner spaces, or remark vocabulary).
func (c *Classifier) Classify(name string) RowKind {
	collapsed := strings.Join(strings.Fields(name), " ")
	if collapsed == "" {
		return RowBlank
	}

	words := textnorm.Words(collapsed)
	if strings.HasPrefix(collapsed, "#") || !hasLetter(collapsed) || allReserved(words) {
		return RowAggregate
	}

	if utf8.RuneCountInString(collapsed) > c.maxNameLength ||
		strings.Count(collapsed, " ") >= 2 ||
		c.vocab.Matches(collapsed) {
		return RowRemark
	}
	return RowPlayer
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func allReserved(words []string) bool {
	for _, w := range words {
		if !reservedNames[w] {
			return false
		}
	}
	return true
}

// BuildEntry reads a player row through the mapping. Invalid or out-of-range
// fields are left missing; ok is false when no metric and no weight remain.
func BuildEntry(row []string, m ColumnMapping, date string) (*models.WellnessEntry, bool) {
	entry := models.NewEntry(date, cell(row, m.Name))

	if v, ok := parseWeight(cell(row, m.Weight)); ok {
		entry.WithWeight(v)
	}
	for _, f := range []struct {
		field  Field
		metric models.Metric
	}{
		{FieldSleep, models.MetricSleep},
		{FieldMentalLoad, models.MetricMentalLoad},
		{FieldMotivation, models.MetricMotivation},
		{FieldHDC, models.MetricHDC},
		{FieldBDC, models.MetricBDC},
	} {
		if v, ok := parseMetric(cell(row, m.Column(f.field))); ok {
			entry.SetValue(f.metric, v)
		}
	}

	if remark := cell(row, m.Remark); !blankTokens[textnorm.Fold(remark)] && !strings.HasPrefix(remark, "#") {
		entry.WithRemark(remark)
	}

	return entry, entry.HasData()
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// collectEntries classifies rows [from, len(t)) and builds entries for the
// player rows. Duplicate names keep the last row, in first-seen order.
func (c *Classifier) collectEntries(t Table, from int, m ColumnMapping, date string, diag *Diagnostics) []*models.WellnessEntry {
	var entries []*models.WellnessEntry
	index := make(map[string]int)

	for r := from; r < len(t); r++ {
		row := t[r]
		diag.RowsScanned++

		switch c.Classify(cell(row, m.Name)) {
		case RowBlank:
			diag.BlankRows++
			continue
		case RowAggregate:
			diag.AggregateRows++
			continue
		case RowRemark:
			diag.RemarkRows++
			continue
		}

		entry, ok := BuildEntry(row, m, date)
		if !ok {
			diag.EmptyRows++
			continue
		}
		if i, seen := index[entry.Name]; seen {
			entries[i] = entry
			diag.DuplicateRows++
			continue
		}
		index[entry.Name] = len(entries)
		entries = append(entries, entry)
	}
	return entries
}
