// ABOUTME: Taxonomy filter for aggregations: group, line, position or one player.
// ABOUTME: Selects a date's entries through the snapshot's player directory.
package stats

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/wellness"
)

// Filter restricts an aggregation to part of the squad. Empty fields match
// everything; a nil or zero Filter selects every entry.
type Filter struct {
	Group    string          `json:"group,omitempty"`
	Line     string          `json:"line,omitempty"`
	Position models.Position `json:"position,omitempty"`
	PlayerID uuid.UUID       `json:"player_id,omitempty"`
}

// IsZero reports whether the filter restricts nothing.
func (f *Filter) IsZero() bool {
	return f == nil || (f.Group == "" && f.Line == "" && f.Position == "" && f.PlayerID == uuid.Nil)
}

// Validate checks group, line and position names against the taxonomy.
func (f *Filter) Validate() error {
	if f == nil {
		return nil
	}
	if f.Group != "" && !models.IsValidGroup(f.Group) {
		return fmt.Errorf("unknown group %q", f.Group)
	}
	if f.Line != "" && !models.IsValidLine(f.Line) {
		return fmt.Errorf("unknown line %q", f.Line)
	}
	if f.Position != "" {
		if _, ok := models.ParsePosition(string(f.Position)); !ok {
			return fmt.Errorf("unknown position %q", f.Position)
		}
	}
	return nil
}

// Match reports whether a player passes the filter.
func (f *Filter) Match(p *models.Player) bool {
	if f.IsZero() {
		return true
	}
	if p == nil {
		return false
	}
	switch {
	case f.PlayerID != uuid.Nil && p.ID != f.PlayerID:
		return false
	case f.Group != "" && p.Group() != f.Group:
		return false
	case f.Line != "" && p.Line() != f.Line:
		return false
	case f.Position != "" && p.Position != f.position():
		return false
	}
	return true
}

// position resolves French or differently cased labels.
func (f *Filter) position() models.Position {
	if pos, ok := models.ParsePosition(string(f.Position)); ok {
		return pos
	}
	return f.Position
}

// String describes the filter for display.
func (f *Filter) String() string {
	switch {
	case f.IsZero():
		return "Team"
	case f.PlayerID != uuid.Nil:
		return "Player " + f.PlayerID.String()[:8]
	case f.Position != "":
		return string(f.Position)
	case f.Line != "":
		return f.Line
	}
	return f.Group
}

// selectEntries returns a date's entries that pass the filter. Without a
// filter every entry counts, including rows with no matching player.
func selectEntries(snap *wellness.Snapshot, date string, f *Filter) []*models.WellnessEntry {
	day := snap.Day(date)
	if f.IsZero() {
		return day
	}
	dir := snap.Directory()
	out := make([]*models.WellnessEntry, 0, len(day))
	for _, e := range day {
		p, ok := dir.Lookup(e.Name)
		if ok && f.Match(p) {
			out = append(out, e)
		}
	}
	return out
}
