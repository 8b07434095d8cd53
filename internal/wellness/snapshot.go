// ABOUTME: Immutable point-in-time copy of the store for statistics readers.
// ABOUTME: Holds the player directory, dated entries, injuries and settings.
package wellness

import (
	"sort"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/storage"
)

// PlayerDirectory maps upper-cased player names to players.
type PlayerDirectory map[string]*models.Player

// Lookup finds a player by name, case-insensitively.
func (d PlayerDirectory) Lookup(name string) (*models.Player, bool) {
	p, ok := d[models.NormalizeName(name)]
	return p, ok
}

// Snapshot is a deep copy of the store. It is never mutated after creation.
type Snapshot struct {
	Players  []*models.Player
	Injuries []*models.Injury
	Settings models.Settings

	days      map[string]map[string]*models.WellnessEntry
	dates     []string
	directory PlayerDirectory
}

// NewSnapshot builds a snapshot from raw records. Later entries for the same
// date and name replace earlier ones.
func NewSnapshot(players []*models.Player, entries []*models.WellnessEntry, injuries []*models.Injury, settings models.Settings) *Snapshot {
	snap := &Snapshot{
		Players:   players,
		Injuries:  injuries,
		Settings:  settings,
		days:      make(map[string]map[string]*models.WellnessEntry),
		directory: make(PlayerDirectory, len(players)),
	}
	for _, p := range players {
		snap.directory[models.NormalizeName(p.Name)] = p
	}
	for _, e := range entries {
		day, ok := snap.days[e.Date]
		if !ok {
			day = make(map[string]*models.WellnessEntry)
			snap.days[e.Date] = day
		}
		day[models.NormalizeName(e.Name)] = e
	}
	for date := range snap.days {
		snap.dates = append(snap.dates, date)
	}
	sort.Strings(snap.dates)
	return snap
}

// Snapshot copies the current state under the read lock.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []*models.WellnessEntry
	for _, day := range s.days {
		for _, e := range day {
			entries = append(entries, e.Clone())
		}
	}
	return NewSnapshot(s.sortedPlayers(), entries, s.sortedInjuries(false), s.settings)
}

// Directory returns the name-keyed player lookup.
func (s *Snapshot) Directory() PlayerDirectory {
	return s.directory
}

// Dates returns every date with entries, ascending.
func (s *Snapshot) Dates() []string {
	return s.dates
}

// LatestDate returns the most recent date with entries.
func (s *Snapshot) LatestDate() (string, bool) {
	if len(s.dates) == 0 {
		return "", false
	}
	return s.dates[len(s.dates)-1], true
}

// Day returns a date's entries sorted by player name.
func (s *Snapshot) Day(date string) []*models.WellnessEntry {
	day := s.days[date]
	out := make([]*models.WellnessEntry, 0, len(day))
	for _, e := range day {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Entry returns one player's entry for a date.
func (s *Snapshot) Entry(date, name string) (*models.WellnessEntry, bool) {
	e, ok := s.days[date][models.NormalizeName(name)]
	return e, ok
}

// Entries returns all entries ordered by date then name.
func (s *Snapshot) Entries() []*models.WellnessEntry {
	var out []*models.WellnessEntry
	for _, d := range s.dates {
		out = append(out, s.Day(d)...)
	}
	return out
}

// Export converts the snapshot to the portable export format.
func (s *Snapshot) Export() *storage.ExportData {
	settings := s.Settings
	return &storage.ExportData{
		Version:    storage.ExportVersion,
		ExportedAt: time.Now(),
		Tool:       "wellness",
		Players:    s.Players,
		Entries:    s.Entries(),
		Injuries:   s.Injuries,
		Settings:   &settings,
	}
}
