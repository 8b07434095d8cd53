// ABOUTME: Data migration between wellness storage backends.
// ABOUTME: Copies players, entries, injuries and settings from source to destination.

package storage

import (
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Players  int
	Entries  int
	Injuries int
	Settings bool
}

// MigrateData copies all data from src to dst storage.
// The destination should be empty before calling this function; records
// with matching keys are overwritten.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	players, err := src.ListPlayers()
	if err != nil {
		return nil, fmt.Errorf("list source players: %w", err)
	}
	for _, p := range players {
		if err := dst.SavePlayer(p); err != nil {
			return nil, fmt.Errorf("save player %s: %w", p.ID, err)
		}
		summary.Players++
	}

	entries, err := src.ListEntries()
	if err != nil {
		return nil, fmt.Errorf("list source entries: %w", err)
	}
	if err := dst.SaveEntries(entries); err != nil {
		return nil, fmt.Errorf("save entries: %w", err)
	}
	summary.Entries = len(entries)

	injuries, err := src.ListInjuries()
	if err != nil {
		return nil, fmt.Errorf("list source injuries: %w", err)
	}
	for _, i := range injuries {
		if err := dst.SaveInjury(i); err != nil {
			return nil, fmt.Errorf("save injury %s: %w", i.ID, err)
		}
		summary.Injuries++
	}

	settings, err := src.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("load source settings: %w", err)
	}
	if settings != nil {
		if err := dst.SaveSettings(*settings); err != nil {
			return nil, fmt.Errorf("save settings: %w", err)
		}
		summary.Settings = true
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
