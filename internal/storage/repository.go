// ABOUTME: Repository interface for squad wellness storage.
// ABOUTME: Defines the contract for players, day entries, injuries and settings.
package storage

import (
	"errors"

	"github.com/google/uuid"
	"github.com/harperreed/wellness/internal/models"
)

// ErrNotFound is returned when a record to delete does not exist.
var ErrNotFound = errors.New("not found")

// Repository defines the storage interface for wellness data.
// The in-memory store writes through it; implementations need not be
// safe for concurrent writers.
type Repository interface {
	// Player operations
	SavePlayer(p *models.Player) error
	DeletePlayer(id uuid.UUID) error
	ListPlayers() ([]*models.Player, error)

	// Entry operations, keyed by (date, player name)
	SaveEntries(entries []*models.WellnessEntry) error
	ListEntries() ([]*models.WellnessEntry, error)

	// SaveImport stores new players and entries together. When it fails
	// none of them are kept.
	SaveImport(players []*models.Player, entries []*models.WellnessEntry) error

	// Injury operations
	SaveInjury(i *models.Injury) error
	DeleteInjury(id uuid.UUID) error
	ListInjuries() ([]*models.Injury, error)

	// Settings; LoadSettings returns nil when nothing was saved yet
	SaveSettings(s models.Settings) error
	LoadSettings() (*models.Settings, error)

	// Lifecycle
	Clear() error
	Close() error
}
