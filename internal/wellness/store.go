// ABOUTME: In-memory wellness store: players, dated entries, injuries, settings.
// ABOUTME: Writes are serialized and persisted through a storage.Repository.
package wellness

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/sheet"
	"github.com/harperreed/wellness/internal/storage"
	"go.uber.org/zap"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerExists   = errors.New("player already exists")
	ErrInjuryNotFound = errors.New("injury not found")
	ErrAmbiguousID    = errors.New("ambiguous id prefix")
)

// minPrefixLen is the shortest ID prefix accepted as a reference.
const minPrefixLen = 4

// Store holds the squad data. A nil repository keeps everything in memory.
type Store struct {
	mu       sync.RWMutex
	players  map[uuid.UUID]*models.Player
	days     map[string]map[string]*models.WellnessEntry
	injuries map[uuid.UUID]*models.Injury
	settings models.Settings
	repo     storage.Repository
	logger   *zap.Logger
}

// New creates an empty store. Call Load to hydrate it from the repository.
func New(repo storage.Repository, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		players:  make(map[uuid.UUID]*models.Player),
		days:     make(map[string]map[string]*models.WellnessEntry),
		injuries: make(map[uuid.UUID]*models.Injury),
		settings: models.DefaultSettings(),
		repo:     repo,
		logger:   logger,
	}
}

// Open creates a store and loads it from repo.
func Open(repo storage.Repository, logger *zap.Logger) (*Store, error) {
	s := New(repo, logger)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the in-memory state with the repository contents.
func (s *Store) Load() error {
	if s.repo == nil {
		return nil
	}
	data, err := storage.GetAllData(s.repo)
	if err != nil {
		return fmt.Errorf("load store: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(data)

	s.logger.Debug("store loaded",
		zap.Int("players", len(s.players)),
		zap.Int("dates", len(s.days)),
		zap.Int("injuries", len(s.injuries)))
	return nil
}

// reset must be called with the write lock held.
func (s *Store) reset(data *storage.ExportData) {
	s.players = make(map[uuid.UUID]*models.Player, len(data.Players))
	s.days = make(map[string]map[string]*models.WellnessEntry)
	s.injuries = make(map[uuid.UUID]*models.Injury, len(data.Injuries))
	s.settings = models.DefaultSettings()

	for _, p := range data.Players {
		s.players[p.ID] = p
	}
	for _, e := range data.Entries {
		s.putEntry(e)
	}
	for _, i := range data.Injuries {
		s.injuries[i.ID] = i
	}
	if data.Settings != nil {
		s.settings = *data.Settings
	}
}

func (s *Store) putEntry(e *models.WellnessEntry) {
	day, ok := s.days[e.Date]
	if !ok {
		day = make(map[string]*models.WellnessEntry)
		s.days[e.Date] = day
	}
	day[e.Name] = e
}

// Repository returns the backing repository, or nil for an ephemeral store.
func (s *Store) Repository() storage.Repository {
	return s.repo
}

// Close closes the backing repository.
func (s *Store) Close() error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Close()
}

// UpsertDay merges entries into a date by player name. Each incoming entry
// replaces the stored one whole; names absent from the batch are kept.
func (s *Store) UpsertDay(date string, entries []*models.WellnessEntry) error {
	stamped := make([]*models.WellnessEntry, 0, len(entries))
	for _, e := range entries {
		c := e.Clone()
		c.Date = date
		c.Name = models.NormalizeName(c.Name)
		stamped = append(stamped, c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persistImport(nil, stamped); err != nil {
		return err
	}
	for _, e := range stamped {
		s.putEntry(e)
	}
	return nil
}

// AddPlayerIfAbsent returns the player with the given name, creating it when
// no player matches case-insensitively. A nil targetWeight uses the default.
func (s *Store) AddPlayerIfAbsent(name string, targetWeight *float64) (*models.Player, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := s.findByName(name); p != nil {
		return clonePlayer(p), false, nil
	}
	p := newImportedPlayer(name, targetWeight)
	if err := s.persistPlayer(p); err != nil {
		return nil, false, err
	}
	s.players[p.ID] = p
	return clonePlayer(p), true, nil
}

func newImportedPlayer(name string, targetWeight *float64) *models.Player {
	p := models.NewPlayer(name)
	if targetWeight != nil {
		p.WithTargetWeight(*targetWeight)
	}
	return p
}

// findByName must be called with the lock held.
func (s *Store) findByName(name string) *models.Player {
	want := models.NormalizeName(name)
	for _, p := range s.players {
		if strings.EqualFold(p.Name, want) {
			return p
		}
	}
	return nil
}

// ImportResult summarizes a committed single-day import.
type ImportResult struct {
	Date            string            `json:"date"`
	EntriesCount    int               `json:"entries_count"`
	NewPlayersCount int               `json:"new_players_count"`
	NewPlayers      []string          `json:"new_players,omitempty"`
	Diagnostics     sheet.Diagnostics `json:"diagnostics"`
}

// MultiImportResult summarizes a committed multi-block import.
type MultiImportResult struct {
	DatesImported   []string          `json:"dates_imported"`
	EntriesCount    int               `json:"entries_count"`
	NewPlayersCount int               `json:"new_players_count"`
	NewPlayers      []string          `json:"new_players,omitempty"`
	Unresolved      []string          `json:"unresolved,omitempty"`
	Diagnostics     sheet.Diagnostics `json:"diagnostics"`
}

// ApplyImport creates players for unknown names and upserts the batch.
// The whole batch is applied under one write lock.
func (s *Store) ApplyImport(b *sheet.Batch) (*ImportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.applyBatches([]*sheet.Batch{b})
	if err != nil {
		return nil, err
	}

	s.logger.Info("import committed",
		zap.String("date", b.DateKey()),
		zap.Int("entries", len(b.Entries)),
		zap.Int("new_players", len(created)))

	return &ImportResult{
		Date:            b.DateKey(),
		EntriesCount:    len(b.Entries),
		NewPlayersCount: len(created),
		NewPlayers:      created,
		Diagnostics:     b.Diagnostics,
	}, nil
}

// ApplyMultiImport applies every batch of a multi-block import atomically.
func (s *Store) ApplyMultiImport(mb *sheet.MultiBatch) (*MultiImportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.applyBatches(mb.Batches)
	if err != nil {
		return nil, err
	}

	res := &MultiImportResult{
		EntriesCount:    mb.EntriesCount(),
		NewPlayersCount: len(created),
		NewPlayers:      created,
		Diagnostics:     mb.Diagnostics,
	}
	for _, b := range mb.Batches {
		res.DatesImported = append(res.DatesImported, b.DateKey())
	}
	for _, u := range mb.Unresolved {
		res.Unresolved = append(res.Unresolved, u.Label)
	}

	s.logger.Info("multi-block import committed",
		zap.Strings("dates", res.DatesImported),
		zap.Int("entries", res.EntriesCount),
		zap.Int("new_players", res.NewPlayersCount))
	return res, nil
}

// applyBatches persists new players and entries, then commits them to
// memory. Nothing is committed if persistence fails. Lock must be held.
func (s *Store) applyBatches(batches []*sheet.Batch) ([]string, error) {
	var (
		newPlayers []*models.Player
		entries    []*models.WellnessEntry
		seen       = make(map[string]bool)
	)

	for _, b := range batches {
		date := b.DateKey()
		for _, e := range b.Entries {
			c := e.Clone()
			c.Date = date
			c.Name = models.NormalizeName(c.Name)
			entries = append(entries, c)

			if seen[c.Name] || s.findByName(c.Name) != nil {
				continue
			}
			seen[c.Name] = true
			newPlayers = append(newPlayers, newImportedPlayer(c.Name, c.Weight))
		}
	}

	if err := s.persistImport(newPlayers, entries); err != nil {
		return nil, err
	}

	created := make([]string, 0, len(newPlayers))
	for _, p := range newPlayers {
		s.players[p.ID] = p
		created = append(created, p.Name)
	}
	for _, e := range entries {
		s.putEntry(e)
	}
	return created, nil
}

func (s *Store) persistPlayer(p *models.Player) error {
	if s.repo == nil {
		return nil
	}
	if err := s.repo.SavePlayer(p); err != nil {
		s.logger.Error("persist player failed", zap.String("player", p.Name), zap.Error(err))
		return fmt.Errorf("save player: %w", err)
	}
	return nil
}

func (s *Store) persistImport(players []*models.Player, entries []*models.WellnessEntry) error {
	if s.repo == nil || (len(players) == 0 && len(entries) == 0) {
		return nil
	}
	if err := s.repo.SaveImport(players, entries); err != nil {
		s.logger.Error("persist import failed",
			zap.Int("players", len(players)),
			zap.Int("entries", len(entries)),
			zap.Error(err))
		return fmt.Errorf("save import: %w", err)
	}
	return nil
}

func (s *Store) persistInjury(i *models.Injury) error {
	if s.repo == nil {
		return nil
	}
	if err := s.repo.SaveInjury(i); err != nil {
		s.logger.Error("persist injury failed", zap.String("injury", i.ID.String()), zap.Error(err))
		return fmt.Errorf("save injury: %w", err)
	}
	return nil
}

// Replace swaps the whole store for data, clearing the repository first.
func (s *Store) Replace(data *storage.ExportData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.Clear(); err != nil {
			return fmt.Errorf("clear repository: %w", err)
		}
		if err := storage.ImportData(s.repo, data); err != nil {
			return err
		}
	}
	s.reset(data)
	s.logger.Info("store replaced",
		zap.Int("players", len(s.players)),
		zap.Int("dates", len(s.days)))
	return nil
}

func clonePlayer(p *models.Player) *models.Player {
	c := *p
	return &c
}

func cloneInjury(i *models.Injury) *models.Injury {
	c := *i
	if i.HealedAt != nil {
		t := *i.HealedAt
		c.HealedAt = &t
	}
	return &c
}
