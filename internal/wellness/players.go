// ABOUTME: Player roster operations on the wellness store.
// ABOUTME: Players are referenced by full ID, unique ID prefix, or name.
package wellness

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/wellness/internal/models"
	"go.uber.org/zap"
)

// PlayerUpdate carries optional changes to a player.
type PlayerUpdate struct {
	Name         *string
	Position     *models.Position
	Status       *models.Status
	TargetWeight *float64
}

// CreatePlayer adds a new player. Names are unique case-insensitively.
func (s *Store) CreatePlayer(p *models.Player) error {
	p.Name = models.NormalizeName(p.Name)
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findByName(p.Name) != nil {
		return fmt.Errorf("%w: %s", ErrPlayerExists, p.Name)
	}
	if err := s.persistPlayer(p); err != nil {
		return err
	}
	s.players[p.ID] = clonePlayer(p)
	s.logger.Info("player created", zap.String("player", p.Name))
	return nil
}

// GetPlayer resolves a reference to a player.
func (s *Store) GetPlayer(ref string) (*models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := s.resolvePlayer(ref)
	if err != nil {
		return nil, err
	}
	return clonePlayer(p), nil
}

// resolvePlayer must be called with the lock held.
func (s *Store) resolvePlayer(ref string) (*models.Player, error) {
	ref = strings.TrimSpace(ref)
	if id, err := uuid.Parse(ref); err == nil {
		if p, ok := s.players[id]; ok {
			return p, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, ref)
	}
	if p := s.findByName(ref); p != nil {
		return p, nil
	}

	if len(ref) >= minPrefixLen {
		var match *models.Player
		prefix := strings.ToLower(ref)
		for id, p := range s.players {
			if strings.HasPrefix(id.String(), prefix) {
				if match != nil {
					return nil, fmt.Errorf("%w: %s", ErrAmbiguousID, ref)
				}
				match = p
			}
		}
		if match != nil {
			return match, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, ref)
}

// ListPlayers returns all players sorted by name.
func (s *Store) ListPlayers() []*models.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedPlayers()
}

func (s *Store) sortedPlayers() []*models.Player {
	out := make([]*models.Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, clonePlayer(p))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// UpdatePlayer applies u to the referenced player. Entries stay keyed by the
// name they were imported under.
func (s *Store) UpdatePlayer(ref string, u PlayerUpdate) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.resolvePlayer(ref)
	if err != nil {
		return nil, err
	}
	next := clonePlayer(current)

	if u.Name != nil {
		name := models.NormalizeName(*u.Name)
		if name == "" {
			return nil, fmt.Errorf("player name is required")
		}
		if other := s.findByName(name); other != nil && other.ID != next.ID {
			return nil, fmt.Errorf("%w: %s", ErrPlayerExists, name)
		}
		next.Name = name
	}
	if u.Position != nil {
		next.Position = *u.Position
	}
	if u.Status != nil {
		next.Status = *u.Status
	}
	if u.TargetWeight != nil {
		if *u.TargetWeight < models.WeightMin || *u.TargetWeight > models.WeightMax {
			return nil, fmt.Errorf("target weight must be in [%g,%g], got %g", models.WeightMin, models.WeightMax, *u.TargetWeight)
		}
		next.TargetWeight = *u.TargetWeight
	}

	if err := s.persistPlayer(next); err != nil {
		return nil, err
	}
	s.players[next.ID] = next
	return clonePlayer(next), nil
}

// DeletePlayer removes a player. Their entries remain as unmatched rows.
func (s *Store) DeletePlayer(ref string) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.resolvePlayer(ref)
	if err != nil {
		return nil, err
	}
	if s.repo != nil {
		if err := s.repo.DeletePlayer(p.ID); err != nil {
			return nil, fmt.Errorf("delete player: %w", err)
		}
	}
	delete(s.players, p.ID)
	s.logger.Info("player deleted", zap.String("player", p.Name))
	return p, nil
}
