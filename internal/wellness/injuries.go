// ABOUTME: Injury tracking on the wellness store.
// ABOUTME: Adding an injury marks the player injured; healing the last one returns them to play.
package wellness

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/wellness/internal/models"
	"go.uber.org/zap"
)

// InjuryInput describes a new injury.
type InjuryInput struct {
	Player       string
	Zone         models.InjuryZone
	Grade        int
	Circumstance models.Circumstance
	Date         time.Time
	Notes        string
}

// AddInjury records an injury and sets the player's status to Injured.
func (s *Store) AddInjury(in InjuryInput) (*models.Injury, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.resolvePlayer(in.Player)
	if err != nil {
		return nil, err
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}
	inj, err := models.NewInjury(p, in.Zone, in.Grade, in.Circumstance, in.Date)
	if err != nil {
		return nil, err
	}
	inj.WithNotes(in.Notes)

	player := clonePlayer(p).WithStatus(models.StatusInjured)
	if err := s.persistInjury(inj); err != nil {
		return nil, err
	}
	if err := s.persistPlayer(player); err != nil {
		return nil, err
	}
	s.injuries[inj.ID] = inj
	s.players[player.ID] = player

	s.logger.Info("injury added",
		zap.String("player", p.Name),
		zap.String("zone", string(inj.Zone)),
		zap.Int("grade", inj.Grade))
	return cloneInjury(inj), nil
}

// resolveInjury must be called with the lock held.
func (s *Store) resolveInjury(ref string) (*models.Injury, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if id, err := uuid.Parse(ref); err == nil {
		if i, ok := s.injuries[id]; ok {
			return i, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrInjuryNotFound, ref)
	}
	if len(ref) < minPrefixLen {
		return nil, fmt.Errorf("%w: %s", ErrInjuryNotFound, ref)
	}
	var match *models.Injury
	for id, i := range s.injuries {
		if strings.HasPrefix(id.String(), ref) {
			if match != nil {
				return nil, fmt.Errorf("%w: %s", ErrAmbiguousID, ref)
			}
			match = i
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrInjuryNotFound, ref)
	}
	return match, nil
}

// HealInjury marks an injury healed. When the player has no other active
// injury their status becomes Return-to-play.
func (s *Store) HealInjury(ref string, at time.Time) (*models.Injury, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.resolveInjury(ref)
	if err != nil {
		return nil, err
	}
	healed := cloneInjury(current)
	healed.HealedAt = &at
	if err := s.persistInjury(healed); err != nil {
		return nil, err
	}
	s.injuries[healed.ID] = healed

	if p, ok := s.players[healed.PlayerID]; ok && !s.hasActiveInjury(p.ID) {
		player := clonePlayer(p).WithStatus(models.StatusReturnToPlay)
		if err := s.persistPlayer(player); err != nil {
			return nil, err
		}
		s.players[player.ID] = player
	}
	return cloneInjury(healed), nil
}

func (s *Store) hasActiveInjury(playerID uuid.UUID) bool {
	for _, i := range s.injuries {
		if i.PlayerID == playerID && i.Active() {
			return true
		}
	}
	return false
}

// DeleteInjury removes an injury record.
func (s *Store) DeleteInjury(ref string) (*models.Injury, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inj, err := s.resolveInjury(ref)
	if err != nil {
		return nil, err
	}
	if s.repo != nil {
		if err := s.repo.DeleteInjury(inj.ID); err != nil {
			return nil, fmt.Errorf("delete injury: %w", err)
		}
	}
	delete(s.injuries, inj.ID)
	return cloneInjury(inj), nil
}

// ListInjuries returns injuries, most recent first.
func (s *Store) ListInjuries(activeOnly bool) []*models.Injury {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedInjuries(activeOnly)
}

func (s *Store) sortedInjuries(activeOnly bool) []*models.Injury {
	out := make([]*models.Injury, 0, len(s.injuries))
	for _, i := range s.injuries {
		if activeOnly && !i.Active() {
			continue
		}
		out = append(out, cloneInjury(i))
	}
	sort.Slice(out, func(a, b int) bool {
		if !out[a].Date.Equal(out[b].Date) {
			return out[a].Date.After(out[b].Date)
		}
		return out[a].CreatedAt.After(out[b].CreatedAt)
	})
	return out
}
