// ABOUTME: Player model and Status enum for the squad roster.
// ABOUTME: Player names are upper-cased and act as the join key for imported rows.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/wellness/internal/textnorm"
)

// Status is a player's availability.
type Status string

const (
	StatusFit            Status = "Fit"
	StatusInjured        Status = "Injured"
	StatusRehabilitation Status = "Rehabilitation"
	StatusReturnToPlay   Status = "Return-to-play"
)

// AllStatuses lists statuses in display order.
var AllStatuses = []Status{StatusFit, StatusInjured, StatusRehabilitation, StatusReturnToPlay}

var statusAliases = map[string]Status{
	"apte":            StatusFit,
	"blesse":          StatusInjured,
	"rehab":           StatusRehabilitation,
	"rehabilitation":  StatusRehabilitation,
	"reathletisation": StatusReturnToPlay,
	"return to play":  StatusReturnToPlay,
	"return_to_play":  StatusReturnToPlay,
}

// ParseStatus accepts an English or French status label.
func ParseStatus(s string) (Status, bool) {
	key := textnorm.Fold(s)
	for _, st := range AllStatuses {
		if textnorm.Fold(string(st)) == key {
			return st, true
		}
	}
	st, ok := statusAliases[key]
	return st, ok
}

// DefaultTargetWeight is used when an import carries no weight for a new player.
const DefaultTargetWeight = 90.0

// Player is a squad member.
type Player struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Position     Position  `json:"position"`
	Status       Status    `json:"status"`
	TargetWeight float64   `json:"target_weight"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewPlayer creates a Player with default position, status and target weight.
func NewPlayer(name string) *Player {
	return &Player{
		ID:           uuid.New(),
		Name:         NormalizeName(name),
		Position:     DefaultPosition,
		Status:       StatusFit,
		TargetWeight: DefaultTargetWeight,
		CreatedAt:    time.Now(),
	}
}

// WithPosition sets the playing position.
func (p *Player) WithPosition(pos Position) *Player {
	p.Position = pos
	return p
}

// WithStatus sets the availability status.
func (p *Player) WithStatus(s Status) *Player {
	p.Status = s
	return p
}

// WithTargetWeight sets the target weight in kg.
func (p *Player) WithTargetWeight(kg float64) *Player {
	p.TargetWeight = kg
	return p
}

// Group returns the player's taxonomy group.
func (p *Player) Group() string {
	return GroupOf(p.Position)
}

// Line returns the player's taxonomy line.
func (p *Player) Line() string {
	return LineOf(p.Position)
}

// NormalizeName trims, collapses inner whitespace and upper-cases a name.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}
