// ABOUTME: Injury model with the zone x grade recovery-duration table.
// ABOUTME: Estimated return date is derived from the table at creation time.
package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/wellness/internal/textnorm"
)

// ErrInvalidInjury is returned for an unknown zone, grade or circumstance.
var ErrInvalidInjury = errors.New("invalid injury")

// InjuryZone is an injured body area.
type InjuryZone string

const (
	ZoneHamstring           InjuryZone = "Hamstring"
	ZoneQuadriceps          InjuryZone = "Quadriceps"
	ZoneCalf                InjuryZone = "Calf"
	ZoneAdductors           InjuryZone = "Adductors"
	ZoneKneeACL             InjuryZone = "Knee - ACL"
	ZoneKneeMeniscus        InjuryZone = "Knee - Meniscus"
	ZoneKneeSprain          InjuryZone = "Knee - Sprain"
	ZoneAnkle               InjuryZone = "Ankle"
	ZoneShoulderDislocation InjuryZone = "Shoulder - Dislocation"
	ZoneShoulderOther       InjuryZone = "Shoulder - Other"
	ZoneBack                InjuryZone = "Back"
	ZoneNeck                InjuryZone = "Neck"
	ZoneConcussion          InjuryZone = "Concussion"
	ZoneRibs                InjuryZone = "Ribs"
	ZoneWristHand           InjuryZone = "Wrist/Hand"
	ZoneFoot                InjuryZone = "Foot"
	ZoneOther               InjuryZone = "Other"
)

// InjuryZones maps each zone to the estimated recovery days for grades 1, 2 and 3.
var InjuryZones = map[InjuryZone][3]int{
	ZoneHamstring:           {10, 28, 84},
	ZoneQuadriceps:          {7, 21, 56},
	ZoneCalf:                {7, 21, 42},
	ZoneAdductors:           {7, 21, 42},
	ZoneKneeACL:             {180, 270, 365},
	ZoneKneeMeniscus:        {28, 56, 120},
	ZoneKneeSprain:          {14, 42, 84},
	ZoneAnkle:               {7, 21, 56},
	ZoneShoulderDislocation: {21, 84, 180},
	ZoneShoulderOther:       {14, 35, 84},
	ZoneBack:                {7, 21, 56},
	ZoneNeck:                {7, 14, 42},
	ZoneConcussion:          {12, 21, 42},
	ZoneRibs:                {14, 28, 56},
	ZoneWristHand:           {7, 21, 42},
	ZoneFoot:                {7, 21, 42},
	ZoneOther:               {7, 14, 28},
}

// AllInjuryZones lists zones in display order.
var AllInjuryZones = []InjuryZone{
	ZoneHamstring, ZoneQuadriceps, ZoneCalf, ZoneAdductors,
	ZoneKneeACL, ZoneKneeMeniscus, ZoneKneeSprain, ZoneAnkle,
	ZoneShoulderDislocation, ZoneShoulderOther, ZoneBack, ZoneNeck,
	ZoneConcussion, ZoneRibs, ZoneWristHand, ZoneFoot, ZoneOther,
}

// Circumstance describes how an injury happened.
type Circumstance string

const (
	CircumstanceMatch        Circumstance = "Match"
	CircumstanceTraining     Circumstance = "Training"
	CircumstanceWeights      Circumstance = "Weights"
	CircumstanceOutsideSport Circumstance = "Outside sport"
	CircumstanceOther        Circumstance = "Other"
)

// AllCircumstances lists circumstances in display order.
var AllCircumstances = []Circumstance{
	CircumstanceMatch, CircumstanceTraining, CircumstanceWeights,
	CircumstanceOutsideSport, CircumstanceOther,
}

// ParseInjuryZone matches a zone label case- and accent-insensitively.
func ParseInjuryZone(s string) (InjuryZone, bool) {
	key := textnorm.Fold(s)
	for _, z := range AllInjuryZones {
		if textnorm.Fold(string(z)) == key {
			return z, true
		}
	}
	return "", false
}

// ParseCircumstance matches a circumstance label. Empty means Other.
func ParseCircumstance(s string) (Circumstance, bool) {
	if s == "" {
		return CircumstanceOther, true
	}
	key := textnorm.Fold(s)
	for _, c := range AllCircumstances {
		if textnorm.Fold(string(c)) == key {
			return c, true
		}
	}
	return "", false
}

// EstimatedDays returns the recovery estimate for a zone and grade.
func EstimatedDays(zone InjuryZone, grade int) (int, error) {
	days, ok := InjuryZones[zone]
	if !ok {
		return 0, fmt.Errorf("%w: unknown zone %q", ErrInvalidInjury, zone)
	}
	if grade < 1 || grade > 3 {
		return 0, fmt.Errorf("%w: grade must be 1, 2 or 3, got %d", ErrInvalidInjury, grade)
	}
	return days[grade-1], nil
}

// Injury is a recorded injury for one player.
type Injury struct {
	ID              uuid.UUID    `json:"id"`
	PlayerID        uuid.UUID    `json:"player_id"`
	PlayerName      string       `json:"player_name"`
	Zone            InjuryZone   `json:"zone"`
	Grade           int          `json:"grade"`
	Circumstance    Circumstance `json:"circumstance"`
	Date            time.Time    `json:"date"`
	EstimatedDays   int          `json:"estimated_days"`
	EstimatedReturn time.Time    `json:"estimated_return"`
	Notes           string       `json:"notes,omitempty"`
	HealedAt        *time.Time   `json:"healed_at,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// NewInjury validates the zone and grade and derives the estimated return date.
func NewInjury(player *Player, zone InjuryZone, grade int, circumstance Circumstance, date time.Time) (*Injury, error) {
	days, err := EstimatedDays(zone, grade)
	if err != nil {
		return nil, err
	}
	if _, ok := ParseCircumstance(string(circumstance)); !ok {
		return nil, fmt.Errorf("%w: unknown circumstance %q", ErrInvalidInjury, circumstance)
	}
	if circumstance == "" {
		circumstance = CircumstanceOther
	}
	day := truncateDay(date)
	return &Injury{
		ID:              uuid.New(),
		PlayerID:        player.ID,
		PlayerName:      player.Name,
		Zone:            zone,
		Grade:           grade,
		Circumstance:    circumstance,
		Date:            day,
		EstimatedDays:   days,
		EstimatedReturn: day.AddDate(0, 0, days),
		CreatedAt:       time.Now(),
	}, nil
}

// WithNotes sets notes on the injury.
func (i *Injury) WithNotes(notes string) *Injury {
	i.Notes = notes
	return i
}

// Active reports whether the injury has not been marked healed.
func (i *Injury) Active() bool {
	return i.HealedAt == nil
}

// Progress is the elapsed fraction of the estimated recovery, clamped to [0,1].
func (i *Injury) Progress(now time.Time) float64 {
	if i.EstimatedDays <= 0 {
		return 1
	}
	elapsed := truncateDay(now).Sub(i.Date).Hours() / 24
	p := elapsed / float64(i.EstimatedDays)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// DaysRemaining counts whole days until the estimated return; never negative.
func (i *Injury) DaysRemaining(now time.Time) int {
	d := int(i.EstimatedReturn.Sub(truncateDay(now)).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
