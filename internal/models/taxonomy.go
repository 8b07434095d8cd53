// ABOUTME: Static rugby squad taxonomy: group, line, and position.
// ABOUTME: Used for filtered aggregation; never mutated at runtime.
package models

import "github.com/harperreed/wellness/internal/textnorm"

// Position is a playing position within the squad taxonomy.
type Position string

const (
	PositionLooseheadProp Position = "Loosehead prop"
	PositionHooker        Position = "Hooker"
	PositionTightheadProp Position = "Tighthead prop"
	PositionLock          Position = "Lock"
	PositionFlanker       Position = "Flanker"
	PositionNumberEight   Position = "Number eight"
	PositionScrumHalf     Position = "Scrum-half"
	PositionFlyHalf       Position = "Fly-half"
	PositionCentre        Position = "Centre"
	PositionWing          Position = "Wing"
	PositionFullback      Position = "Fullback"
)

// Group names.
const (
	GroupForwards = "Forwards"
	GroupBacks    = "Backs"
)

// Line names.
const (
	LineFrontRow  = "Front row"
	LineSecondRow = "Second row"
	LineBackRow   = "Back row"
	LineHalfBacks = "Half-backs"
	LineCentres   = "Centres"
	LineWings     = "Wings"
	LineFullback  = "Fullback"
)

// Line is one row of the taxonomy: a named line and its positions.
type Line struct {
	Name      string
	Positions []Position
}

// Group is a named group of lines.
type Group struct {
	Name  string
	Lines []Line
}

// Taxonomy lists groups, lines and positions in display order.
var Taxonomy = []Group{
	{Name: GroupForwards, Lines: []Line{
		{Name: LineFrontRow, Positions: []Position{PositionLooseheadProp, PositionHooker, PositionTightheadProp}},
		{Name: LineSecondRow, Positions: []Position{PositionLock}},
		{Name: LineBackRow, Positions: []Position{PositionFlanker, PositionNumberEight}},
	}},
	{Name: GroupBacks, Lines: []Line{
		{Name: LineHalfBacks, Positions: []Position{PositionScrumHalf, PositionFlyHalf}},
		{Name: LineCentres, Positions: []Position{PositionCentre}},
		{Name: LineWings, Positions: []Position{PositionWing}},
		{Name: LineFullback, Positions: []Position{PositionFullback}},
	}},
}

// positionAliases maps the French squad-sheet labels onto positions.
var positionAliases = map[string]Position{
	"pilier gauche":     PositionLooseheadProp,
	"talonneur":         PositionHooker,
	"pilier droit":      PositionTightheadProp,
	"2eme ligne":        PositionLock,
	"deuxieme ligne":    PositionLock,
	"3eme ligne aile":   PositionFlanker,
	"3eme ligne centre": PositionNumberEight,
	"demi de melee":     PositionScrumHalf,
	"demi d'ouverture":  PositionFlyHalf,
	"centre":            PositionCentre,
	"ailier":            PositionWing,
	"arriere":           PositionFullback,
}

// DefaultPosition is assigned to players created by an import.
const DefaultPosition = PositionLooseheadProp

// AllPositions returns every position in taxonomy order.
func AllPositions() []Position {
	var out []Position
	for _, g := range Taxonomy {
		for _, l := range g.Lines {
			out = append(out, l.Positions...)
		}
	}
	return out
}

// AllLines returns every line name in taxonomy order.
func AllLines() []string {
	var out []string
	for _, g := range Taxonomy {
		for _, l := range g.Lines {
			out = append(out, l.Name)
		}
	}
	return out
}

// IsValidGroup checks if s names a group.
func IsValidGroup(s string) bool {
	for _, g := range Taxonomy {
		if g.Name == s {
			return true
		}
	}
	return false
}

// IsValidLine checks if s names a line.
func IsValidLine(s string) bool {
	for _, l := range AllLines() {
		if l == s {
			return true
		}
	}
	return false
}

// GroupOf returns the group of a position. Unknown positions count as forwards.
func GroupOf(p Position) string {
	for _, g := range Taxonomy {
		for _, l := range g.Lines {
			for _, pos := range l.Positions {
				if pos == p {
					return g.Name
				}
			}
		}
	}
	return GroupForwards
}

// LineOf returns the line of a position. Unknown positions count as front row.
func LineOf(p Position) string {
	for _, g := range Taxonomy {
		for _, l := range g.Lines {
			for _, pos := range l.Positions {
				if pos == p {
					return l.Name
				}
			}
		}
	}
	return LineFrontRow
}

// ParsePosition accepts an English or French position label.
func ParsePosition(s string) (Position, bool) {
	key := textnorm.Fold(s)
	for _, p := range AllPositions() {
		if textnorm.Fold(string(p)) == key {
			return p, true
		}
	}
	if p, ok := positionAliases[key]; ok {
		return p, true
	}
	return "", false
}
