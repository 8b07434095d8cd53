// ABOUTME: MCP tools for the squad roster and injuries.
// ABOUTME: Players are referenced by name, full ID or ID prefix.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/wellness"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type playerOutput struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	Group        string  `json:"group"`
	Line         string  `json:"line"`
	Status       string  `json:"status"`
	TargetWeight float64 `json:"target_weight"`
}

func toPlayerOutput(p *models.Player) playerOutput {
	return playerOutput{
		ID:           p.ID.String(),
		Name:         p.Name,
		Position:     string(p.Position),
		Group:        p.Group(),
		Line:         p.Line(),
		Status:       string(p.Status),
		TargetWeight: p.TargetWeight,
	}
}

type listPlayersInput struct {
	Group string `json:"group,omitempty" jsonschema:"Only players of this group"`
}

type listPlayersOutput struct {
	Count   int            `json:"count"`
	Players []playerOutput `json:"players"`
}

type addPlayerInput struct {
	Name         string  `json:"name" jsonschema:"Player name"`
	Position     string  `json:"position,omitempty" jsonschema:"Position, English or French label (default Loosehead prop)"`
	Status       string  `json:"status,omitempty" jsonschema:"Fit, Injured, Rehabilitation or Return-to-play"`
	TargetWeight float64 `json:"target_weight,omitempty" jsonschema:"Target weight in kg (default 90)"`
}

type updatePlayerInput struct {
	Player       string   `json:"player" jsonschema:"Player name or ID"`
	Name         string   `json:"name,omitempty" jsonschema:"New name"`
	Position     string   `json:"position,omitempty" jsonschema:"New position"`
	Status       string   `json:"status,omitempty" jsonschema:"New status"`
	TargetWeight *float64 `json:"target_weight,omitempty" jsonschema:"New target weight in kg"`
}

type playerRefInput struct {
	Player string `json:"player" jsonschema:"Player name or ID"`
}

type addInjuryInput struct {
	Player       string `json:"player" jsonschema:"Player name or ID"`
	Zone         string `json:"zone" jsonschema:"Injured zone, e.g. Hamstring, Ankle, Knee - ACL, Concussion"`
	Grade        int    `json:"grade" jsonschema:"Severity grade 1, 2 or 3"`
	Circumstance string `json:"circumstance,omitempty" jsonschema:"Match, Training, Weights, Outside sport or Other"`
	Date         string `json:"date,omitempty" jsonschema:"Injury date (YYYY-MM-DD), defaults to today"`
	Notes        string `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type injuryRefInput struct {
	ID   string `json:"id" jsonschema:"Injury ID or prefix"`
	Date string `json:"date,omitempty" jsonschema:"Healing date (YYYY-MM-DD), defaults to today"`
}

type listInjuriesInput struct {
	ActiveOnly bool `json:"active_only,omitempty" jsonschema:"Only injuries not yet healed"`
}

type injuryOutput struct {
	ID              string  `json:"id"`
	Player          string  `json:"player"`
	Zone            string  `json:"zone"`
	Grade           int     `json:"grade"`
	Circumstance    string  `json:"circumstance"`
	Date            string  `json:"date"`
	EstimatedReturn string  `json:"estimated_return"`
	DaysRemaining   int     `json:"days_remaining"`
	Progress        float64 `json:"progress"`
	Healed          string  `json:"healed,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

func toInjuryOutput(i *models.Injury, now time.Time) injuryOutput {
	out := injuryOutput{
		ID:              i.ID.String(),
		Player:          i.PlayerName,
		Zone:            string(i.Zone),
		Grade:           i.Grade,
		Circumstance:    string(i.Circumstance),
		Date:            i.Date.Format(models.DateLayout),
		EstimatedReturn: i.EstimatedReturn.Format(models.DateLayout),
		DaysRemaining:   i.DaysRemaining(now),
		Progress:        i.Progress(now),
		Notes:           i.Notes,
	}
	if i.HealedAt != nil {
		out.Healed = i.HealedAt.Format(models.DateLayout)
		out.DaysRemaining = 0
		out.Progress = 1
	}
	return out
}

type listInjuriesOutput struct {
	Count    int            `json:"count"`
	Injuries []injuryOutput `json:"injuries"`
}

func (s *Server) handleListPlayers(ctx context.Context, req *mcp.CallToolRequest, input listPlayersInput) (*mcp.CallToolResult, listPlayersOutput, error) {
	if input.Group != "" && !models.IsValidGroup(input.Group) {
		return nil, listPlayersOutput{}, fmt.Errorf("unknown group: %s", input.Group)
	}
	out := listPlayersOutput{Players: []playerOutput{}}
	for _, p := range s.store.ListPlayers() {
		if input.Group != "" && p.Group() != input.Group {
			continue
		}
		out.Players = append(out.Players, toPlayerOutput(p))
	}
	out.Count = len(out.Players)
	return nil, out, nil
}

func (s *Server) handleAddPlayer(ctx context.Context, req *mcp.CallToolRequest, input addPlayerInput) (*mcp.CallToolResult, playerOutput, error) {
	p := models.NewPlayer(input.Name)
	if input.Position != "" {
		pos, ok := models.ParsePosition(input.Position)
		if !ok {
			return nil, playerOutput{}, fmt.Errorf("unknown position: %s", input.Position)
		}
		p.WithPosition(pos)
	}
	if input.Status != "" {
		st, ok := models.ParseStatus(input.Status)
		if !ok {
			return nil, playerOutput{}, fmt.Errorf("unknown status: %s", input.Status)
		}
		p.WithStatus(st)
	}
	if input.TargetWeight > 0 {
		p.WithTargetWeight(input.TargetWeight)
	}

	if err := s.store.CreatePlayer(p); err != nil {
		return nil, playerOutput{}, fmt.Errorf("failed to add player: %w", err)
	}
	return nil, toPlayerOutput(p), nil
}

func (s *Server) handleUpdatePlayer(ctx context.Context, req *mcp.CallToolRequest, input updatePlayerInput) (*mcp.CallToolResult, playerOutput, error) {
	var u wellness.PlayerUpdate
	if input.Name != "" {
		u.Name = &input.Name
	}
	if input.Position != "" {
		pos, ok := models.ParsePosition(input.Position)
		if !ok {
			return nil, playerOutput{}, fmt.Errorf("unknown position: %s", input.Position)
		}
		u.Position = &pos
	}
	if input.Status != "" {
		st, ok := models.ParseStatus(input.Status)
		if !ok {
			return nil, playerOutput{}, fmt.Errorf("unknown status: %s", input.Status)
		}
		u.Status = &st
	}
	u.TargetWeight = input.TargetWeight

	p, err := s.store.UpdatePlayer(input.Player, u)
	if err != nil {
		return nil, playerOutput{}, fmt.Errorf("failed to update player: %w", err)
	}
	return nil, toPlayerOutput(p), nil
}

func (s *Server) handleDeletePlayer(ctx context.Context, req *mcp.CallToolRequest, input playerRefInput) (*mcp.CallToolResult, simpleOutput, error) {
	p, err := s.store.DeletePlayer(input.Player)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete player: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted player %s (%s); their entries are kept", p.Name, shortID(p.ID)),
	}, nil
}

func (s *Server) handleAddInjury(ctx context.Context, req *mcp.CallToolRequest, input addInjuryInput) (*mcp.CallToolResult, injuryOutput, error) {
	zone, ok := models.ParseInjuryZone(input.Zone)
	if !ok {
		return nil, injuryOutput{}, fmt.Errorf("unknown injury zone: %s", input.Zone)
	}
	circ, ok := models.ParseCircumstance(input.Circumstance)
	if !ok {
		return nil, injuryOutput{}, fmt.Errorf("unknown circumstance: %s", input.Circumstance)
	}
	date, err := parseDay(input.Date)
	if err != nil {
		return nil, injuryOutput{}, err
	}

	inj, err := s.store.AddInjury(wellness.InjuryInput{
		Player:       input.Player,
		Zone:         zone,
		Grade:        input.Grade,
		Circumstance: circ,
		Date:         date,
		Notes:        input.Notes,
	})
	if err != nil {
		return nil, injuryOutput{}, fmt.Errorf("failed to add injury: %w", err)
	}
	return nil, toInjuryOutput(inj, time.Now()), nil
}

func (s *Server) handleHealInjury(ctx context.Context, req *mcp.CallToolRequest, input injuryRefInput) (*mcp.CallToolResult, injuryOutput, error) {
	at, err := parseDay(input.Date)
	if err != nil {
		return nil, injuryOutput{}, err
	}
	inj, err := s.store.HealInjury(input.ID, at)
	if err != nil {
		return nil, injuryOutput{}, fmt.Errorf("failed to heal injury: %w", err)
	}
	return nil, toInjuryOutput(inj, at), nil
}

func (s *Server) handleDeleteInjury(ctx context.Context, req *mcp.CallToolRequest, input injuryRefInput) (*mcp.CallToolResult, simpleOutput, error) {
	inj, err := s.store.DeleteInjury(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete injury: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted %s injury of %s (%s)", inj.Zone, inj.PlayerName, shortID(inj.ID)),
	}, nil
}

func (s *Server) handleListInjuries(ctx context.Context, req *mcp.CallToolRequest, input listInjuriesInput) (*mcp.CallToolResult, listInjuriesOutput, error) {
	now := time.Now()
	out := listInjuriesOutput{Injuries: []injuryOutput{}}
	for _, i := range s.store.ListInjuries(input.ActiveOnly) {
		out.Injuries = append(out.Injuries, toInjuryOutput(i, now))
	}
	out.Count = len(out.Injuries)
	return nil, out, nil
}
