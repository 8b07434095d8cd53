// ABOUTME: MCP tools for squad statistics.
// ABOUTME: Day averages, alerts, Z-score series and player history.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type teamAverageInput struct {
	Date     string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD); defaults to the latest imported date"`
	Group    string `json:"group,omitempty" jsonschema:"Restrict to a group: Forwards or Backs"`
	Line     string `json:"line,omitempty" jsonschema:"Restrict to a line, e.g. Front row or Centres"`
	Position string `json:"position,omitempty" jsonschema:"Restrict to a position, English or French label"`
	Player   string `json:"player,omitempty" jsonschema:"Restrict to one player by name or ID"`
}

type teamAverageOutput struct {
	Date      string           `json:"date"`
	Filter    string           `json:"filter"`
	Aggregate *stats.Aggregate `json:"aggregate,omitempty"`
	Message   string           `json:"message,omitempty"`
}

type alertsInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD); defaults to the latest imported date"`
}

type alertsOutput struct {
	Date   string        `json:"date"`
	Count  int           `json:"count"`
	Alerts []stats.Alert `json:"alerts"`
}

type zscoreInput struct {
	Metric     string `json:"metric,omitempty" jsonschema:"sleep, mental_load, motivation, hdc, bdc or global (default global)"`
	WindowDays int    `json:"window_days,omitempty" jsonschema:"Number of most recent dates to return (default 30)"`
	Group      string `json:"group,omitempty" jsonschema:"Restrict to a group: Forwards or Backs"`
	Line       string `json:"line,omitempty" jsonschema:"Restrict to a line, e.g. Front row or Centres"`
	Position   string `json:"position,omitempty" jsonschema:"Restrict to a position, English or French label"`
	Player     string `json:"player,omitempty" jsonschema:"Restrict to one player by name or ID"`
}

type zscoreOutput struct {
	Metric string         `json:"metric"`
	Filter string         `json:"filter"`
	Points []stats.ZPoint `json:"points"`
}

type playerHistoryInput struct {
	Player string `json:"player" jsonschema:"Player name or ID"`
	Days   int    `json:"days,omitempty" jsonschema:"Number of most recent entries (default 14)"`
}

type playerHistoryOutput struct {
	Player  string               `json:"player"`
	History []stats.HistoryPoint `json:"history"`
}

func (s *Server) handleTeamAverage(ctx context.Context, req *mcp.CallToolRequest, input teamAverageInput) (*mcp.CallToolResult, any, error) {
	snap := s.store.Snapshot()
	date, err := resolveDate(snap, input.Date)
	if err != nil {
		return nil, nil, err
	}
	f, err := s.filter(input.Group, input.Line, input.Position, input.Player)
	if err != nil {
		return nil, nil, err
	}

	out := teamAverageOutput{Date: date, Filter: f.String()}
	out.Aggregate = stats.TeamAverage(snap, date, f)
	if out.Aggregate == nil {
		out.Message = "No data for this date and filter."
	}
	return nil, out, nil
}

func (s *Server) handleAlerts(ctx context.Context, req *mcp.CallToolRequest, input alertsInput) (*mcp.CallToolResult, any, error) {
	snap := s.store.Snapshot()
	date, err := resolveDate(snap, input.Date)
	if err != nil {
		return nil, nil, err
	}
	alerts := stats.AlertsForDate(snap, date)
	if alerts == nil {
		alerts = []stats.Alert{}
	}
	return nil, alertsOutput{Date: date, Count: len(alerts), Alerts: alerts}, nil
}

func (s *Server) handleZScoreSeries(ctx context.Context, req *mcp.CallToolRequest, input zscoreInput) (*mcp.CallToolResult, any, error) {
	metric := models.MetricGlobal
	if input.Metric != "" {
		m, ok := models.ParseMetric(input.Metric)
		if !ok {
			return nil, nil, fmt.Errorf("unknown metric: %s", input.Metric)
		}
		metric = m
	}
	if input.WindowDays <= 0 {
		input.WindowDays = 30
	}
	f, err := s.filter(input.Group, input.Line, input.Position, input.Player)
	if err != nil {
		return nil, nil, err
	}

	points := stats.ZScoreSeries(s.store.Snapshot(), metric, f, input.WindowDays)
	if points == nil {
		points = []stats.ZPoint{}
	}
	return nil, zscoreOutput{Metric: string(metric), Filter: f.String(), Points: points}, nil
}

func (s *Server) handlePlayerHistory(ctx context.Context, req *mcp.CallToolRequest, input playerHistoryInput) (*mcp.CallToolResult, any, error) {
	p, err := s.store.GetPlayer(input.Player)
	if err != nil {
		return nil, nil, err
	}
	if input.Days <= 0 {
		input.Days = 14
	}
	history := stats.PlayerHistory(s.store.Snapshot(), p.Name, input.Days)
	if history == nil {
		history = []stats.HistoryPoint{}
	}
	return nil, playerHistoryOutput{Player: p.Name, History: history}, nil
}
