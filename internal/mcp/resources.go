// ABOUTME: MCP resource implementations for squad wellness.
// ABOUTME: Provides wellness://latest, wellness://players, and wellness://settings resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	latestURI   = "wellness://latest"
	playersURI  = "wellness://players"
	settingsURI = "wellness://settings"
)

func (s *Server) registerResources() {
	// wellness://latest - dashboard for the most recent imported date
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         latestURI,
		Name:        "Latest Wellness Day",
		Description: "Team and group averages, alerts and Z-score for the most recent date",
		MIMEType:    "application/json",
	}, s.handleLatestResource)

	// wellness://players - roster with active injuries
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         playersURI,
		Name:        "Squad Roster",
		Description: "Players with position, status, target weight and active injuries",
		MIMEType:    "application/json",
	}, s.handlePlayersResource)

	// wellness://settings - thresholds
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         settingsURI,
		Name:        "Wellness Settings",
		Description: "Alerting and Z-score thresholds",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// Resource handlers

func (s *Server) handleLatestResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	snap := s.store.Snapshot()
	date, ok := snap.LatestDate()
	if !ok {
		return jsonResource(latestURI, map[string]any{"message": "No wellness data imported yet."})
	}

	result := map[string]any{
		"date":      date,
		"responses": len(snap.Day(date)),
		"breakdown": stats.Breakdown(snap, date),
		"alerts":    stats.AlertsForDate(snap, date),
	}
	if z, ok := stats.LatestZScore(snap, models.MetricGlobal, nil); ok {
		result["zscore"] = z
	}
	return jsonResource(latestURI, result)
}

func (s *Server) handlePlayersResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now()
	injuries := make(map[string][]injuryOutput)
	for _, i := range s.store.ListInjuries(true) {
		injuries[i.PlayerID.String()] = append(injuries[i.PlayerID.String()], toInjuryOutput(i, now))
	}

	type rosterEntry struct {
		playerOutput
		Injuries []injuryOutput `json:"injuries,omitempty"`
	}
	var roster []rosterEntry
	for _, p := range s.store.ListPlayers() {
		roster = append(roster, rosterEntry{
			playerOutput: toPlayerOutput(p),
			Injuries:     injuries[p.ID.String()],
		})
	}

	return jsonResource(playersURI, map[string]any{
		"count":   len(roster),
		"players": roster,
	})
}

func (s *Server) handleSettingsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(settingsURI, s.store.Settings())
}
