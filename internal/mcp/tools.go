// ABOUTME: MCP tool registration and shared input helpers.
// ABOUTME: Tools cover imports, statistics, roster, injuries and settings.
package mcp

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/sheet"
	"github.com/harperreed/wellness/internal/stats"
	"github.com/harperreed/wellness/internal/wellness"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// imports
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "import_sheet",
		Description: "Import a single-day wellness sheet from a CSV/Excel file or Google Sheets URL",
	}, s.handleImportSheet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_blocks",
		Description: "List the dated day blocks of a multi-day wellness sheet without importing",
	}, s.handleListBlocks)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "import_blocks",
		Description: "Import selected dated blocks of a multi-day wellness sheet",
	}, s.handleImportBlocks)

	// statistics
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "team_average",
		Description: "Average wellness metrics for a date, optionally filtered by group, line, position or player",
	}, s.handleTeamAverage)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "alerts",
		Description: "Low-value, weight and variation alerts for a date",
	}, s.handleAlerts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "zscore_series",
		Description: "Rolling Z-score of a metric's day average against the preceding days",
	}, s.handleZScoreSeries)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "player_history",
		Description: "A player's recent wellness entries in chronological order",
	}, s.handlePlayerHistory)

	// roster
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_players",
		Description: "List squad players with position, status and target weight",
	}, s.handleListPlayers)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_player",
		Description: "Add a player to the squad",
	}, s.handleAddPlayer)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_player",
		Description: "Update a player's name, position, status or target weight",
	}, s.handleUpdatePlayer)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_player",
		Description: "Delete a player by name, ID or ID prefix; their entries are kept",
	}, s.handleDeletePlayer)

	// injuries
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_injury",
		Description: "Record an injury; the estimated return date comes from the zone and grade",
	}, s.handleAddInjury)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "heal_injury",
		Description: "Mark an injury healed",
	}, s.handleHealInjury)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_injury",
		Description: "Delete an injury record",
	}, s.handleDeleteInjury)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_injuries",
		Description: "List injuries, most recent first",
	}, s.handleListInjuries)

	// settings
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_settings",
		Description: "Get the alerting and Z-score thresholds",
	}, s.handleGetSettings)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_settings",
		Description: "Update alerting and Z-score thresholds",
	}, s.handleUpdateSettings)
}

type simpleOutput struct {
	Message string `json:"message"`
}

// filter builds a stats filter, resolving player references through the store.
func (s *Server) filter(group, line, position, player string) (*stats.Filter, error) {
	f := &stats.Filter{
		Group:    group,
		Line:     line,
		Position: models.Position(position),
	}
	if player != "" {
		p, err := s.store.GetPlayer(player)
		if err != nil {
			return nil, err
		}
		f.PlayerID = p.ID
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if f.IsZero() {
		return nil, nil
	}
	return f, nil
}

// resolveDate accepts YYYY-MM-DD or any sheet date; empty means the latest date.
func resolveDate(snap *wellness.Snapshot, in string) (string, error) {
	in = strings.TrimSpace(in)
	if in == "" {
		latest, ok := snap.LatestDate()
		if !ok {
			return "", fmt.Errorf("no wellness data imported yet")
		}
		return latest, nil
	}
	if t, err := time.Parse(models.DateLayout, in); err == nil {
		return sheet.FormatDate(t), nil
	}
	if t, ok := sheet.ParseDate(in); ok {
		return sheet.FormatDate(t), nil
	}
	return "", fmt.Errorf("invalid date: %q", in)
}

func parseDay(in string) (time.Time, error) {
	if in == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(models.DateLayout, in); err == nil {
		return t, nil
	}
	if t, ok := sheet.ParseDate(in); ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", in)
}

func shortID(id fmt.Stringer) string {
	return id.String()[:8]
}
