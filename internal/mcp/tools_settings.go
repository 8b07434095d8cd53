// ABOUTME: MCP tools for alerting and Z-score thresholds.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/wellness/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type emptyInput struct{}

type updateSettingsInput struct {
	LowValueThreshold  *float64 `json:"low_value_threshold,omitempty" jsonschema:"Metric value at or below which a low-value alert fires (1-5)"`
	VariationThreshold *float64 `json:"variation_threshold,omitempty" jsonschema:"Drop in a player's average that fires a variation alert (0.5-4)"`
	WeightThreshold    *float64 `json:"weight_threshold,omitempty" jsonschema:"Allowed kg deviation from target weight (0.5-10)"`
	ZScoreDays         *int     `json:"zscore_days,omitempty" jsonschema:"Days of history behind each Z-score (7-60)"`
	ZScoreAlert        *float64 `json:"zscore_alert,omitempty" jsonschema:"Z-score below which a day is critical (-3 to 0)"`
	ZScoreWarning      *float64 `json:"zscore_warning,omitempty" jsonschema:"Z-score below which a day is a warning (-3 to 0)"`
	ZScoreMinHistory   *int     `json:"zscore_min_history,omitempty" jsonschema:"Minimum history points before a Z-score is reported"`
	Reset              bool     `json:"reset,omitempty" jsonschema:"Restore every threshold to its default"`
}

func (s *Server) handleGetSettings(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, models.Settings, error) {
	return nil, s.store.Settings(), nil
}

func (s *Server) handleUpdateSettings(ctx context.Context, req *mcp.CallToolRequest, input updateSettingsInput) (*mcp.CallToolResult, models.Settings, error) {
	if input.Reset {
		settings, err := s.store.ResetSettings()
		if err != nil {
			return nil, models.Settings{}, fmt.Errorf("failed to reset settings: %w", err)
		}
		return nil, settings, nil
	}

	settings, err := s.store.UpdateSettings(models.SettingsUpdate{
		LowValueThreshold:  input.LowValueThreshold,
		VariationThreshold: input.VariationThreshold,
		WeightThreshold:    input.WeightThreshold,
		ZScoreDays:         input.ZScoreDays,
		ZScoreAlert:        input.ZScoreAlert,
		ZScoreWarning:      input.ZScoreWarning,
		ZScoreMinHistory:   input.ZScoreMinHistory,
	})
	if err != nil {
		return nil, models.Settings{}, fmt.Errorf("failed to update settings: %w", err)
	}
	return nil, settings, nil
}
