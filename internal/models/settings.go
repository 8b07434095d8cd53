// ABOUTME: Alerting and Z-score thresholds with defaults and validation.
// ABOUTME: Settings are user-editable and persisted with the squad data.
package models

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is returned when a threshold is out of bounds.
var ErrInvalidSettings = errors.New("invalid settings")

// DefaultZScoreMinHistory is the minimum number of historical day values a
// Z-score needs before it is reported.
const DefaultZScoreMinHistory = 5

// Settings controls alerting and the Z-score trend.
type Settings struct {
	LowValueThreshold  float64 `json:"low_value_threshold"`
	VariationThreshold float64 `json:"variation_threshold"`
	WeightThreshold    float64 `json:"weight_threshold"`
	ZScoreDays         int     `json:"zscore_days"`
	ZScoreAlert        float64 `json:"zscore_alert"`
	ZScoreWarning      float64 `json:"zscore_warning"`
	ZScoreMinHistory   int     `json:"zscore_min_history"`
}

// DefaultSettings returns the stock thresholds.
func DefaultSettings() Settings {
	return Settings{
		LowValueThreshold:  2,
		VariationThreshold: 1.5,
		WeightThreshold:    2.0,
		ZScoreDays:         14,
		ZScoreAlert:        -1.5,
		ZScoreWarning:      -1.0,
		ZScoreMinHistory:   DefaultZScoreMinHistory,
	}
}

// Validate checks every threshold against its allowed range.
func (s Settings) Validate() error {
	switch {
	case s.LowValueThreshold < MetricMin || s.LowValueThreshold > MetricMax:
		return fmt.Errorf("%w: low_value_threshold must be in [1,5], got %g", ErrInvalidSettings, s.LowValueThreshold)
	case s.VariationThreshold < 0.5 || s.VariationThreshold > 4:
		return fmt.Errorf("%w: variation_threshold must be in [0.5,4], got %g", ErrInvalidSettings, s.VariationThreshold)
	case s.WeightThreshold < 0.5 || s.WeightThreshold > 10:
		return fmt.Errorf("%w: weight_threshold must be in [0.5,10], got %g", ErrInvalidSettings, s.WeightThreshold)
	case s.ZScoreDays < 7 || s.ZScoreDays > 60:
		return fmt.Errorf("%w: zscore_days must be in [7,60], got %d", ErrInvalidSettings, s.ZScoreDays)
	case s.ZScoreAlert < -3 || s.ZScoreAlert > 0:
		return fmt.Errorf("%w: zscore_alert must be in [-3,0], got %g", ErrInvalidSettings, s.ZScoreAlert)
	case s.ZScoreWarning < -3 || s.ZScoreWarning > 0:
		return fmt.Errorf("%w: zscore_warning must be in [-3,0], got %g", ErrInvalidSettings, s.ZScoreWarning)
	case s.ZScoreAlert > s.ZScoreWarning:
		return fmt.Errorf("%w: zscore_alert (%g) must not exceed zscore_warning (%g)", ErrInvalidSettings, s.ZScoreAlert, s.ZScoreWarning)
	case s.ZScoreMinHistory < 2 || s.ZScoreMinHistory > s.ZScoreDays:
		return fmt.Errorf("%w: zscore_min_history must be in [2,zscore_days], got %d", ErrInvalidSettings, s.ZScoreMinHistory)
	}
	return nil
}

// SettingsUpdate carries optional changes to Settings.
type SettingsUpdate struct {
	LowValueThreshold  *float64 `json:"low_value_threshold,omitempty"`
	VariationThreshold *float64 `json:"variation_threshold,omitempty"`
	WeightThreshold    *float64 `json:"weight_threshold,omitempty"`
	ZScoreDays         *int     `json:"zscore_days,omitempty"`
	ZScoreAlert        *float64 `json:"zscore_alert,omitempty"`
	ZScoreWarning      *float64 `json:"zscore_warning,omitempty"`
	ZScoreMinHistory   *int     `json:"zscore_min_history,omitempty"`
}

// Apply returns s with the non-nil fields of u applied.
func (s Settings) Apply(u SettingsUpdate) Settings {
	if u.LowValueThreshold != nil {
		s.LowValueThreshold = *u.LowValueThreshold
	}
	if u.VariationThreshold != nil {
		s.VariationThreshold = *u.VariationThreshold
	}
	if u.WeightThreshold != nil {
		s.WeightThreshold = *u.WeightThreshold
	}
	if u.ZScoreDays != nil {
		s.ZScoreDays = *u.ZScoreDays
	}
	if u.ZScoreAlert != nil {
		s.ZScoreAlert = *u.ZScoreAlert
	}
	if u.ZScoreWarning != nil {
		s.ZScoreWarning = *u.ZScoreWarning
	}
	if u.ZScoreMinHistory != nil {
		s.ZScoreMinHistory = *u.ZScoreMinHistory
	}
	return s
}
