// ABOUTME: Tests for Settings defaults, validation, and partial updates.
// ABOUTME: Checks each threshold bound and the alert/warning ordering.
package models

import (
	"errors"
	"testing"
)

func TestDefaultSettingsValid(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
	if s.ZScoreMinHistory != 5 {
		t.Errorf("ZScoreMinHistory = %d, want 5", s.ZScoreMinHistory)
	}
	if s.ZScoreDays != 14 {
		t.Errorf("ZScoreDays = %d, want 14", s.ZScoreDays)
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"low below range", func(s *Settings) { s.LowValueThreshold = 0 }},
		{"low above range", func(s *Settings) { s.LowValueThreshold = 6 }},
		{"variation too small", func(s *Settings) { s.VariationThreshold = 0.1 }},
		{"weight too large", func(s *Settings) { s.WeightThreshold = 12 }},
		{"zscore days too small", func(s *Settings) { s.ZScoreDays = 3 }},
		{"alert positive", func(s *Settings) { s.ZScoreAlert = 0.5 }},
		{"warning below range", func(s *Settings) { s.ZScoreWarning = -4 }},
		{"alert above warning", func(s *Settings) { s.ZScoreAlert = -0.5; s.ZScoreWarning = -1 }},
		{"min history too small", func(s *Settings) { s.ZScoreMinHistory = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			if err := s.Validate(); !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Validate() = %v, want ErrInvalidSettings", err)
			}
		})
	}
}

func TestSettingsApply(t *testing.T) {
	low := 3.0
	days := 21
	s := DefaultSettings().Apply(SettingsUpdate{LowValueThreshold: &low, ZScoreDays: &days})

	if s.LowValueThreshold != 3 {
		t.Errorf("LowValueThreshold = %f, want 3", s.LowValueThreshold)
	}
	if s.ZScoreDays != 21 {
		t.Errorf("ZScoreDays = %d, want 21", s.ZScoreDays)
	}
	if s.WeightThreshold != 2.0 {
		t.Errorf("WeightThreshold changed to %f", s.WeightThreshold)
	}
}
