// ABOUTME: Threshold settings on the wellness store.
// ABOUTME: Updates are validated before they are persisted.
package wellness

import (
	"fmt"

	"github.com/harperreed/wellness/internal/models"
)

// Settings returns the current thresholds.
func (s *Store) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings applies and validates u.
func (s *Store) UpdateSettings(u models.SettingsUpdate) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings.Apply(u)
	if err := next.Validate(); err != nil {
		return s.settings, err
	}
	if err := s.saveSettings(next); err != nil {
		return s.settings, err
	}
	s.settings = next
	return next, nil
}

// ResetSettings restores the default thresholds.
func (s *Store) ResetSettings() (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	def := models.DefaultSettings()
	if err := s.saveSettings(def); err != nil {
		return s.settings, err
	}
	s.settings = def
	return def, nil
}

func (s *Store) saveSettings(settings models.Settings) error {
	if s.repo == nil {
		return nil
	}
	if err := s.repo.SaveSettings(settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
