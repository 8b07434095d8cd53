// ABOUTME: Settings persistence for SQLite storage.
// ABOUTME: Stores the threshold set as one JSON document in a single-row table.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harperreed/wellness/internal/models"
)

// SaveSettings replaces the stored settings.
func (d *DB) SaveSettings(s models.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	_, err = d.db.Exec(`
		INSERT INTO settings (id, data) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data
	`, string(data))
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// LoadSettings returns the stored settings, or nil if none were saved.
// Fields missing from an older document keep their defaults.
func (d *DB) LoadSettings() (*models.Settings, error) {
	var data string
	err := d.db.QueryRow("SELECT data FROM settings WHERE id = 1").Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return decodeSettings([]byte(data))
}

func decodeSettings(data []byte) (*models.Settings, error) {
	s := models.DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	return &s, nil
}
