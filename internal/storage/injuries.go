// ABOUTME: Injury CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for injuries.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/wellness/internal/models"
)

// SaveInjury inserts or replaces an injury.
func (d *DB) SaveInjury(i *models.Injury) error {
	var healedAt sql.NullString
	if i.HealedAt != nil {
		healedAt = sql.NullString{String: i.HealedAt.Format(time.RFC3339), Valid: true}
	}

	query := `
		INSERT INTO injuries (id, player_id, player_name, zone, grade, circumstance, date,
			estimated_days, estimated_return, notes, healed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			player_id = excluded.player_id,
			player_name = excluded.player_name,
			zone = excluded.zone,
			grade = excluded.grade,
			circumstance = excluded.circumstance,
			date = excluded.date,
			estimated_days = excluded.estimated_days,
			estimated_return = excluded.estimated_return,
			notes = excluded.notes,
			healed_at = excluded.healed_at
	`
	_, err := d.db.Exec(query,
		i.ID.String(),
		i.PlayerID.String(),
		i.PlayerName,
		string(i.Zone),
		i.Grade,
		string(i.Circumstance),
		i.Date.Format(models.DateLayout),
		i.EstimatedDays,
		i.EstimatedReturn.Format(models.DateLayout),
		nullString(i.Notes),
		healedAt,
		i.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save injury: %w", err)
	}
	return nil
}

// DeleteInjury removes an injury by ID.
func (d *DB) DeleteInjury(id uuid.UUID) error {
	result, err := d.db.Exec("DELETE FROM injuries WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("delete injury: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete injury: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete injury %s: %w", id, ErrNotFound)
	}
	return nil
}

// ListInjuries returns every injury, most recent first.
func (d *DB) ListInjuries() ([]*models.Injury, error) {
	rows, err := d.db.Query(`
		SELECT id, player_id, player_name, zone, grade, circumstance, date,
			estimated_days, estimated_return, notes, healed_at, created_at
		FROM injuries
		ORDER BY date DESC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list injuries: %w", err)
	}
	defer rows.Close()

	var injuries []*models.Injury
	for rows.Next() {
		var i models.Injury
		var idStr, playerID, zone, circumstance, date, estimatedReturn, createdAt string
		var notes, healedAt sql.NullString

		err := rows.Scan(&idStr, &playerID, &i.PlayerName, &zone, &i.Grade, &circumstance, &date,
			&i.EstimatedDays, &estimatedReturn, &notes, &healedAt, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan injury: %w", err)
		}

		i.ID, _ = uuid.Parse(idStr)
		i.PlayerID, _ = uuid.Parse(playerID)
		i.Zone = models.InjuryZone(zone)
		i.Circumstance = models.Circumstance(circumstance)
		i.Date, _ = time.Parse(models.DateLayout, date)
		i.EstimatedReturn, _ = time.Parse(models.DateLayout, estimatedReturn)
		i.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if notes.Valid {
			i.Notes = notes.String
		}
		if healedAt.Valid {
			t, err := time.Parse(time.RFC3339, healedAt.String)
			if err == nil {
				i.HealedAt = &t
			}
		}

		injuries = append(injuries, &i)
	}

	return injuries, rows.Err()
}
