// ABOUTME: Player CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for the squad roster.
package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/wellness/internal/models"
)

const upsertPlayer = `
	INSERT INTO players (id, name, position, status, target_weight, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		name = excluded.name,
		position = excluded.position,
		status = excluded.status,
		target_weight = excluded.target_weight
`

func playerArgs(p *models.Player) []any {
	return []any{
		p.ID.String(),
		p.Name,
		string(p.Position),
		string(p.Status),
		p.TargetWeight,
		p.CreatedAt.Format(time.RFC3339),
	}
}

// SavePlayer inserts or replaces a player.
func (d *DB) SavePlayer(p *models.Player) error {
	if _, err := d.db.Exec(upsertPlayer, playerArgs(p)...); err != nil {
		return fmt.Errorf("save player: %w", err)
	}
	return nil
}

// DeletePlayer removes a player. Entries that reference the name are kept.
func (d *DB) DeletePlayer(id uuid.UUID) error {
	result, err := d.db.Exec("DELETE FROM players WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete player %s: %w", id, ErrNotFound)
	}
	return nil
}

// ListPlayers returns every player sorted by name.
func (d *DB) ListPlayers() ([]*models.Player, error) {
	rows, err := d.db.Query(`
		SELECT id, name, position, status, target_weight, created_at
		FROM players
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var players []*models.Player
	for rows.Next() {
		var p models.Player
		var idStr, position, status, createdAt string

		if err := rows.Scan(&idStr, &p.Name, &position, &status, &p.TargetWeight, &createdAt); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}

		p.ID, _ = uuid.Parse(idStr)
		p.Position = models.Position(position)
		p.Status = models.Status(status)
		p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

		players = append(players, &p)
	}

	return players, rows.Err()
}
