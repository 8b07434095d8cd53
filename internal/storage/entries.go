// ABOUTME: Wellness entry storage for SQLite.
// ABOUTME: Entries, and the players an import creates, are upserted in one transaction.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/wellness/internal/models"
)

// SaveEntries upserts entries by (date, player name) atomically.
func (d *DB) SaveEntries(entries []*models.WellnessEntry) error {
	return d.SaveImport(nil, entries)
}

// SaveImport writes players and entries in one transaction.
func (d *DB) SaveImport(players []*models.Player, entries []*models.WellnessEntry) error {
	if len(players) == 0 && len(entries) == 0 {
		return nil
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save import: %w", err)
	}

	for _, p := range players {
		if _, err := tx.Exec(upsertPlayer, playerArgs(p)...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("save player %s: %w", p.Name, err)
		}
	}
	if err := saveEntriesTx(tx, entries); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func saveEntriesTx(tx *sql.Tx, entries []*models.WellnessEntry) error {
	if len(entries) == 0 {
		return nil
	}

	stmt, err := tx.Prepare(`
		INSERT INTO entries (date, player_name, weight, sleep, mental_load, motivation, hdc, bdc, remark)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date, player_name) DO UPDATE SET
			weight = excluded.weight,
			sleep = excluded.sleep,
			mental_load = excluded.mental_load,
			motivation = excluded.motivation,
			hdc = excluded.hdc,
			bdc = excluded.bdc,
			remark = excluded.remark
	`)
	if err != nil {
		return fmt.Errorf("prepare save entries: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		_, err := stmt.Exec(
			e.Date,
			e.Name,
			nullFloat(e.Weight),
			nullFloat(e.Sleep),
			nullFloat(e.MentalLoad),
			nullFloat(e.Motivation),
			nullFloat(e.HDC),
			nullFloat(e.BDC),
			nullString(e.Remark),
		)
		if err != nil {
			return fmt.Errorf("save entry %s/%s: %w", e.Date, e.Name, err)
		}
	}
	return nil
}

// ListEntries returns every entry ordered by date then name.
func (d *DB) ListEntries() ([]*models.WellnessEntry, error) {
	rows, err := d.db.Query(`
		SELECT date, player_name, weight, sleep, mental_load, motivation, hdc, bdc, remark
		FROM entries
		ORDER BY date, player_name
	`)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.WellnessEntry
	for rows.Next() {
		var e models.WellnessEntry
		var weight, sleep, mental, motivation, hdc, bdc sql.NullFloat64
		var remark sql.NullString

		err := rows.Scan(&e.Date, &e.Name, &weight, &sleep, &mental, &motivation, &hdc, &bdc, &remark)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}

		e.Weight = floatPtr(weight)
		e.Sleep = floatPtr(sleep)
		e.MentalLoad = floatPtr(mental)
		e.Motivation = floatPtr(motivation)
		e.HDC = floatPtr(hdc)
		e.BDC = floatPtr(bdc)
		if remark.Valid {
			e.Remark = remark.String
		}

		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
