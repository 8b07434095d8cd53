// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for players, day entries, injuries and settings.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		position TEXT NOT NULL,
		status TEXT NOT NULL,
		target_weight REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS entries (
		date TEXT NOT NULL,
		player_name TEXT NOT NULL,
		weight REAL,
		sleep REAL,
		mental_load REAL,
		motivation REAL,
		hdc REAL,
		bdc REAL,
		remark TEXT,
		PRIMARY KEY (date, player_name)
	);

	CREATE TABLE IF NOT EXISTS injuries (
		id TEXT PRIMARY KEY,
		player_id TEXT NOT NULL,
		player_name TEXT NOT NULL,
		zone TEXT NOT NULL,
		grade INTEGER NOT NULL,
		circumstance TEXT NOT NULL,
		date TEXT NOT NULL,
		estimated_days INTEGER NOT NULL,
		estimated_return TEXT NOT NULL,
		notes TEXT,
		healed_at DATETIME,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		data TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_players_name ON players(name);
	CREATE INDEX IF NOT EXISTS idx_entries_player ON entries(player_name, date);
	CREATE INDEX IF NOT EXISTS idx_injuries_player ON injuries(player_id);
	`

	_, err := d.db.Exec(schema)
	return err
}
