// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for exercises, programs, and per-program exercise settings.
package storage

// initSchema creates or updates the database schema.
//
// program_exercises carries the per-exercise settings that the mobile
// clients embed as a JSON blob; each entry keeps a stable id and its
// position inside the owning program. exercise_id is deliberately not a
// foreign key into exercises: programs tolerate dangling references.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS exercises (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		instructions TEXT NOT NULL DEFAULT '',
		muscle_groups TEXT NOT NULL DEFAULT '[]',
		is_favorite INTEGER NOT NULL DEFAULT 0,
		image_url TEXT,
		video_url TEXT,
		created_at DATETIME NOT NULL,
		is_custom INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS programs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image_data BLOB,
		use_preset_icon INTEGER NOT NULL DEFAULT 1,
		preset_icon_name TEXT,
		duration_minutes INTEGER,
		created_at DATETIME NOT NULL,
		last_modified_at DATETIME NOT NULL,
		completion_count INTEGER NOT NULL DEFAULT 0,
		last_completed_at DATETIME
	);

	CREATE TABLE IF NOT EXISTS program_exercises (
		id TEXT PRIMARY KEY,
		program_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		exercise_id TEXT NOT NULL,
		sets INTEGER NOT NULL DEFAULT 3,
		reps INTEGER NOT NULL DEFAULT 10,
		weight_kg REAL NOT NULL DEFAULT 0,
		rest_seconds INTEGER NOT NULL DEFAULT 60,
		notes TEXT NOT NULL DEFAULT '',
		FOREIGN KEY (program_id) REFERENCES programs(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_exercises_name ON exercises(name);
	CREATE INDEX IF NOT EXISTS idx_exercises_favorite ON exercises(is_favorite);
	CREATE INDEX IF NOT EXISTS idx_programs_name ON programs(name);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_program_exercises_position
		ON program_exercises(program_id, position);
	`

	_, err := d.db.Exec(schema)
	return err
}
