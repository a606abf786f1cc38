// ABOUTME: WorkoutProgram CRUD operations for SQLite storage.
// ABOUTME: Persists per-exercise settings in a child table keyed by program and position.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/models"
)

// CreateProgram stores a new program and its settings entries. The
// caller generates the id; a collision fails with ErrConflict.
func (d *DB) CreateProgram(p *models.WorkoutProgram) error {
	if err := p.Validate(); err != nil {
		return err
	}

	var exists int
	err := d.db.QueryRow("SELECT COUNT(1) FROM programs WHERE id = ?", p.ID.String()).Scan(&exists)
	if err != nil {
		return fmt.Errorf("create program: %w", err)
	}
	if exists > 0 {
		return fmt.Errorf("create program %s: %w", p.ID, ErrConflict)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("create program: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO programs (id, name, description, image_data, use_preset_icon,
			preset_icon_name, duration_minutes, created_at, last_modified_at,
			completion_count, last_completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.Exec(query,
		p.ID.String(),
		p.Name,
		p.Description,
		p.ImageData,
		p.UsePresetIcon,
		p.PresetIconName,
		p.DurationMinutes,
		p.CreatedAt.Format(time.RFC3339Nano),
		p.LastModifiedAt.Format(time.RFC3339Nano),
		p.CompletionCount,
		nullableTime(p.LastCompletedAt),
	)
	if err != nil {
		return fmt.Errorf("create program: %w", err)
	}

	if err := insertProgramExercises(tx, p); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create program: %w", err)
	}

	d.hub.broadcast()
	return nil
}

// GetProgram retrieves a program with its ordered settings, or ErrNotFound.
func (d *DB) GetProgram(id uuid.UUID) (*models.WorkoutProgram, error) {
	query := `
		SELECT id, name, description, image_data, use_preset_icon, preset_icon_name,
			duration_minutes, created_at, last_modified_at, completion_count, last_completed_at
		FROM programs
		WHERE id = ?
	`
	p, err := scanProgram(d.db.QueryRow(query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("program %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	if err := d.loadProgramExercises(p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProgram replaces the stored record and rewrites the full
// settings list, mirroring the save-whole-program semantics of the
// mobile clients. ErrNotFound if the id does not exist.
func (d *DB) UpdateProgram(p *models.WorkoutProgram) error {
	if err := p.Validate(); err != nil {
		return err
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("update program: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE programs
		SET name = ?, description = ?, image_data = ?, use_preset_icon = ?,
			preset_icon_name = ?, duration_minutes = ?, created_at = ?,
			last_modified_at = ?, completion_count = ?, last_completed_at = ?
		WHERE id = ?
	`
	result, err := tx.Exec(query,
		p.Name,
		p.Description,
		p.ImageData,
		p.UsePresetIcon,
		p.PresetIconName,
		p.DurationMinutes,
		p.CreatedAt.Format(time.RFC3339Nano),
		p.LastModifiedAt.Format(time.RFC3339Nano),
		p.CompletionCount,
		nullableTime(p.LastCompletedAt),
		p.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("update program: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update program: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("program %s: %w", p.ID, ErrNotFound)
	}

	if _, err := tx.Exec("DELETE FROM program_exercises WHERE program_id = ?", p.ID.String()); err != nil {
		return fmt.Errorf("update program: %w", err)
	}
	if err := insertProgramExercises(tx, p); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("update program: %w", err)
	}

	d.hub.broadcast()
	return nil
}

// DeleteProgram removes a program and its settings entries (cascade).
// Missing ids are a no-op; referenced exercises are untouched.
func (d *DB) DeleteProgram(id uuid.UUID) error {
	_, err := d.db.Exec("DELETE FROM programs WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("delete program: %w", err)
	}

	d.hub.broadcast()
	return nil
}

// ListPrograms retrieves programs matching the filter with their settings.
func (d *DB) ListPrograms(filter ProgramFilter, sort Sort) ([]*models.WorkoutProgram, error) {
	query := `
		SELECT id, name, description, image_data, use_preset_icon, preset_icon_name,
			duration_minutes, created_at, last_modified_at, completion_count, last_completed_at
		FROM programs
	`
	var args []interface{}
	if filter.NameContains != "" {
		query += " WHERE LOWER(name) LIKE '%' || LOWER(?) || '%'"
		args = append(args, filter.NameContains)
	}
	query += " ORDER BY " + programOrderClause(sort)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	defer rows.Close()

	var programs []*models.WorkoutProgram
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, p := range programs {
		if err := d.loadProgramExercises(p); err != nil {
			return nil, err
		}
	}
	return programs, nil
}

// MarkProgramCompleted bumps the completion counter and stamps the
// last-completed timestamp. last_modified_at is deliberately untouched.
func (d *DB) MarkProgramCompleted(id uuid.UUID, at time.Time) error {
	result, err := d.db.Exec(`
		UPDATE programs
		SET completion_count = completion_count + 1, last_completed_at = ?
		WHERE id = ?
	`, at.Format(time.RFC3339Nano), id.String())
	if err != nil {
		return fmt.Errorf("mark program completed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark program completed: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("program %s: %w", id, ErrNotFound)
	}

	d.hub.broadcast()
	return nil
}

// ResolveExercises joins the program's exercise-id list against the
// exercise table, preserving order and silently omitting dangling ids.
func (d *DB) ResolveExercises(p *models.WorkoutProgram) ([]*models.Exercise, error) {
	var resolved []*models.Exercise
	for _, id := range p.ExerciseIDs {
		e, err := d.GetExercise(id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		resolved = append(resolved, e)
	}
	return resolved, nil
}

// WatchPrograms subscribes to a live view of a program query.
func (d *DB) WatchPrograms(filter ProgramFilter, sort Sort) (*ProgramSubscription, error) {
	return d.hub.subscribePrograms(func() ([]*models.WorkoutProgram, error) {
		return d.ListPrograms(filter, sort)
	})
}

// insertProgramExercises writes the ordered settings list for a program.
func insertProgramExercises(tx *sql.Tx, p *models.WorkoutProgram) error {
	query := `
		INSERT INTO program_exercises (id, program_id, position, exercise_id,
			sets, reps, weight_kg, rest_seconds, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for i, s := range p.Settings {
		_, err := tx.Exec(query,
			s.ID.String(),
			p.ID.String(),
			i,
			s.ExerciseID.String(),
			s.Sets,
			s.Reps,
			s.WeightKg,
			s.RestSeconds,
			s.Notes,
		)
		if err != nil {
			return fmt.Errorf("insert program exercise: %w", err)
		}
	}
	return nil
}

// loadProgramExercises populates ExerciseIDs and Settings in stored order.
func (d *DB) loadProgramExercises(p *models.WorkoutProgram) error {
	rows, err := d.db.Query(`
		SELECT id, exercise_id, sets, reps, weight_kg, rest_seconds, notes
		FROM program_exercises
		WHERE program_id = ?
		ORDER BY position ASC
	`, p.ID.String())
	if err != nil {
		return fmt.Errorf("load program exercises: %w", err)
	}
	defer rows.Close()

	p.ExerciseIDs = nil
	p.Settings = nil
	for rows.Next() {
		var s models.ExerciseSetting
		var idStr, exIDStr string
		if err := rows.Scan(&idStr, &exIDStr, &s.Sets, &s.Reps, &s.WeightKg, &s.RestSeconds, &s.Notes); err != nil {
			return fmt.Errorf("scan program exercise: %w", err)
		}
		s.ID, _ = uuid.Parse(idStr)
		s.ExerciseID, _ = uuid.Parse(exIDStr)
		p.ExerciseIDs = append(p.ExerciseIDs, s.ExerciseID)
		p.Settings = append(p.Settings, s)
	}
	return rows.Err()
}

// programOrderClause maps a Sort to a safe ORDER BY clause.
func programOrderClause(sort Sort) string {
	column := "LOWER(name)"
	switch sort.Field {
	case SortByCreatedAt:
		column = "created_at"
	case SortByLastModified:
		column = "last_modified_at"
	case SortByCompletions:
		column = "completion_count"
	case SortByName, "":
	default:
	}
	if sort.Desc {
		return column + " DESC"
	}
	return column + " ASC"
}

// scanProgram scans a single row into a WorkoutProgram (without settings).
func scanProgram(row rowScanner) (*models.WorkoutProgram, error) {
	var p models.WorkoutProgram
	var idStr, createdAt, lastModified string
	var presetIcon sql.NullString
	var duration sql.NullInt64
	var lastCompleted sql.NullString

	err := row.Scan(&idStr, &p.Name, &p.Description, &p.ImageData, &p.UsePresetIcon,
		&presetIcon, &duration, &createdAt, &lastModified, &p.CompletionCount, &lastCompleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan program: %w", err)
	}

	p.ID, _ = uuid.Parse(idStr)
	p.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	p.LastModifiedAt, _ = time.Parse(time.RFC3339Nano, lastModified)
	if presetIcon.Valid {
		p.PresetIconName = &presetIcon.String
	}
	if duration.Valid {
		minutes := int(duration.Int64)
		p.DurationMinutes = &minutes
	}
	if lastCompleted.Valid {
		if t, err := time.Parse(time.RFC3339Nano, lastCompleted.String); err == nil {
			p.LastCompletedAt = &t
		}
	}

	return &p, nil
}

// nullableTime formats an optional timestamp for storage.
func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339Nano)
}
