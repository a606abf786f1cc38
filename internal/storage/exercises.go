// ABOUTME: Exercise CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for the exercise library.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/models"
)

// CreateExercise stores a new exercise. The caller generates the id;
// inserting an id that already exists fails with ErrConflict.
func (d *DB) CreateExercise(e *models.Exercise) error {
	if err := e.Validate(); err != nil {
		return err
	}

	var exists int
	err := d.db.QueryRow("SELECT COUNT(1) FROM exercises WHERE id = ?", e.ID.String()).Scan(&exists)
	if err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}
	if exists > 0 {
		return fmt.Errorf("create exercise %s: %w", e.ID, ErrConflict)
	}

	groups, err := json.Marshal(models.MuscleGroupTags(e.MuscleGroups))
	if err != nil {
		return fmt.Errorf("encode muscle groups: %w", err)
	}

	query := `
		INSERT INTO exercises (id, name, description, instructions, muscle_groups,
			is_favorite, image_url, video_url, created_at, is_custom)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		e.ID.String(),
		e.Name,
		e.Description,
		e.Instructions,
		string(groups),
		e.IsFavorite,
		e.ImageURL,
		e.VideoURL,
		e.CreatedAt.Format(time.RFC3339Nano),
		e.IsCustom,
	)
	if err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}

	d.hub.broadcast()
	return nil
}

// GetExercise retrieves an exercise by id, or ErrNotFound.
func (d *DB) GetExercise(id uuid.UUID) (*models.Exercise, error) {
	query := `
		SELECT id, name, description, instructions, muscle_groups,
			is_favorite, image_url, video_url, created_at, is_custom
		FROM exercises
		WHERE id = ?
	`
	e, err := scanExercise(d.db.QueryRow(query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("exercise %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

// UpdateExercise replaces the stored record wholesale. ErrNotFound if
// the id does not exist.
func (d *DB) UpdateExercise(e *models.Exercise) error {
	if err := e.Validate(); err != nil {
		return err
	}

	groups, err := json.Marshal(models.MuscleGroupTags(e.MuscleGroups))
	if err != nil {
		return fmt.Errorf("encode muscle groups: %w", err)
	}

	query := `
		UPDATE exercises
		SET name = ?, description = ?, instructions = ?, muscle_groups = ?,
			is_favorite = ?, image_url = ?, video_url = ?, created_at = ?, is_custom = ?
		WHERE id = ?
	`
	result, err := d.db.Exec(query,
		e.Name,
		e.Description,
		e.Instructions,
		string(groups),
		e.IsFavorite,
		e.ImageURL,
		e.VideoURL,
		e.CreatedAt.Format(time.RFC3339Nano),
		e.IsCustom,
		e.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("exercise %s: %w", e.ID, ErrNotFound)
	}

	d.hub.broadcast()
	return nil
}

// DeleteExercise removes an exercise. Missing ids are a no-op, and
// programs referencing the id keep their dangling reference.
func (d *DB) DeleteExercise(id uuid.UUID) error {
	_, err := d.db.Exec("DELETE FROM exercises WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}

	d.hub.broadcast()
	return nil
}

// ListExercises retrieves exercises matching the filter, sorted by a
// single field (name ascending by default).
func (d *DB) ListExercises(filter ExerciseFilter, sort Sort) ([]*models.Exercise, error) {
	query := `
		SELECT id, name, description, instructions, muscle_groups,
			is_favorite, image_url, video_url, created_at, is_custom
		FROM exercises
	`
	var conds []string
	var args []interface{}

	if filter.NameContains != "" {
		conds = append(conds, "LOWER(name) LIKE '%' || LOWER(?) || '%'")
		args = append(args, filter.NameContains)
	}
	if filter.MuscleGroup != nil {
		// muscle_groups holds a JSON array of tags; match the quoted tag.
		conds = append(conds, "muscle_groups LIKE '%' || ? || '%'")
		args = append(args, fmt.Sprintf("%q", string(*filter.MuscleGroup)))
	}
	if filter.FavoritesOnly {
		conds = append(conds, "is_favorite = 1")
	}
	if filter.CustomOnly {
		conds = append(conds, "is_custom = 1")
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY " + exerciseOrderClause(sort)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*models.Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

// CountExercises returns the number of exercises in the store.
func (d *DB) CountExercises() (int, error) {
	var count int
	if err := d.db.QueryRow("SELECT COUNT(1) FROM exercises").Scan(&count); err != nil {
		return 0, fmt.Errorf("count exercises: %w", err)
	}
	return count, nil
}

// WatchExercises subscribes to a live view of an exercise query.
func (d *DB) WatchExercises(filter ExerciseFilter, sort Sort) (*ExerciseSubscription, error) {
	return d.hub.subscribeExercises(func() ([]*models.Exercise, error) {
		return d.ListExercises(filter, sort)
	})
}

// exerciseOrderClause maps a Sort to a safe ORDER BY clause.
func exerciseOrderClause(sort Sort) string {
	column := "LOWER(name)"
	switch sort.Field {
	case SortByCreatedAt:
		column = "created_at"
	case SortByName, "":
	default:
	}
	if sort.Desc {
		return column + " DESC"
	}
	return column + " ASC"
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanExercise scans a single row into an Exercise struct. A corrupt
// muscle_groups payload decodes to an empty tag set rather than failing
// the read.
func scanExercise(row rowScanner) (*models.Exercise, error) {
	var e models.Exercise
	var idStr, groupsRaw, createdAt string
	var imageURL, videoURL sql.NullString

	err := row.Scan(&idStr, &e.Name, &e.Description, &e.Instructions, &groupsRaw,
		&e.IsFavorite, &imageURL, &videoURL, &createdAt, &e.IsCustom)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan exercise: %w", err)
	}

	e.ID, _ = uuid.Parse(idStr)
	e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)

	var tags []string
	if err := json.Unmarshal([]byte(groupsRaw), &tags); err == nil {
		e.MuscleGroups = models.ParseMuscleGroups(tags)
	}
	if imageURL.Valid {
		e.ImageURL = &imageURL.String
	}
	if videoURL.Valid {
		e.VideoURL = &videoURL.String
	}

	return &e, nil
}
