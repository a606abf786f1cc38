// ABOUTME: In-memory Repository implementation.
// ABOUTME: Behaviorally equivalent to the SQLite store; used for tests and ephemeral runs.
package storage

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/models"
)

// MemoryStore keeps all records in process memory. It honors the same
// contracts as the SQLite store, including subscriptions, so it can
// stand in anywhere a Repository is accepted.
type MemoryStore struct {
	mu        sync.RWMutex
	exercises map[uuid.UUID]*models.Exercise
	programs  map[uuid.UUID]*models.WorkoutProgram
	hub       *watchHub
}

var _ Repository = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		exercises: make(map[uuid.UUID]*models.Exercise),
		programs:  make(map[uuid.UUID]*models.WorkoutProgram),
		hub:       newWatchHub(),
	}
}

// CreateExercise stores a new exercise, ErrConflict on id collision.
func (m *MemoryStore) CreateExercise(e *models.Exercise) error {
	if err := e.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	if _, ok := m.exercises[e.ID]; ok {
		m.mu.Unlock()
		return fmt.Errorf("create exercise %s: %w", e.ID, ErrConflict)
	}
	stored := *e
	m.exercises[e.ID] = &stored
	m.mu.Unlock()

	m.hub.broadcast()
	return nil
}

// GetExercise retrieves an exercise by id, or ErrNotFound.
func (m *MemoryStore) GetExercise(id uuid.UUID) (*models.Exercise, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.exercises[id]
	if !ok {
		return nil, fmt.Errorf("exercise %s: %w", id, ErrNotFound)
	}
	copied := *e
	return &copied, nil
}

// UpdateExercise replaces the stored record, ErrNotFound if missing.
func (m *MemoryStore) UpdateExercise(e *models.Exercise) error {
	if err := e.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	if _, ok := m.exercises[e.ID]; !ok {
		m.mu.Unlock()
		return fmt.Errorf("exercise %s: %w", e.ID, ErrNotFound)
	}
	stored := *e
	m.exercises[e.ID] = &stored
	m.mu.Unlock()

	m.hub.broadcast()
	return nil
}

// DeleteExercise removes an exercise; missing ids are a no-op.
func (m *MemoryStore) DeleteExercise(id uuid.UUID) error {
	m.mu.Lock()
	delete(m.exercises, id)
	m.mu.Unlock()

	m.hub.broadcast()
	return nil
}

// ListExercises retrieves exercises matching the filter.
func (m *MemoryStore) ListExercises(filter ExerciseFilter, sortBy Sort) ([]*models.Exercise, error) {
	m.mu.RLock()
	var result []*models.Exercise
	for _, e := range m.exercises {
		if matchExercise(e, filter) {
			copied := *e
			result = append(result, &copied)
		}
	}
	m.mu.RUnlock()

	sortExercises(result, sortBy)
	return result, nil
}

// CountExercises returns the number of exercises in the store.
func (m *MemoryStore) CountExercises() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.exercises), nil
}

// CreateProgram stores a new program, ErrConflict on id collision.
func (m *MemoryStore) CreateProgram(p *models.WorkoutProgram) error {
	if err := p.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	if _, ok := m.programs[p.ID]; ok {
		m.mu.Unlock()
		return fmt.Errorf("create program %s: %w", p.ID, ErrConflict)
	}
	m.programs[p.ID] = copyProgram(p)
	m.mu.Unlock()

	m.hub.broadcast()
	return nil
}

// GetProgram retrieves a program by id, or ErrNotFound.
func (m *MemoryStore) GetProgram(id uuid.UUID) (*models.WorkoutProgram, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.programs[id]
	if !ok {
		return nil, fmt.Errorf("program %s: %w", id, ErrNotFound)
	}
	return copyProgram(p), nil
}

// UpdateProgram replaces the stored record, ErrNotFound if missing.
func (m *MemoryStore) UpdateProgram(p *models.WorkoutProgram) error {
	if err := p.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	if _, ok := m.programs[p.ID]; !ok {
		m.mu.Unlock()
		return fmt.Errorf("program %s: %w", p.ID, ErrNotFound)
	}
	m.programs[p.ID] = copyProgram(p)
	m.mu.Unlock()

	m.hub.broadcast()
	return nil
}

// DeleteProgram removes a program; missing ids are a no-op.
func (m *MemoryStore) DeleteProgram(id uuid.UUID) error {
	m.mu.Lock()
	delete(m.programs, id)
	m.mu.Unlock()

	m.hub.broadcast()
	return nil
}

// ListPrograms retrieves programs matching the filter.
func (m *MemoryStore) ListPrograms(filter ProgramFilter, sortBy Sort) ([]*models.WorkoutProgram, error) {
	m.mu.RLock()
	var result []*models.WorkoutProgram
	for _, p := range m.programs {
		if filter.NameContains == "" ||
			strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.NameContains)) {
			result = append(result, copyProgram(p))
		}
	}
	m.mu.RUnlock()

	sortPrograms(result, sortBy)
	return result, nil
}

// MarkProgramCompleted bumps the completion counter without touching
// last-modified.
func (m *MemoryStore) MarkProgramCompleted(id uuid.UUID, at time.Time) error {
	m.mu.Lock()
	p, ok := m.programs[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("program %s: %w", id, ErrNotFound)
	}
	p.MarkCompleted(at)
	m.mu.Unlock()

	m.hub.broadcast()
	return nil
}

// ResolveExercises joins the id list, omitting dangling references.
func (m *MemoryStore) ResolveExercises(p *models.WorkoutProgram) ([]*models.Exercise, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var resolved []*models.Exercise
	for _, id := range p.ExerciseIDs {
		if e, ok := m.exercises[id]; ok {
			copied := *e
			resolved = append(resolved, &copied)
		}
	}
	return resolved, nil
}

// WatchExercises subscribes to a live view of an exercise query.
func (m *MemoryStore) WatchExercises(filter ExerciseFilter, sort Sort) (*ExerciseSubscription, error) {
	return m.hub.subscribeExercises(func() ([]*models.Exercise, error) {
		return m.ListExercises(filter, sort)
	})
}

// WatchPrograms subscribes to a live view of a program query.
func (m *MemoryStore) WatchPrograms(filter ProgramFilter, sort Sort) (*ProgramSubscription, error) {
	return m.hub.subscribePrograms(func() ([]*models.WorkoutProgram, error) {
		return m.ListPrograms(filter, sort)
	})
}

// Close releases nothing; present to satisfy Repository.
func (m *MemoryStore) Close() error {
	return nil
}

func matchExercise(e *models.Exercise, filter ExerciseFilter) bool {
	if filter.NameContains != "" &&
		!strings.Contains(strings.ToLower(e.Name), strings.ToLower(filter.NameContains)) {
		return false
	}
	if filter.MuscleGroup != nil {
		found := false
		for _, g := range e.MuscleGroups {
			if g == *filter.MuscleGroup {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.FavoritesOnly && !e.IsFavorite {
		return false
	}
	if filter.CustomOnly && !e.IsCustom {
		return false
	}
	return true
}

func sortExercises(exercises []*models.Exercise, by Sort) {
	sort.SliceStable(exercises, func(i, j int) bool {
		var less bool
		switch by.Field {
		case SortByCreatedAt:
			less = exercises[i].CreatedAt.Before(exercises[j].CreatedAt)
		default:
			less = strings.ToLower(exercises[i].Name) < strings.ToLower(exercises[j].Name)
		}
		if by.Desc {
			return !less
		}
		return less
	})
}

func sortPrograms(programs []*models.WorkoutProgram, by Sort) {
	sort.SliceStable(programs, func(i, j int) bool {
		var less bool
		switch by.Field {
		case SortByCreatedAt:
			less = programs[i].CreatedAt.Before(programs[j].CreatedAt)
		case SortByLastModified:
			less = programs[i].LastModifiedAt.Before(programs[j].LastModifiedAt)
		case SortByCompletions:
			less = programs[i].CompletionCount < programs[j].CompletionCount
		default:
			less = strings.ToLower(programs[i].Name) < strings.ToLower(programs[j].Name)
		}
		if by.Desc {
			return !less
		}
		return less
	})
}

// copyProgram deep-copies the slices so callers cannot mutate stored state.
func copyProgram(p *models.WorkoutProgram) *models.WorkoutProgram {
	copied := *p
	copied.ExerciseIDs = append([]uuid.UUID(nil), p.ExerciseIDs...)
	copied.Settings = append([]models.ExerciseSetting(nil), p.Settings...)
	copied.ImageData = append([]byte(nil), p.ImageData...)
	return &copied
}
