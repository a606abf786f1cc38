// ABOUTME: Live query subscriptions for the local store.
// ABOUTME: Redelivers full snapshots after every mutation, in mutation order.
package storage

import (
	"sync"

	"github.com/harperreed/fittrack/internal/models"
)

// Snapshot channels are buffered; a consumer that falls this far behind
// starts losing intermediate snapshots (the latest always arrives).
const subscriptionBuffer = 16

// ExerciseSubscription is a live view of an exercise query.
type ExerciseSubscription struct {
	// Updates receives the current snapshot on subscribe and a fresh
	// snapshot after every store mutation. Closed by Cancel.
	Updates <-chan []*models.Exercise

	mu     sync.Mutex
	closed bool
	ch     chan []*models.Exercise
	query  func() ([]*models.Exercise, error)
	hub    *watchHub
}

func (s *ExerciseSubscription) send(snapshot []*models.Exercise) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- snapshot:
	default:
		// Buffer full: evict the oldest queued snapshot so the
		// newest state stays available.
		select {
		case <-s.ch:
		default:
		}
		select {
		case s.ch <- snapshot:
		default:
		}
	}
}

// Cancel stops delivery, closes Updates, and releases the subscription.
func (s *ExerciseSubscription) Cancel() {
	s.hub.removeExercise(s)
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// ProgramSubscription is a live view of a program query.
type ProgramSubscription struct {
	Updates <-chan []*models.WorkoutProgram

	mu     sync.Mutex
	closed bool
	ch     chan []*models.WorkoutProgram
	query  func() ([]*models.WorkoutProgram, error)
	hub    *watchHub
}

func (s *ProgramSubscription) send(snapshot []*models.WorkoutProgram) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- snapshot:
	default:
		select {
		case <-s.ch:
		default:
		}
		select {
		case s.ch <- snapshot:
		default:
		}
	}
}

// Cancel stops delivery, closes Updates, and releases the subscription.
func (s *ProgramSubscription) Cancel() {
	s.hub.removeProgram(s)
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// watchHub fans mutations out to active subscriptions. Both store
// implementations embed one and call broadcast after each mutation.
// Broadcast runs on the mutating goroutine, so snapshots go out in the
// same order the mutations happened.
type watchHub struct {
	mu       sync.Mutex
	exercise []*ExerciseSubscription
	program  []*ProgramSubscription
}

func newWatchHub() *watchHub {
	return &watchHub{}
}

func (h *watchHub) subscribeExercises(query func() ([]*models.Exercise, error)) (*ExerciseSubscription, error) {
	snapshot, err := query()
	if err != nil {
		return nil, err
	}

	ch := make(chan []*models.Exercise, subscriptionBuffer)
	sub := &ExerciseSubscription{Updates: ch, ch: ch, query: query, hub: h}

	h.mu.Lock()
	h.exercise = append(h.exercise, sub)
	h.mu.Unlock()

	sub.send(snapshot)
	return sub, nil
}

func (h *watchHub) subscribePrograms(query func() ([]*models.WorkoutProgram, error)) (*ProgramSubscription, error) {
	snapshot, err := query()
	if err != nil {
		return nil, err
	}

	ch := make(chan []*models.WorkoutProgram, subscriptionBuffer)
	sub := &ProgramSubscription{Updates: ch, ch: ch, query: query, hub: h}

	h.mu.Lock()
	h.program = append(h.program, sub)
	h.mu.Unlock()

	sub.send(snapshot)
	return sub, nil
}

func (h *watchHub) removeExercise(sub *ExerciseSubscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, s := range h.exercise {
		if s == sub {
			h.exercise = append(h.exercise[:i], h.exercise[i+1:]...)
			return
		}
	}
}

func (h *watchHub) removeProgram(sub *ProgramSubscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, s := range h.program {
		if s == sub {
			h.program = append(h.program[:i], h.program[i+1:]...)
			return
		}
	}
}

// broadcast re-runs every active query and pushes fresh snapshots.
// Query failures drop that delivery; the next mutation tries again.
func (h *watchHub) broadcast() {
	h.mu.Lock()
	exercise := make([]*ExerciseSubscription, len(h.exercise))
	copy(exercise, h.exercise)
	program := make([]*ProgramSubscription, len(h.program))
	copy(program, h.program)
	h.mu.Unlock()

	for _, sub := range exercise {
		if snapshot, err := sub.query(); err == nil {
			sub.send(snapshot)
		}
	}
	for _, sub := range program {
		if snapshot, err := sub.query(); err == nil {
			sub.send(snapshot)
		}
	}
}
