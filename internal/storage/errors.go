// ABOUTME: Sentinel errors for the local store.
// ABOUTME: Callers distinguish conditions with errors.Is.
package storage

import "errors"

var (
	// ErrNotFound is returned when a get or update targets a missing record.
	// Deletes are tolerant and never return it.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an insert collides with an existing identifier.
	ErrConflict = errors.New("record already exists")

	// ErrCorrupt marks a persisted payload that failed to deserialize.
	// Readers treat corrupt embedded payloads as defaults where the
	// contract tolerates it; this sentinel surfaces only where it cannot.
	ErrCorrupt = errors.New("corrupt payload")
)
