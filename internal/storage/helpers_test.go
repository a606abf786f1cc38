// ABOUTME: Shared test helpers for the storage package.
// ABOUTME: Opens throwaway SQLite databases under t.TempDir.
package storage

import (
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "fittrack.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return db
}
