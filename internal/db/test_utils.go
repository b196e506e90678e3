package db

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// setupTestDB creates an in-memory SQLite database with the real schema
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// One connection only: each sqlite :memory: connection is its own
	// database
	database.GetDB().SetMaxOpenConns(1)

	t.Cleanup(func() {
		database.Close()
	})

	return database.GetDB()
}
