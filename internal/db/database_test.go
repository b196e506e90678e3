package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase(t *testing.T) {
	// Test with empty DSN
	database, err := NewDatabase("")
	assert.Error(t, err)
	assert.Nil(t, database)

	// Test with valid in-memory DSN
	database, err = NewDatabase(":memory:")
	require.NoError(t, err)
	require.NotNil(t, database)
	assert.NotNil(t, database.GetDB())
	assert.NoError(t, database.Close())
}

func TestNewDatabaseFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "payments.db")

	database, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer database.Close()

	// Schema creation is idempotent: reopening must not fail
	second, err := NewDatabase(dbPath)
	require.NoError(t, err)
	assert.NoError(t, second.Close())
}

func TestDatabaseClose(t *testing.T) {
	database, err := NewDatabase(":memory:")
	require.NoError(t, err)

	assert.NoError(t, database.Close())

	// Double close reports an error instead of panicking
	assert.Error(t, database.Close())

	var nilDB *Database
	assert.Error(t, nilDB.Close())
}

func TestSchemaTablesExist(t *testing.T) {
	sqlDB := setupTestDB(t)

	for _, table := range []string{"messages", "payments"} {
		var name string
		err := sqlDB.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name = ?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}
