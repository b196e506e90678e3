package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database owns the single connection pool shared by the repositories.
type Database struct {
	db *sql.DB
}

// NewDatabase opens the database at the given DSN and ensures the schema
// exists.
func NewDatabase(dsn string) (*Database, error) {
	if dsn == "" {
		return nil, errors.New("database DSN is required")
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// Verify we can actually connect to the database
	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("ping failed: %w, close failed: %v", err, closeErr)
		}
		return nil, err
	}

	if err := createTables(db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("create tables failed: %w, close failed: %v", err, closeErr)
		}
		return nil, err
	}

	return &Database{db: db}, nil
}

// createTables creates the messages and payments tables. The partial unique
// index on messages.txid and UNIQUE(txid) on payments enforce the one-row-
// per-transaction invariant at the storage layer.
func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			raw_text TEXT NOT NULL,
			txid TEXT,
			amount TEXT,
			sender_name TEXT,
			timestamp TEXT,
			sender_phone_digits TEXT,
			ml_confidence REAL NOT NULL DEFAULT 0,
			payment_status TEXT NOT NULL DEFAULT 'unknown',
			is_payment_sms INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);

		CREATE UNIQUE INDEX IF NOT EXISTS idx_messages_txid
			ON messages(txid) WHERE txid IS NOT NULL AND txid <> '';

		CREATE TABLE IF NOT EXISTS payments (
			id TEXT PRIMARY KEY,
			txid TEXT NOT NULL UNIQUE,
			client_name TEXT NOT NULL,
			client_phone TEXT NOT NULL,
			verified_amount INTEGER NOT NULL,
			verification_status TEXT NOT NULL DEFAULT 'approved',
			created_at INTEGER NOT NULL
		);
	`)
	return err
}

// GetDB exposes the underlying pool to the repositories.
func (d *Database) GetDB() *sql.DB {
	return d.db
}

func (d *Database) Close() error {
	if d == nil {
		return errors.New("database is nil")
	}

	if d.db == nil {
		return errors.New("database already closed")
	}

	err := d.db.Close()
	d.db = nil
	return err
}
