// Package store persists burn-day entries across fetches. The pipeline
// itself keeps no history; this is the downstream caller that relies on
// stable entry ids for idempotent upserts.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const DefaultDBName = "burnday.db"

type DB struct {
	*sql.DB
	path string
}

// openDB opens a SQLite database at the given path.
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return sqlDB, nil
}

// Open opens or creates the history database at path, initializing the
// schema when missing.
func Open(path string) (*DB, error) {
	if path == "" {
		path = DefaultDBName
	}

	sqlDB, err := openDB(path)
	if err != nil {
		return nil, err
	}

	db := &DB{DB: sqlDB, path: path}
	if err := db.ensureSchemaExists(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return db, nil
}

// ensureSchemaExists initializes the schema unless it is already present.
func (db *DB) ensureSchemaExists() error {
	var tableName string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='entries'").Scan(&tableName)

	if err == sql.ErrNoRows {
		return db.InitSchema()
	}
	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}
	return nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// InitSchema initializes the database schema.
func (db *DB) InitSchema() error {
	_, err := db.Exec(schema)
	return err
}
