// Package sqlitedb opens the local SQLite store and keeps its schema current.
package sqlitedb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// FileName is the database file created inside the data directory.
const FileName = "tasks.db"

// CurrentSchemaVersion is the latest schema version.
// Bump this when adding migrations.
const CurrentSchemaVersion = 1

// Init opens (creating if needed) baseDir/tasks.db and applies migrations.
func Init(baseDir string) (*sql.DB, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(baseDir, FileName)
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	_ = os.Chmod(dbPath, 0600)
	return db, nil
}

// migrate applies schema migrations based on user_version.
func migrate(db *sql.DB) error {
	version, err := GetUserVersion(db)
	if err != nil {
		return err
	}

	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS subtasks (
		  id           TEXT PRIMARY KEY,
		  task_id      TEXT NOT NULL,
		  title        TEXT NOT NULL,
		  completed    INTEGER NOT NULL DEFAULT 0,
		  sort_order   INTEGER NOT NULL DEFAULT 0,
		  created_at   INTEGER NOT NULL,
		  updated_at   INTEGER NOT NULL,
		  completed_at INTEGER
		);

		CREATE INDEX IF NOT EXISTS idx_subtasks_task_order
		ON subtasks(task_id, sort_order);

		CREATE TABLE IF NOT EXISTS recurring_task_completions (
		  id            TEXT PRIMARY KEY,
		  task_id       TEXT NOT NULL,
		  user_id       TEXT NOT NULL,
		  instance_date TEXT NOT NULL,
		  completed_at  INTEGER NOT NULL,
		  UNIQUE (task_id, user_id, instance_date)
		);
		`
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("migration 1 failed: %w", err)
		}
		if err := SetUserVersion(db, 1); err != nil {
			return err
		}
	}

	return nil
}

// GetUserVersion returns the current schema version (user_version pragma).
func GetUserVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version;").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get user_version: %w", err)
	}
	return version, nil
}

// SetUserVersion sets the schema version (user_version pragma).
func SetUserVersion(db *sql.DB, version int) error {
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version=%d", version)); err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}
