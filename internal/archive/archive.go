// Package archive persists fetched call records to a local SQLite database
// so that usage trends survive individual runs.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Import modernc.org/sqlite as a blank import to register the driver
	_ "modernc.org/sqlite"
)

// Archive wraps the SQL database connection with application-specific methods.
type Archive struct {
	*sql.DB
	path string
}

// Open creates the archive database connection and initializes the schema.
func Open(path string) (*Archive, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create archive directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	if err := sqlDB.PingContext(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to archive: %w", err)
	}

	a := &Archive{
		DB:   sqlDB,
		path: path,
	}

	if err := a.configure(); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to configure archive: %w", err)
	}

	if err := a.createSchema(); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return a, nil
}

// Path returns the archive file path.
func (a *Archive) Path() string {
	return a.path
}

// configure sets up database pragmas.
func (a *Archive) configure() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}

	for _, pragma := range pragmas {
		if _, err := a.ExecContext(context.Background(), pragma); err != nil {
			return fmt.Errorf("failed to execute %s: %w", pragma, err)
		}
	}

	return nil
}

func (a *Archive) createSchema() error {
	if err := a.createRunsTable(); err != nil {
		return err
	}
	return a.createCallRecordsTable()
}

func (a *Archive) createRunsTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		window_start_ms INTEGER NOT NULL,
		window_end_ms INTEGER NOT NULL,
		total_calls INTEGER DEFAULT 0,
		total_credits INTEGER DEFAULT 0,
		skipped_records INTEGER DEFAULT 0
	);
	`
	_, err := a.ExecContext(context.Background(), query)
	return err
}

func (a *Archive) createCallRecordsTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS call_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER REFERENCES runs(id),
		record_id TEXT NOT NULL UNIQUE,
		call_type TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		credits INTEGER DEFAULT 0,
		voice_name TEXT,
		source TEXT,
		request_id TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_call_records_timestamp ON call_records(timestamp);
	CREATE INDEX IF NOT EXISTS idx_call_records_type ON call_records(call_type);
	`
	_, err := a.ExecContext(context.Background(), query)
	return err
}

// nullString converts an empty string to a NULL value.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
