// Copyright © 2025 termkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/histstore.go
// Summary: Persistent storage for submitted input history.
//
// The widget itself is purely in-memory; hosts that want shell-style
// history across sessions attach a HistoryStore via WithHistoryStore.

package term

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// HistoryStore persists submitted input lines.
type HistoryStore interface {
	// Append records one submitted line.
	Append(text string) error

	// Recent returns up to limit entries, oldest first, suitable for
	// seeding Editor.LoadHistory.
	Recent(limit int) ([]string, error)

	// Close releases the underlying resources.
	Close() error
}

const historySchema = `
CREATE TABLE IF NOT EXISTS history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    submitted_at INTEGER NOT NULL,  -- UnixNano
    content TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_history_submitted_at ON history(submitted_at);
`

// SQLiteHistoryStore implements HistoryStore on a SQLite database file.
// It follows the widget's single-caller model: calls are synchronous and
// not serialized internally.
type SQLiteHistoryStore struct {
	db *sql.DB
}

// OpenHistoryStore opens (creating if needed) the history database at
// dbPath. Parent directories are created as required.
func OpenHistoryStore(dbPath string) (*SQLiteHistoryStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &SQLiteHistoryStore{db: db}, nil
}

// Append records one submitted line with the current timestamp.
func (s *SQLiteHistoryStore) Append(text string) error {
	_, err := s.db.Exec(
		"INSERT INTO history (submitted_at, content) VALUES (?, ?)",
		time.Now().UnixNano(), text,
	)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, oldest first.
func (s *SQLiteHistoryStore) Recent(limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.Query(
		"SELECT content FROM (SELECT id, content FROM history ORDER BY id DESC LIMIT ?) ORDER BY id ASC",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []string
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entries = append(entries, content)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return entries, nil
}

// Close closes the database.
func (s *SQLiteHistoryStore) Close() error {
	return s.db.Close()
}
