// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the configured database engine.
// databaseType is "sqlite" or "postgres".
func Open(databaseType, url string) (*sql.DB, error) {
	switch databaseType {
	case "sqlite", "":
		conn, err := sql.Open("sqlite3", url)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return conn, nil
	case "postgres":
		conn, err := sql.Open("postgres", url)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// IsUniqueViolation reports whether err is a unique-constraint violation
// from either supported driver. The sqlite and postgres drivers expose
// this only through the error message.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// Timestamps are always bound explicitly by the caller so that sqlite and
// postgres store identical values; no NOW() defaults.
const schema = `
-- Candidates ("bands"/"groups" on the leaderboard)
CREATE TABLE IF NOT EXISTS candidate (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    image_url TEXT NOT NULL DEFAULT '',
    vote_count INTEGER NOT NULL DEFAULT 0 CHECK (vote_count >= 0),
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_candidate_vote_count ON candidate(vote_count);

-- Vote ledger. ledger_key is the uniqueness boundary: one row per
-- (identity, period), created in the same transaction as the counter
-- increment. Rows are never updated or deleted; they are the audit trail,
-- so there is intentionally no cascade from candidate.
CREATE TABLE IF NOT EXISTS vote_record (
    id TEXT PRIMARY KEY,
    ledger_key TEXT NOT NULL UNIQUE,
    identity_id TEXT NOT NULL,
    email TEXT,
    display_name TEXT,
    candidate_id TEXT NOT NULL REFERENCES candidate(id),
    candidate_name TEXT,
    cast_at TIMESTAMP NOT NULL,
    vote_date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_record_identity ON vote_record(identity_id);
CREATE INDEX IF NOT EXISTS idx_vote_record_candidate ON vote_record(candidate_id);
`
