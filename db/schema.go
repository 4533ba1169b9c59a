// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/danielhkuo/smokeroom/cliparse"
)

// CreateReadingsSchema creates the readings store tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateReadingsSchema(db *sql.DB, dbType string) error {
	stmt, err := render(readingsSchema, dbType)
	if err != nil {
		return err
	}
	if _, err := db.Exec(stmt); err != nil {
		return fmt.Errorf("failed to create readings schema: %w", err)
	}
	return nil
}

// CreateIdentitySchema creates the users, votes and dislike_logs tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateIdentitySchema(db *sql.DB, dbType string) error {
	stmt, err := render(identitySchema, dbType)
	if err != nil {
		return err
	}
	if _, err := db.Exec(stmt); err != nil {
		return fmt.Errorf("failed to create identity schema: %w", err)
	}
	return nil
}

// render fills in the auto-increment id column for the dialect
func render(schema, dbType string) (string, error) {
	var idColumn string
	switch dbType {
	case cliparse.DatabaseSQLite:
		idColumn = "INTEGER PRIMARY KEY AUTOINCREMENT"
	case cliparse.DatabasePostgres:
		idColumn = "BIGSERIAL PRIMARY KEY"
	default:
		return "", fmt.Errorf("unsupported database type %q", dbType)
	}
	return strings.ReplaceAll(schema, "{{id}}", idColumn), nil
}

const readingsSchema = `
-- Readings
CREATE TABLE IF NOT EXISTS logs (
    id {{id}},
    room_code TEXT NOT NULL,
    timestamp TEXT NOT NULL,
    value INTEGER NOT NULL,
    status TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_logs_room_code ON logs(room_code);
`

const identitySchema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id {{id}},
    name TEXT NOT NULL,
    room_code TEXT NOT NULL,
    UNIQUE (name, room_code)
);

CREATE INDEX IF NOT EXISTS idx_users_room_code ON users(room_code);

-- Votes
CREATE TABLE IF NOT EXISTS votes (
    id {{id}},
    user_id INTEGER NOT NULL REFERENCES users(id),
    vote_type TEXT NOT NULL CHECK (vote_type IN ('up', 'down')),
    timestamp TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_votes_user_id ON votes(user_id);

-- Dislike logs
CREATE TABLE IF NOT EXISTS dislike_logs (
    id {{id}},
    user_id INTEGER NOT NULL REFERENCES users(id),
    message TEXT NOT NULL,
    timestamp TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_dislike_logs_user_id ON dislike_logs(user_id);
`
