// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package datastore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/smokeroom/db"
	"github.com/danielhkuo/smokeroom/models"
)

// ErrNameTaken is returned when a user row for (name, room_code) could not
// be created because of the uniqueness constraint.
var ErrNameTaken = errors.New("name already taken in this room")

// IdentityStore covers users, votes and dislike logs.
type IdentityStore struct {
	db *sql.DB
}

func NewIdentityStore(conn *sql.DB) *IdentityStore {
	return &IdentityStore{db: conn}
}

// FindOrCreateUser returns the user for (name, roomCode), inserting it on first
// sight. created reports whether a new row was written.
func (s *IdentityStore) FindOrCreateUser(ctx context.Context, name, roomCode string) (user models.User, created bool, err error) {
	user = models.User{Name: name, RoomCode: roomCode}

	err = s.db.QueryRowContext(ctx, `
		SELECT id FROM users WHERE name = $1 AND room_code = $2
	`, name, roomCode).Scan(&user.ID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.User{}, false, fmt.Errorf("failed to look up user: %w", err)
	}

	err = s.db.QueryRowContext(ctx, `
		INSERT INTO users (name, room_code)
		VALUES ($1, $2)
		RETURNING id
	`, name, roomCode).Scan(&user.ID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return models.User{}, false, ErrNameTaken
		}
		return models.User{}, false, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, true, nil
}

// CastVote appends a vote for the user. A down-vote also appends a dislike
// log in the same transaction.
func (s *IdentityStore) CastVote(ctx context.Context, userID int64, voteType string, at time.Time) error {
	if !models.IsVoteType(voteType) {
		return fmt.Errorf("invalid vote type %q", voteType)
	}
	timestamp := at.Format(models.TimestampLayout)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO votes (user_id, vote_type, timestamp)
		VALUES ($1, $2, $3)
	`, userID, voteType, timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	if voteType == models.VoteDown {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO dislike_logs (user_id, message, timestamp)
			VALUES ($1, $2, $3)
		`, userID, models.DislikeMessage, timestamp)
		if err != nil {
			return fmt.Errorf("failed to insert dislike log: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit vote: %w", err)
	}
	return nil
}

// VoteCounts counts up and down votes cast by every user who ever joined
// the room. Dislikes is left zero; see DislikeTotal.
func (s *IdentityStore) VoteCounts(ctx context.Context, roomCode string) (models.VoteCounts, error) {
	var counts models.VoteCounts
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN v.vote_type = 'up' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN v.vote_type = 'down' THEN 1 ELSE 0 END), 0)
		FROM votes v
		JOIN users u ON v.user_id = u.id
		WHERE u.room_code = $1
	`, roomCode).Scan(&counts.Up, &counts.Down)
	if err != nil {
		return models.VoteCounts{}, fmt.Errorf("failed to count votes: %w", err)
	}
	return counts, nil
}

// DislikeTotal counts dislike logs written by users of the room.
func (s *IdentityStore) DislikeTotal(ctx context.Context, roomCode string) (int64, error) {
	var total int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM dislike_logs dl
		JOIN users u ON dl.user_id = u.id
		WHERE u.room_code = $1
	`, roomCode).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count dislikes: %w", err)
	}
	return total, nil
}

// ListDislikes returns the room's dislike logs with voter names, newest first.
func (s *IdentityStore) ListDislikes(ctx context.Context, roomCode string) ([]models.DislikeEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT dl.id, u.name, dl.timestamp, dl.message
		FROM dislike_logs dl
		JOIN users u ON dl.user_id = u.id
		WHERE u.room_code = $1
		ORDER BY dl.id DESC
	`, roomCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query dislikes: %w", err)
	}
	defer rows.Close()

	entries := []models.DislikeEntry{}
	for rows.Next() {
		var e models.DislikeEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Timestamp, &e.Message); err != nil {
			return nil, fmt.Errorf("failed to scan dislike: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dislikes: %w", err)
	}

	return entries, nil
}
