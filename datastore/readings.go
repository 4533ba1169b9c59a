// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package datastore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/smokeroom/models"
)

// ReadingStore reads and appends rows of the readings store.
type ReadingStore struct {
	db *sql.DB
}

func NewReadingStore(db *sql.DB) *ReadingStore {
	return &ReadingStore{db: db}
}

// Record appends one reading for the room, stamped with at.
func (s *ReadingStore) Record(ctx context.Context, roomCode string, level models.Level, at time.Time) (models.Reading, error) {
	reading := models.Reading{
		RoomCode:  roomCode,
		Timestamp: at.Format(models.TimestampLayout),
		Value:     level.Value,
		Status:    level.Status,
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO logs (room_code, timestamp, value, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, reading.RoomCode, reading.Timestamp, reading.Value, reading.Status).Scan(&reading.ID)
	if err != nil {
		return models.Reading{}, fmt.Errorf("failed to insert reading: %w", err)
	}

	return reading, nil
}

// Latest returns the most recently inserted reading for the room,
// or nil if the room has none.
func (s *ReadingStore) Latest(ctx context.Context, roomCode string) (*models.Reading, error) {
	var reading models.Reading
	err := s.db.QueryRowContext(ctx, `
		SELECT id, room_code, timestamp, value, status
		FROM logs
		WHERE room_code = $1
		ORDER BY id DESC
		LIMIT 1
	`, roomCode).Scan(&reading.ID, &reading.RoomCode, &reading.Timestamp, &reading.Value, &reading.Status)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest reading: %w", err)
	}

	return &reading, nil
}

// List returns every reading for the room in insertion order.
func (s *ReadingStore) List(ctx context.Context, roomCode string) ([]models.Reading, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, room_code, timestamp, value, status
		FROM logs
		WHERE room_code = $1
		ORDER BY id ASC
	`, roomCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query readings: %w", err)
	}
	defer rows.Close()

	readings := []models.Reading{}
	for rows.Next() {
		var r models.Reading
		if err := rows.Scan(&r.ID, &r.RoomCode, &r.Timestamp, &r.Value, &r.Status); err != nil {
			return nil, fmt.Errorf("failed to scan reading: %w", err)
		}
		readings = append(readings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating readings: %w", err)
	}

	return readings, nil
}
