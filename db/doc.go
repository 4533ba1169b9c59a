// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the two stores and creates their schema.

# Opening

Open selects the driver for the configured database type and pings it:

	readings, err := db.Open(cfg.DatabaseType, cfg.ReadingsDatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer readings.Close()

SQLite (modernc.org/sqlite, pure Go) is the default; DSNs get a busy_timeout
pragma appended. PostgreSQL goes through lib/pq.

# Schema Creation

	db.CreateReadingsSchema(readings, cfg.DatabaseType)
	db.CreateIdentitySchema(users, cfg.DatabaseType)

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
There are no migrations.

# Tables

Readings store:

  - logs: (id, room_code, timestamp, value, status)

Identity store:

  - users: (id, name, room_code), UNIQUE (name, room_code)
  - votes: (id, user_id, vote_type, timestamp)
  - dislike_logs: (id, user_id, message, timestamp)

Ids are INTEGER AUTOINCREMENT on SQLite and BIGSERIAL on PostgreSQL.
Rooms have no table; a room is any room_code referenced by a user or reading.

# Errors

IsUniqueViolation recognises unique constraint failures from both drivers
(*pq.Error code 23505, SQLite extended codes UNIQUE/PRIMARYKEY).
*/
package db
