// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the smokeroom server.

smokeroom is a multi-room air-quality log. Users join a room by name and
room code, log readings (green/yellow/red), vote up or down on conditions,
and export a room's history as a spreadsheet.

# Starting the Server

With no configuration the server uses two SQLite files in the working
directory and a random session secret:

	go run .

With PostgreSQL:

	DATABASE_TYPE=postgres \
	READINGS_DATABASE_URL=postgres://... \
	USERS_DATABASE_URL=postgres://... \
	SESSION_SECRET=... go run .

Or with flags:

	go run . -p 5000 -readings-db smoke.db -users-db users.db

A .env file in the working directory is loaded first, if present.

# Configuration

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - READINGS_DATABASE_URL (-readings-db): readings store
  - USERS_DATABASE_URL (-users-db): users, votes and dislikes store
  - SESSION_SECRET (-session-secret): session signing secret
  - COOKIE_SECURE (-secure-cookies): mark cookies Secure

# Architecture

  - handlers: HTTP request handlers (session, room, voting, export)
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, session guard, flash notices, JSON helpers
  - datastore: queries against the readings and identity stores
  - models: domain and view types, level table, colour bands
  - auth: signed session cookies and hashing helpers
  - db: store opening and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
