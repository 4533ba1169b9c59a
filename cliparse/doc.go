// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseType: sqlite (default) or postgres
  - ReadingsDatabaseURL: readings store (default smoke.db for sqlite)
  - UsersDatabaseURL: users/votes store (default users.db for sqlite)
  - SessionSecret: session cookie signing key (optional)
  - SecureCookies: mark cookies Secure

# CLI Flags

	-p               Server port
	-t               Database type
	-readings-db     Readings store URL
	-users-db        Users/votes store URL
	-session-secret  Session signing secret
	-secure-cookies  Secure cookies

# Environment Variables

Flags fall back to environment variables:

	PORT                  → -p
	DATABASE_TYPE         → -t
	READINGS_DATABASE_URL → -readings-db
	USERS_DATABASE_URL    → -users-db
	SESSION_SECRET        → -session-secret
	COOKIE_SECURE=true    → -secure-cookies

CLI flags take precedence over environment variables. main loads a .env
file (if present) before parsing, so it can seed any of the above.

# Validation

ParseFlags returns an error if:

  - PORT is not a number
  - the database type is neither sqlite nor postgres
  - postgres is selected without both store URLs

An empty SessionSecret is not an error: main generates a random one for the
lifetime of the process.
*/
package cliparse
