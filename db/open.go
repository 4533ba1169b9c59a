// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/danielhkuo/smokeroom/cliparse"
)

// sqliteBusyTimeout makes concurrent writers wait for the lock instead of failing
const sqliteBusyTimeout = "_pragma=busy_timeout(5000)"

// Open connects to a store of the given type and verifies the connection.
// The caller owns the returned handle and must Close it.
func Open(dbType, url string) (*sql.DB, error) {
	var driver, dsn string
	switch dbType {
	case cliparse.DatabaseSQLite:
		driver = "sqlite"
		dsn = withBusyTimeout(url)
	case cliparse.DatabasePostgres:
		driver = "postgres"
		dsn = url
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", dbType, err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s store: %w", dbType, err)
	}

	return conn, nil
}

func withBusyTimeout(dsn string) string {
	if strings.Contains(dsn, "busy_timeout") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqliteBusyTimeout
	}
	return dsn + "?" + sqliteBusyTimeout
}
