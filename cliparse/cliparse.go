package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// Supported database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port                int
	DatabaseType        string
	ReadingsDatabaseURL string
	UsersDatabaseURL    string
	SessionSecret       string
	SecureCookies       bool
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("smokeroom", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.ReadingsDatabaseURL, "readings-db", "", "Readings store URL")
	fs.StringVar(&cfg.UsersDatabaseURL, "users-db", "", "Users/votes store URL")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session signing secret (prefer env)")
	fs.BoolVar(&cfg.SecureCookies, "secure-cookies", false, "Mark session cookies Secure")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.ReadingsDatabaseURL == "" {
		cfg.ReadingsDatabaseURL = os.Getenv("READINGS_DATABASE_URL")
	}
	if cfg.UsersDatabaseURL == "" {
		cfg.UsersDatabaseURL = os.Getenv("USERS_DATABASE_URL")
	}
	if cfg.DatabaseType == DatabaseSQLite {
		if cfg.ReadingsDatabaseURL == "" {
			cfg.ReadingsDatabaseURL = "smoke.db"
		}
		if cfg.UsersDatabaseURL == "" {
			cfg.UsersDatabaseURL = "users.db"
		}
	}
	if cfg.ReadingsDatabaseURL == "" || cfg.UsersDatabaseURL == "" {
		return Config{}, errors.New("postgres requires READINGS_DATABASE_URL and USERS_DATABASE_URL")
	}

	// Secret is optional here; main generates one per process when empty
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}

	if !cfg.SecureCookies && os.Getenv("COOKIE_SECURE") == "true" {
		cfg.SecureCookies = true
	}

	return cfg, nil
}
