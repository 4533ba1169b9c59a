package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/smokeroom/auth"
	"github.com/danielhkuo/smokeroom/cliparse"
	"github.com/danielhkuo/smokeroom/db"
	"github.com/danielhkuo/smokeroom/router"
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded .env")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.SessionSecret == "" {
		cfg.SessionSecret, err = auth.GenerateSecret()
		if err != nil {
			slog.Error("session secret generation failed", "error", err)
			os.Exit(1)
		}
		slog.Warn("SESSION_SECRET not set; using a random secret, sessions end on restart")
	}

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// run owns both store handles; they are closed on every return path
func run(cfg cliparse.Config) error {
	readingsDB, err := db.Open(cfg.DatabaseType, cfg.ReadingsDatabaseURL)
	if err != nil {
		return fmt.Errorf("readings store: %w", err)
	}
	defer readingsDB.Close()

	usersDB, err := db.Open(cfg.DatabaseType, cfg.UsersDatabaseURL)
	if err != nil {
		return fmt.Errorf("users store: %w", err)
	}
	defer usersDB.Close()

	// Create schema (tables)
	if err := db.CreateReadingsSchema(readingsDB, cfg.DatabaseType); err != nil {
		return err
	}
	if err := db.CreateIdentitySchema(usersDB, cfg.DatabaseType); err != nil {
		return err
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Create router
	mux := router.NewRouter(readingsDB, usersDB, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	slog.Info("Server closed")
	return nil
}
