// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/smokeroom/auth"
	"github.com/danielhkuo/smokeroom/cliparse"
	"github.com/danielhkuo/smokeroom/datastore"
	"github.com/danielhkuo/smokeroom/handlers"
	"github.com/danielhkuo/smokeroom/middleware"
)

func NewRouter(readingsDB, usersDB *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Stores and sessions
	readings := datastore.NewReadingStore(readingsDB)
	identity := datastore.NewIdentityStore(usersDB)
	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SecureCookies)
	guard := middleware.RequireSession(sessions)

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(identity, sessions, cfg)
	roomHandler := handlers.NewRoomHandler(readings, identity)
	votingHandler := handlers.NewVotingHandler(identity)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session (public)
	mux.HandleFunc("GET /login", middleware.WithLogging(sessionHandler.LoginPage))
	mux.HandleFunc("POST /login", middleware.WithLogging(sessionHandler.Login))
	mux.HandleFunc("GET /logout", middleware.WithLogging(sessionHandler.Logout))

	// Room views and readings (session required)
	mux.HandleFunc("GET /{$}", middleware.WithLogging(guard(roomHandler.Dashboard)))
	mux.HandleFunc("GET /log/{level}", middleware.WithLogging(guard(roomHandler.LogLevel)))
	mux.HandleFunc("GET /logs", middleware.WithLogging(guard(roomHandler.Logs)))
	mux.HandleFunc("GET /download", middleware.WithLogging(guard(roomHandler.Download)))

	// Voting (session required)
	mux.HandleFunc("GET /vote/{vote_type}", middleware.WithLogging(guard(votingHandler.Vote)))
	mux.HandleFunc("GET /dislikes", middleware.WithLogging(guard(votingHandler.Dislikes)))

	return mux
}
