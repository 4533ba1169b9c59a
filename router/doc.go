// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the smokeroom server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(readingsDB, usersDB, cfg)

# Endpoints

Health:

	GET /health

Session (public):

	GET  /login  - Login view (pending notices, current session)
	POST /login  - Join a room; form fields name, code
	GET  /logout - Clear the session

Room (session required):

	GET /              - Dashboard: latest reading and vote counts
	GET /log/{level}   - Record a green, yellow or red reading
	GET /logs          - Full reading history
	GET /download      - Reading history as an XLSX attachment

Voting (session required):

	GET /vote/{vote_type} - Cast an up or down vote
	GET /dislikes         - Dislike history, newest first

Unauthenticated requests to session routes are redirected to /login.

# Handler Initialization

The router builds the stores and the session manager, then injects them:

	readings := datastore.NewReadingStore(readingsDB)
	identity := datastore.NewIdentityStore(usersDB)
	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SecureCookies)

	sessionHandler := handlers.NewSessionHandler(identity, sessions, cfg)
	roomHandler := handlers.NewRoomHandler(readings, identity)
	votingHandler := handlers.NewVotingHandler(identity)
*/
package router
