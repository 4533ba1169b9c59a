// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Smokeroom app.

# Handler Types

Each handler is a struct holding the stores it needs:

  - SessionHandler: Login page, login by name and room code, logout
  - RoomHandler: Dashboard, recording readings, history and XLSX export
  - VotingHandler: Up/down votes and the dislike log

Handlers are created via constructor functions:

	room := handlers.NewRoomHandler(readingStore, identityStore)

# Sessions

Every handler except the session ones expects the router to wrap it in
middleware.RequireSession, which places the caller's auth.Session on the
request context. Without one the handler redirects to /login.

# Room Flow

	POST /login           → Login (find or create the user, set session)
	GET  /log/{level}     → LogLevel (green, yellow, red)
	GET  /                → Dashboard (latest reading, room-wide counts)
	GET  /vote/{vote_type} → Vote (up, down; down also logs a dislike)
	GET  /logs            → Logs (oldest first)
	GET  /dislikes        → Dislikes (newest first)
	GET  /download        → Download (XLSX of the room's readings)

Unknown level or vote tags are ignored and the client is redirected home.

# Views

Views are rendered as JSON and carry any flash notices queued by the
previous request. Each reading's color band is recomputed from its value:
below 30 is green, up to 70 is yellow, anything above is red.
*/
package handlers
