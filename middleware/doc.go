// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).
Each request gets an id, taken from X-Request-ID or generated as a UUID, which
is echoed in the response and attached to both log lines.

# Session Guard

Protect routes that need a logged-in user:

	guard := middleware.RequireSession(sessions)
	mux.HandleFunc("GET /logs", middleware.WithLogging(guard(h.Logs)))

Without a valid session cookie the request is redirected to /login and
"Please log in first." is flashed. Inside the handler:

	s, ok := middleware.SessionFromContext(r.Context())

# Flash Notices

One-shot messages survive a redirect in a cookie:

	middleware.AddFlash(w, r, "Logged out.")
	http.Redirect(w, r, "/login", http.StatusFound)

	// next request
	messages := middleware.PopFlashes(w, r)

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used for the hashed IP in login logs.
*/
package middleware
