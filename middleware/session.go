// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/smokeroom/auth"
)

// LoginRequiredMessage is flashed when a guarded route is hit without a session
const LoginRequiredMessage = "Please log in first."

type contextKey string

const sessionKey contextKey = "session"

// RequireSession guards a handler: requests without a valid session are
// redirected to /login with a notice. The session is stored on the context.
func RequireSession(sessions *auth.SessionManager) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			s, err := sessions.Read(r)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidSession) {
					slog.Warn("rejected session cookie", "error", err, "path", r.URL.Path)
					sessions.Clear(w)
				}
				AddFlash(w, r, LoginRequiredMessage)
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			next(w, r.WithContext(WithSession(r.Context(), s)))
		}
	}
}

// WithSession returns a copy of ctx carrying s
func WithSession(ctx context.Context, s auth.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext returns the session stored by RequireSession
func SessionFromContext(ctx context.Context) (auth.Session, bool) {
	s, ok := ctx.Value(sessionKey).(auth.Session)
	return s, ok
}
