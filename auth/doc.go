// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session cookies and small cryptographic helpers.

# Sessions

A SessionManager signs the (user_id, name, room_code) triple into an HS256
JWT stored in the smokeroom_session cookie:

	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SecureCookies)
	sessions.Issue(w, auth.Session{UserID: 1, Name: "alice", RoomCode: "R1"})

	s, err := sessions.Read(r)
	switch {
	case errors.Is(err, auth.ErrNoSession):      // not logged in
	case errors.Is(err, auth.ErrInvalidSession): // tampered, expired or foreign
	}

	sessions.Clear(w) // logout

The cookie is HttpOnly and SameSite=Lax; Secure when configured. Tokens are
accepted for DefaultSessionTTL.

# Secrets

The signing secret comes from configuration. When none is configured main
calls GenerateSecret once at startup.

# Helpers

	id, err := auth.GenerateID(16)   // random hex
	hash := auth.HashIP(ip, salt)    // salted, truncated HMAC for logs
*/
package auth
