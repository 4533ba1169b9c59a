// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSession      = errors.New("no session")
	ErrInvalidSession = errors.New("invalid session")
)

// SessionCookieName is the cookie carrying the signed session
const SessionCookieName = "smokeroom_session"

// DefaultSessionTTL bounds how long a signed session is accepted
const DefaultSessionTTL = 7 * 24 * time.Hour

// Session is the identity attached to an authenticated request
type Session struct {
	UserID   int64
	Name     string
	RoomCode string
}

type sessionClaims struct {
	Name     string `json:"name"`
	RoomCode string `json:"room"`
	jwt.RegisteredClaims
}

// SessionManager issues and verifies HS256-signed session cookies.
// The secret is injected once at startup.
type SessionManager struct {
	secret []byte
	secure bool
	ttl    time.Duration
}

func NewSessionManager(secret string, secure bool) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		secure: secure,
		ttl:    DefaultSessionTTL,
	}
}

// Issue signs s and sets it as the session cookie
func (m *SessionManager) Issue(w http.ResponseWriter, s Session) error {
	now := time.Now()
	claims := sessionClaims{
		Name:     s.Name,
		RoomCode: s.RoomCode,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(s.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read returns the session carried by r.
// ErrNoSession means no cookie; ErrInvalidSession means a cookie that failed verification.
func (m *SessionManager) Read(r *http.Request) (Session, error) {
	c, err := r.Cookie(SessionCookieName)
	if err != nil || c.Value == "" {
		return Session{}, ErrNoSession
	}

	var claims sessionClaims
	_, err = jwt.ParseWithClaims(c.Value, &claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || claims.RoomCode == "" {
		return Session{}, fmt.Errorf("%w: malformed claims", ErrInvalidSession)
	}

	return Session{UserID: userID, Name: claims.Name, RoomCode: claims.RoomCode}, nil
}

// Clear expires the session cookie
func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
