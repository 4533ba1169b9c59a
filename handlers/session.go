// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/smokeroom/auth"
	"github.com/danielhkuo/smokeroom/cliparse"
	"github.com/danielhkuo/smokeroom/datastore"
	"github.com/danielhkuo/smokeroom/middleware"
	"github.com/danielhkuo/smokeroom/models"
)

// Login notices
const (
	MsgLoggedIn       = "Logged in successfully!"
	MsgRoomJoined     = "Room joined/created and logged in!"
	MsgNameTaken      = "Name already taken in this room."
	MsgFieldsRequired = "Name and room code are required."
	MsgLoggedOut      = "Logged out."
)

type SessionHandler struct {
	identity *datastore.IdentityStore
	sessions *auth.SessionManager
	cfg      cliparse.Config
}

func NewSessionHandler(identity *datastore.IdentityStore, sessions *auth.SessionManager, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{identity: identity, sessions: sessions, cfg: cfg}
}

// LoginPage handles GET /login
func (h *SessionHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	view := models.LoginView{Messages: middleware.PopFlashes(w, r)}

	// Report who is logged in, if anyone
	if s, err := h.sessions.Read(r); err == nil {
		view.Name = s.Name
		view.RoomCode = s.RoomCode
	}

	middleware.JSONResponse(w, http.StatusOK, view)
}

// Login handles POST /login with form fields name and code
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form")
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	roomCode := strings.TrimSpace(r.PostFormValue("code"))
	if name == "" || roomCode == "" {
		h.rejectLogin(w, r, http.StatusBadRequest, MsgFieldsRequired)
		return
	}

	user, created, err := h.identity.FindOrCreateUser(r.Context(), name, roomCode)
	if errors.Is(err, datastore.ErrNameTaken) {
		h.rejectLogin(w, r, http.StatusConflict, MsgNameTaken)
		return
	}
	if err != nil {
		slog.Error("failed to resolve user", "error", err, "room_code", roomCode)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	err = h.sessions.Issue(w, auth.Session{UserID: user.ID, Name: user.Name, RoomCode: user.RoomCode})
	if err != nil {
		slog.Error("failed to issue session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	message := MsgLoggedIn
	if created {
		message = MsgRoomJoined
	}
	middleware.AddFlash(w, r, message)

	slog.Info("user logged in",
		"user_id", user.ID,
		"room_code", user.RoomCode,
		"created", created,
		"ip_hash", auth.HashIP(middleware.GetClientIP(r), h.cfg.SessionSecret),
	)

	http.Redirect(w, r, "/", http.StatusFound)
}

// rejectLogin re-renders the login view with message
func (h *SessionHandler) rejectLogin(w http.ResponseWriter, r *http.Request, status int, message string) {
	view := models.LoginView{Messages: append(middleware.PopFlashes(w, r), message)}
	middleware.JSONResponse(w, status, view)
}

// Logout handles GET /logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	middleware.AddFlash(w, r, MsgLoggedOut)
	http.Redirect(w, r, "/login", http.StatusFound)
}
