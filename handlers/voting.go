// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/smokeroom/datastore"
	"github.com/danielhkuo/smokeroom/middleware"
	"github.com/danielhkuo/smokeroom/models"
)

type VotingHandler struct {
	identity *datastore.IdentityStore
	now      func() time.Time
}

func NewVotingHandler(identity *datastore.IdentityStore) *VotingHandler {
	return &VotingHandler{identity: identity, now: time.Now}
}

// Vote handles GET /vote/{vote_type}
// Unknown vote types redirect without writing; down-votes also log a dislike
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	voteType := r.PathValue("vote_type")
	if !models.IsVoteType(voteType) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if err := h.identity.CastVote(r.Context(), s.UserID, voteType, h.now()); err != nil {
		storageFault(w, err, "failed to cast vote", s)
		return
	}

	slog.Info("vote cast", "room_code", s.RoomCode, "user_id", s.UserID, "vote_type", voteType)

	http.Redirect(w, r, "/", http.StatusFound)
}

// Dislikes handles GET /dislikes
func (h *VotingHandler) Dislikes(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	entries, err := h.identity.ListDislikes(r.Context(), s.RoomCode)
	if err != nil {
		storageFault(w, err, "failed to list dislikes", s)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DislikesView{
		RoomCode: s.RoomCode,
		Dislikes: entries,
		Messages: middleware.PopFlashes(w, r),
	})
}
