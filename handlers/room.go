// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/smokeroom/auth"
	"github.com/danielhkuo/smokeroom/datastore"
	"github.com/danielhkuo/smokeroom/middleware"
	"github.com/danielhkuo/smokeroom/models"
)

type RoomHandler struct {
	readings *datastore.ReadingStore
	identity *datastore.IdentityStore
	now      func() time.Time
}

func NewRoomHandler(readings *datastore.ReadingStore, identity *datastore.IdentityStore) *RoomHandler {
	return &RoomHandler{readings: readings, identity: identity, now: time.Now}
}

// Dashboard handles GET /
// Latest room reading plus room-wide vote and dislike counts
func (h *RoomHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	latest, err := h.readings.Latest(ctx, s.RoomCode)
	if err != nil {
		storageFault(w, err, "failed to query latest reading", s)
		return
	}

	counts, err := h.identity.VoteCounts(ctx, s.RoomCode)
	if err != nil {
		storageFault(w, err, "failed to count votes", s)
		return
	}

	counts.Dislikes, err = h.identity.DislikeTotal(ctx, s.RoomCode)
	if err != nil {
		storageFault(w, err, "failed to count dislikes", s)
		return
	}

	view := models.DashboardView{
		Name:       s.Name,
		RoomCode:   s.RoomCode,
		VoteCounts: counts,
		Messages:   middleware.PopFlashes(w, r),
	}
	if latest != nil {
		v := readingView(*latest)
		v.Age = readingAge(latest.Timestamp, h.now())
		view.Latest = &v
	}

	middleware.JSONResponse(w, http.StatusOK, view)
}

// LogLevel handles GET /log/{level}
// Unknown levels redirect without writing
func (h *RoomHandler) LogLevel(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	tag := r.PathValue("level")
	level, known := models.LookupLevel(tag)
	if !known {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	reading, err := h.readings.Record(r.Context(), s.RoomCode, level, h.now())
	if err != nil {
		storageFault(w, err, "failed to record reading", s)
		return
	}

	slog.Info("reading recorded", "room_code", s.RoomCode, "reading_id", reading.ID, "level", tag, "user_id", s.UserID)

	http.Redirect(w, r, "/", http.StatusFound)
}

// Logs handles GET /logs
func (h *RoomHandler) Logs(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	readings, err := h.readings.List(r.Context(), s.RoomCode)
	if err != nil {
		storageFault(w, err, "failed to list readings", s)
		return
	}

	views := make([]models.ReadingView, 0, len(readings))
	for _, reading := range readings {
		views = append(views, readingView(reading))
	}

	middleware.JSONResponse(w, http.StatusOK, models.ReadingsView{
		RoomCode: s.RoomCode,
		Logs:     views,
		Messages: middleware.PopFlashes(w, r),
	})
}

// Download handles GET /download
// Streams the room's history as an XLSX attachment
func (h *RoomHandler) Download(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	readings, err := h.readings.List(r.Context(), s.RoomCode)
	if err != nil {
		storageFault(w, err, "failed to list readings", s)
		return
	}

	workbook, err := BuildReadingsWorkbook(readings)
	if err != nil {
		slog.Error("failed to build workbook", "error", err, "room_code", s.RoomCode)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export readings")
		return
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": ExportFilename(s.RoomCode)})
	if disposition == "" {
		disposition = `attachment; filename="air_quality_log.xlsx"`
	}
	w.Header().Set("Content-Type", XLSXContentType)
	w.Header().Set("Content-Disposition", disposition)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(workbook); err != nil {
		slog.Warn("failed to stream workbook", "error", err, "room_code", s.RoomCode)
	}
}

func readingView(r models.Reading) models.ReadingView {
	return models.ReadingView{Reading: r, Color: models.ColorBand(r.Value)}
}

// readingAge renders a stored timestamp relative to now, or "" if unparsable
func readingAge(timestamp string, now time.Time) string {
	at, err := time.ParseInLocation(models.TimestampLayout, timestamp, time.Local)
	if err != nil {
		return ""
	}
	return humanize.RelTime(at, now, "ago", "from now")
}

// currentSession returns the session put on the context by RequireSession.
// Without one the client is sent to /login.
func currentSession(w http.ResponseWriter, r *http.Request) (auth.Session, bool) {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
	}
	return s, ok
}

func storageFault(w http.ResponseWriter, err error, msg string, s auth.Session) {
	slog.Error(msg, "error", err, "room_code", s.RoomCode, "user_id", s.UserID)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
}
