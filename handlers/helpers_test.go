// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/smokeroom/auth"
	"github.com/danielhkuo/smokeroom/cliparse"
	"github.com/danielhkuo/smokeroom/datastore"
	"github.com/danielhkuo/smokeroom/middleware"
	"github.com/danielhkuo/smokeroom/testutil"
)

// testClock is the fixed "now" used by handlers under test
var testClock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)

type testEnv struct {
	readings *sql.DB
	users    *sql.DB
	cfg      cliparse.Config
	sessions *auth.SessionManager
	session  *SessionHandler
	room     *RoomHandler
	voting   *VotingHandler
}

func setupHandlers(t *testing.T) *testEnv {
	t.Helper()

	readings, users := testutil.SetupTestDBs(t)
	cfg := testutil.GetTestConfig()
	sessions := auth.NewSessionManager(cfg.SessionSecret, false)

	readingStore := datastore.NewReadingStore(readings)
	identity := datastore.NewIdentityStore(users)

	env := &testEnv{
		readings: readings,
		users:    users,
		cfg:      cfg,
		sessions: sessions,
		session:  NewSessionHandler(identity, sessions, cfg),
		room:     NewRoomHandler(readingStore, identity),
		voting:   NewVotingHandler(identity),
	}
	env.room.now = func() time.Time { return testClock }
	env.voting.now = func() time.Time { return testClock }
	return env
}

// asUser attaches s to the request context the way RequireSession does
func asUser(req *http.Request, s auth.Session) *http.Request {
	return req.WithContext(middleware.WithSession(req.Context(), s))
}

// popFlashes replays the cookies set on w into a new request and reads its notices
func popFlashes(w *httptest.ResponseRecorder) []string {
	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return middleware.PopFlashes(httptest.NewRecorder(), req)
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
