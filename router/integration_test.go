// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"bytes"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/smokeroom/auth"
	"github.com/danielhkuo/smokeroom/handlers"
	"github.com/danielhkuo/smokeroom/middleware"
	"github.com/danielhkuo/smokeroom/models"
	"github.com/danielhkuo/smokeroom/testutil"
)

type app struct {
	mux      *http.ServeMux
	readings *sql.DB
	users    *sql.DB
}

func newApp(t *testing.T) *app {
	t.Helper()
	readings, users := testutil.SetupTestDBs(t)
	return &app{
		mux:      NewRouter(readings, users, testutil.GetTestConfig()),
		readings: readings,
		users:    users,
	}
}

func dashboard(t *testing.T, b *testutil.Browser) models.DashboardView {
	t.Helper()
	w := b.Get("/")
	testutil.AssertStatus(t, w, http.StatusOK)
	var view models.DashboardView
	testutil.AssertJSON(t, w, &view)
	return view
}

func TestRoomWorkflow(t *testing.T) {
	a := newApp(t)

	alice := testutil.NewBrowser(t, a.mux)
	bob := testutil.NewBrowser(t, a.mux)
	carol := testutil.NewBrowser(t, a.mux)

	// Step 1: Alice creates room R1 and sees the welcome notice
	alice.Login("alice", "R1")
	view := dashboard(t, alice)
	if view.Name != "alice" || view.RoomCode != "R1" {
		t.Fatalf("Unexpected identity %s/%s", view.Name, view.RoomCode)
	}
	if len(view.Messages) != 1 || view.Messages[0] != handlers.MsgRoomJoined {
		t.Errorf("Expected room joined notice, got %v", view.Messages)
	}
	if view.Latest != nil {
		t.Errorf("Expected no readings yet, got %+v", view.Latest)
	}

	// Notices are shown once
	if view := dashboard(t, alice); len(view.Messages) != 0 {
		t.Errorf("Expected notices to be consumed, got %v", view.Messages)
	}

	// Step 2: Alice logs a green reading
	testutil.AssertRedirect(t, alice.Get("/log/green"), "/")
	view = dashboard(t, alice)
	if view.Latest == nil {
		t.Fatal("Expected a latest reading")
	}
	if view.Latest.Value != 10 || view.Latest.Status != models.StatusGood || view.Latest.Color != models.BandGreen {
		t.Errorf("Expected (10, Good, green), got %+v", view.Latest)
	}

	// Step 3: Bob joins R1 and votes down
	bob.Login("bob", "R1")
	testutil.AssertRedirect(t, bob.Get("/vote/down"), "/")

	w := bob.Get("/dislikes")
	testutil.AssertStatus(t, w, http.StatusOK)
	var dislikes models.DislikesView
	testutil.AssertJSON(t, w, &dislikes)
	if len(dislikes.Dislikes) != 1 || dislikes.Dislikes[0].Name != "bob" {
		t.Fatalf("Expected one dislike by bob, got %+v", dislikes.Dislikes)
	}
	if dislikes.Dislikes[0].Message != models.DislikeMessage {
		t.Errorf("Unexpected dislike message %q", dislikes.Dislikes[0].Message)
	}

	// Counts are room-wide, so Alice sees Bob's vote
	view = dashboard(t, alice)
	if view.Up != 0 || view.Down != 1 || view.Dislikes != 1 {
		t.Errorf("Expected up=0 down=1 dislikes=1, got %+v", view.VoteCounts)
	}

	// Step 4: Carol in R2 sees none of R1
	carol.Login("carol", "R2")
	view = dashboard(t, carol)
	if view.Latest != nil {
		t.Errorf("Expected R2 to be empty, got %+v", view.Latest)
	}
	if view.Up != 0 || view.Down != 0 || view.Dislikes != 0 {
		t.Errorf("Expected zero counts in R2, got %+v", view.VoteCounts)
	}

	// Step 5: Export matches history
	alice.Get("/log/red")
	alice.Get("/log/yellow")

	w = alice.Get("/logs")
	var history models.ReadingsView
	testutil.AssertJSON(t, w, &history)
	if len(history.Logs) != 3 {
		t.Fatalf("Expected 3 readings, got %d", len(history.Logs))
	}

	w = alice.Get("/download")
	testutil.AssertStatus(t, w, http.StatusOK)
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("Failed to open export: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(handlers.ReadingsSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(history.Logs)+1 {
		t.Fatalf("Expected %d export rows, got %d", len(history.Logs)+1, len(rows))
	}
	for i, l := range history.Logs {
		if rows[i+1][1] != strconv.Itoa(l.Value) || rows[i+1][2] != l.Status {
			t.Errorf("Export row %d %v does not match history %+v", i+1, rows[i+1], l)
		}
	}

	// Step 6: Logging out ends the session
	alice.Logout()
	if alice.HasCookie(auth.SessionCookieName) {
		t.Error("Expected session cookie to be cleared")
	}
	testutil.AssertRedirect(t, alice.Get("/"), "/login")
}

func TestLoginIsIdempotentPerRoom(t *testing.T) {
	a := newApp(t)

	first := testutil.NewBrowser(t, a.mux)
	first.Login("alice", "R1")
	second := testutil.NewBrowser(t, a.mux)
	second.Login("alice", "R1")

	if n := testutil.CountRows(t, a.users, "users"); n != 1 {
		t.Errorf("Expected one user for the same name and room, got %d", n)
	}

	if view := dashboard(t, second); len(view.Messages) != 1 || view.Messages[0] != handlers.MsgLoggedIn {
		t.Errorf("Expected logged in notice, got %v", view.Messages)
	}

	// Same name in a different room is a different user
	other := testutil.NewBrowser(t, a.mux)
	other.Login("alice", "R2")
	if n := testutil.CountRows(t, a.users, "users"); n != 2 {
		t.Errorf("Expected two users, got %d", n)
	}
}

func TestLoginRejectsBlankFields(t *testing.T) {
	a := newApp(t)
	b := testutil.NewBrowser(t, a.mux)

	w := b.PostForm("/login", url.Values{"name": {"  "}, "code": {"R1"}})
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	if b.HasCookie(auth.SessionCookieName) {
		t.Error("Expected no session after a rejected login")
	}
	if n := testutil.CountRows(t, a.users, "users"); n != 0 {
		t.Errorf("Expected no users, got %d", n)
	}
}

func TestUnknownTagsAreIgnored(t *testing.T) {
	a := newApp(t)
	b := testutil.NewBrowser(t, a.mux)
	b.Login("alice", "R1")

	testutil.AssertRedirect(t, b.Get("/log/purple"), "/")
	testutil.AssertRedirect(t, b.Get("/vote/maybe"), "/")

	if n := testutil.CountRows(t, a.readings, "logs"); n != 0 {
		t.Errorf("Expected no readings, got %d", n)
	}
	if n := testutil.CountRows(t, a.users, "votes"); n != 0 {
		t.Errorf("Expected no votes, got %d", n)
	}
}

func TestStaleSessionIsCleared(t *testing.T) {
	a := newApp(t)

	req := httptest.NewRequest("GET", "/logs", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "not-a-token"})
	b := testutil.NewBrowser(t, a.mux)
	w := b.Do(req)

	testutil.AssertRedirect(t, w, "/login")

	w = b.Get("/login")
	var view models.LoginView
	testutil.AssertJSON(t, w, &view)
	if len(view.Messages) != 1 || view.Messages[0] != middleware.LoginRequiredMessage {
		t.Errorf("Expected login required notice, got %v", view.Messages)
	}
}
