// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/smokeroom/cliparse"
	"github.com/danielhkuo/smokeroom/db"
	"github.com/danielhkuo/smokeroom/models"
)

// SetupTestDBs creates fresh readings and identity stores with the full
// schema. Both are SQLite files in a per-test temp dir, closed on cleanup.
func SetupTestDBs(t *testing.T) (readings, users *sql.DB) {
	t.Helper()

	dir := t.TempDir()
	readings = openStore(t, filepath.Join(dir, "smoke.db"))
	users = openStore(t, filepath.Join(dir, "users.db"))

	if err := db.CreateReadingsSchema(readings, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to create readings schema: %v", err)
	}
	if err := db.CreateIdentitySchema(users, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to create identity schema: %v", err)
	}

	return readings, users
}

func openStore(t *testing.T, path string) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.DatabaseSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:                5000,
		DatabaseType:        cliparse.DatabaseSQLite,
		ReadingsDatabaseURL: "smoke.db",
		UsersDatabaseURL:    "users.db",
		SessionSecret:       "test-session-secret",
	}
}

// CreateTestUser inserts a user and returns its id
func CreateTestUser(t *testing.T, users *sql.DB, name, roomCode string) int64 {
	t.Helper()

	var id int64
	err := users.QueryRow(`
		INSERT INTO users (name, room_code) VALUES ($1, $2) RETURNING id
	`, name, roomCode).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return id
}

// CreateTestReading inserts a reading with an explicit value
func CreateTestReading(t *testing.T, readings *sql.DB, roomCode string, value int, status string) int64 {
	t.Helper()

	var id int64
	err := readings.QueryRow(`
		INSERT INTO logs (room_code, timestamp, value, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, roomCode, time.Now().Format(models.TimestampLayout), value, status).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test reading: %v", err)
	}
	return id
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// Browser replays cookies between requests against a handler, the way a
// browser following redirects would.
type Browser struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func NewBrowser(t *testing.T, handler http.Handler) *Browser {
	return &Browser{t: t, handler: handler, cookies: map[string]*http.Cookie{}}
}

// Get issues a GET request
func (b *Browser) Get(path string) *httptest.ResponseRecorder {
	return b.Do(httptest.NewRequest("GET", path, nil))
}

// PostForm issues a form-encoded POST request
func (b *Browser) PostForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.Do(req)
}

// Do sends req with the stored cookies and keeps any cookies set in reply
func (b *Browser) Do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	b.handler.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 || c.Value == "" {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return w
}

// Login posts the login form and fails the test unless it redirects to /
func (b *Browser) Login(name, roomCode string) {
	b.t.Helper()

	w := b.PostForm("/login", url.Values{"name": {name}, "code": {roomCode}})
	AssertRedirect(b.t, w, "/")
}

// Logout drops every stored cookie
func (b *Browser) Logout() {
	b.t.Helper()

	w := b.Get("/logout")
	AssertRedirect(b.t, w, "/login")
}

// HasCookie reports whether a cookie with name is currently stored
func (b *Browser) HasCookie(name string) bool {
	_, ok := b.cookies[name]
	return ok
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 302 to location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Fatalf("Expected status 302, got %d. Body: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("Expected redirect to %s, got %s", location, got)
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
