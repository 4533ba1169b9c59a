// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, view, and response types for the server.

# Domain Types

Rows of the two stores:

  - User: (id, name, room_code), unique per (name, room_code)
  - Reading: one air-quality observation in a room
  - Vote: an up or down vote cast by a user
  - DislikeEntry: a dislike_logs row joined to the voter's name
  - VoteCounts: room-wide up/down/dislike totals

# View Types

JSON documents returned by the page routes:

  - LoginView: pending messages and the current session, if any
  - DashboardView: latest reading plus vote counts
  - ReadingsView: the full reading history of a room
  - DislikesView: the dislike history of a room, newest first

# Levels

Level tags map to fixed (value, status) pairs:

	green  → 10, Good
	yellow → 50, Smoky
	red    → 90, Danger

ColorBand recomputes a display band from a stored value:

	value < 30        → green
	30 ≤ value ≤ 70   → yellow
	value > 70        → red
*/
package models
