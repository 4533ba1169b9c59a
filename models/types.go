package models

// Level tags accepted by /log/{level}
const (
	LevelGreen  = "green"
	LevelYellow = "yellow"
	LevelRed    = "red"
)

// Reading status labels
const (
	StatusGood   = "Good"
	StatusSmoky  = "Smoky"
	StatusDanger = "Danger"
)

// Vote type constants
const (
	VoteUp   = "up"
	VoteDown = "down"
)

// Colour bands derived from a reading value
const (
	BandGreen  = "green"
	BandYellow = "yellow"
	BandRed    = "red"
)

// DislikeMessage is written alongside every down-vote.
const DislikeMessage = "Dislike detected, information logged."

// TimestampLayout is the text layout stored in every timestamp column.
const TimestampLayout = "2006-01-02 15:04:05"

// Level is the fixed (value, status) pair a level tag records.
type Level struct {
	Value  int
	Status string
}

var levels = map[string]Level{
	LevelGreen:  {Value: 10, Status: StatusGood},
	LevelYellow: {Value: 50, Status: StatusSmoky},
	LevelRed:    {Value: 90, Status: StatusDanger},
}

// LookupLevel returns the pair for a level tag and whether the tag is known.
func LookupLevel(tag string) (Level, bool) {
	l, ok := levels[tag]
	return l, ok
}

// IsVoteType reports whether v is "up" or "down".
func IsVoteType(v string) bool {
	return v == VoteUp || v == VoteDown
}

// ColorBand maps a reading value to its display band.
// 30 and 70 are both yellow.
func ColorBand(value int) string {
	switch {
	case value < 30:
		return BandGreen
	case value <= 70:
		return BandYellow
	default:
		return BandRed
	}
}

// Domain types

type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	RoomCode string `json:"room_code"`
}

type Reading struct {
	ID        int64  `json:"id"`
	RoomCode  string `json:"room_code"`
	Timestamp string `json:"timestamp"`
	Value     int    `json:"value"`
	Status    string `json:"status"`
}

type Vote struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	VoteType  string `json:"vote_type"`
	Timestamp string `json:"timestamp"`
}

// DislikeEntry is a dislike_logs row joined to the user's name.
type DislikeEntry struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

// VoteCounts aggregates votes over every user who ever joined a room.
type VoteCounts struct {
	Up       int64 `json:"up_votes"`
	Down     int64 `json:"down_votes"`
	Dislikes int64 `json:"total_dislikes"`
}

// View types

type ReadingView struct {
	Reading
	Color string `json:"color"`
	Age   string `json:"age,omitempty"`
}

type LoginView struct {
	Messages []string `json:"messages"`
	Name     string   `json:"name,omitempty"`
	RoomCode string   `json:"room_code,omitempty"`
}

type DashboardView struct {
	Name     string       `json:"name"`
	RoomCode string       `json:"room_code"`
	Latest   *ReadingView `json:"latest"`
	VoteCounts
	Messages []string `json:"messages"`
}

type ReadingsView struct {
	RoomCode string        `json:"room_code"`
	Logs     []ReadingView `json:"logs"`
	Messages []string      `json:"messages"`
}

type DislikesView struct {
	RoomCode string         `json:"room_code"`
	Dislikes []DislikeEntry `json:"dislikes"`
	Messages []string       `json:"messages"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
