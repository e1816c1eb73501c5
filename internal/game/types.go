// internal/game/types.go
//
// Core type definitions for the daily puzzle engine.
// Defines:
//   - Mark: per-attribute result of a guess (exact/partial/none).
//   - Attribute: the ordered columns a guess is compared on.
//   - Status: session state (in_progress/won/lost).
//   - Stats, Row, Outcome, Snapshot: values handed to the view layer.

package game

import (
	"errors"
	"time"
)

// MaxAttempts is the number of guesses allowed per day.
const MaxAttempts = 6

// Mark is the classification of one attribute of a guess against the target.
type Mark string

const (
	MarkExact   Mark = "exact"
	MarkPartial Mark = "partial"
	MarkNone    Mark = "none"
)

// Attribute names a compared column, in display order.
type Attribute string

const (
	AttrName        Attribute = "name"
	AttrRegion      Attribute = "region"
	AttrCategory    Attribute = "type"
	AttrDamage      Attribute = "damage"
	AttrRemembrance Attribute = "remembrance"
)

// Attributes is the fixed evaluation order.
var Attributes = []Attribute{AttrName, AttrRegion, AttrCategory, AttrDamage, AttrRemembrance}

// Status is the coarse state of the day's session.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Finished reports whether s is terminal.
func (s Status) Finished() bool { return s == StatusWon || s == StatusLost }

// Stats are the cumulative counters, updated once per concluded session.
type Stats struct {
	Played int `json:"played"`
	Wins   int `json:"wins"`
	Streak int `json:"streak"`
}

// Cell is one rendered attribute of a guess.
type Cell struct {
	Attribute Attribute `json:"attribute"`
	Display   string    `json:"display"`
	Mark      Mark      `json:"mark"`
}

// Row is one evaluated attempt.
type Row struct {
	Name  string `json:"name"`
	Cells []Cell `json:"cells"`
}

// Marks returns the per-attribute marks of r in order.
func (r Row) Marks() []Mark {
	out := make([]Mark, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = c.Mark
	}
	return out
}

// Outcome is the result of a guess submission.
// Accepted is false when the session was already finished (no-op).
type Outcome struct {
	Accepted  bool   `json:"accepted"`
	Row       *Row   `json:"row,omitempty"`
	Status    Status `json:"status"`
	Remaining int    `json:"remaining"`
	Answer    string `json:"answer,omitempty"`
}

// Snapshot is a read-only view of the current session.
// Answer is only populated once the session is finished.
type Snapshot struct {
	Day          int       `json:"day"`
	Label        string    `json:"label"`
	Date         string    `json:"date"`
	Status       Status    `json:"status"`
	Rows         []Row     `json:"rows"`
	Remaining    int       `json:"remaining"`
	Answer       string    `json:"answer,omitempty"`
	Stats        Stats     `json:"stats"`
	NextRollover time.Time `json:"nextRollover"`
	SecondsLeft  int64     `json:"secondsLeft"`
}

var (
	// ErrEmptyCatalog is returned when an engine is built without entries.
	ErrEmptyCatalog = errors.New("catalog is empty")
	// ErrNotLoaded is returned when a guess arrives before Load.
	ErrNotLoaded = errors.New("engine not loaded")
	// ErrUnknownGuess rejects input that matches no catalog entry.
	ErrUnknownGuess = errors.New("unknown boss")
	// ErrDuplicateGuess rejects an entry already guessed today.
	ErrDuplicateGuess = errors.New("boss already guessed")
	// ErrInProgress is returned when sharing before the session ends.
	ErrInProgress = errors.New("game still in progress")
)

// Message returns the player-facing text for a rejection error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrUnknownGuess):
		return "Not a valid boss name."
	case errors.Is(err, ErrDuplicateGuess):
		return "You already guessed that boss!"
	case errors.Is(err, ErrInProgress):
		return "Finish today's puzzle first."
	}
	return "Something went wrong."
}
