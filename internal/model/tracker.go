package model

import "time"

// Tracker kind constants.
const (
	KindHabit = "habit"
	KindEvent = "event"
)

// Tracker is a user-defined habit or one-off event being tracked.
type Tracker struct {
	ID       string   `json:"id" db:"id"`
	Title    string   `json:"title" db:"title"`
	Color    string   `json:"color" db:"color"`
	Emoji    string   `json:"emoji" db:"emoji"`
	Schedule Schedule `json:"schedule" db:"-"`
	Kind     string   `json:"kind" db:"kind"`
	Pinned   bool     `json:"pinned" db:"pinned"`

	// CategoryID is the owning category. Populated on reads; reassignment
	// goes through Store.MoveTracker rather than UpdateTracker.
	CategoryID string `json:"category_id" db:"category_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsHabit reports whether the tracker recurs weekly rather than being
// a one-shot event.
func (t Tracker) IsHabit() bool {
	return t.Kind == KindHabit
}
