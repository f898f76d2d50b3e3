package model

import "time"

// PinnedCategoryTitle names the synthetic group materialized at query
// time from pinned trackers. It is never persisted.
const PinnedCategoryTitle = "Pinned"

// Category is a named grouping of trackers. Titles are unique and
// case-sensitive.
type Category struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Trackers is populated by queries that join with trackers.
	Trackers []Tracker `json:"trackers,omitempty" db:"-"`
}
