package model

import "time"

// CompletionRecord marks a tracker as completed on a specific calendar
// day. At most one record exists per (TrackerID, Day) pair.
type CompletionRecord struct {
	TrackerID string    `json:"tracker_id" db:"tracker_id"`
	Day       time.Time `json:"day" db:"day"`
}

// DayOf strips the time-of-day from t, returning midnight UTC on the
// same calendar day. All record days pass through here so day equality
// is plain time equality.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}
