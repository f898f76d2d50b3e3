package engine

import (
	"time"

	"github.com/trackerhq/tracker/internal/model"
)

// ScheduleMatches reports whether a tracker's schedule includes the
// weekday that date falls on. Weekdays are numbered Monday=1 through
// Sunday=7; the date's native Sunday=0 is remapped to 7. Pure function,
// no side effects.
func ScheduleMatches(schedule model.Schedule, date time.Time) bool {
	return schedule.Contains(model.WeekdayOf(date))
}
