package model

import "time"

// Weekday numbers days Monday-first: Monday=1 through Sunday=7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = map[Weekday]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// Valid reports whether w is within the Monday..Sunday range.
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	if name, ok := weekdayNames[w]; ok {
		return name
	}
	return "Weekday(?)"
}

// WeekdayOf derives the Monday-first weekday number for a date.
// Go's time package numbers Sunday as 0; it is remapped to 7.
func WeekdayOf(t time.Time) Weekday {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return Weekday(wd)
}

// Schedule is the set of weekdays a tracker is due on.
type Schedule []Weekday

// Contains reports whether the schedule includes the given weekday.
func (s Schedule) Contains(w Weekday) bool {
	for _, day := range s {
		if day == w {
			return true
		}
	}
	return false
}

// EveryDay returns a schedule covering all seven weekdays.
func EveryDay() Schedule {
	return Schedule{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}
