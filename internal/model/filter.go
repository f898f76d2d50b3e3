package model

import "fmt"

// FilterMode is the user-selected view filter applied on top of the
// date-based visibility computation.
type FilterMode string

const (
	FilterAll         FilterMode = "all"
	FilterToday       FilterMode = "today"
	FilterCompleted   FilterMode = "completed"
	FilterUncompleted FilterMode = "uncompleted"
)

// ParseFilterMode validates a stored or user-supplied mode string.
func ParseFilterMode(s string) (FilterMode, error) {
	switch FilterMode(s) {
	case FilterAll, FilterToday, FilterCompleted, FilterUncompleted:
		return FilterMode(s), nil
	}
	return "", fmt.Errorf("unknown filter mode %q", s)
}
