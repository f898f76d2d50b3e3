package engine

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/trackerhq/tracker/internal/model"
)

// VisibleCategories computes the ordered list of category groups to
// display for a date. A repository fetch failure returns a nil slice
// and the error; callers at the presentation edge degrade to an empty
// view rather than crashing.
func (s *Service) VisibleCategories(
	ctx context.Context,
	selectedDate time.Time,
	mode model.FilterMode,
	searchText string,
) ([]model.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.store.ListCompletionRecords(ctx)
	if err != nil {
		return nil, err
	}
	return visibleCategories(categories, records, selectedDate, mode, searchText, s.now()), nil
}

// Visible is VisibleCategories with the filter mode taken from the
// persisted preference.
func (s *Service) Visible(ctx context.Context, selectedDate time.Time, searchText string) ([]model.Category, error) {
	return s.VisibleCategories(ctx, selectedDate, s.filterMode(), searchText)
}

// visibleCategories is the pure visibility computation over an
// already-fetched snapshot.
//
// Per tracker, in order: weekday pruning against the selected date;
// one-shot suppression for event trackers (visible only while never
// completed, or on exactly the day they were completed); pinned
// extraction into the synthetic Pinned group; case-insensitive
// substring search; completed/uncompleted filtering against the
// selected day. Groups that end up empty are dropped. The "today" mode
// forces the selected date to the current day before anything else runs.
func visibleCategories(
	categories []model.Category,
	records []model.CompletionRecord,
	selectedDate time.Time,
	mode model.FilterMode,
	searchText string,
	now time.Time,
) []model.Category {
	if mode == model.FilterToday {
		selectedDate = now
	}
	day := model.DayOf(selectedDate)
	search := strings.ToLower(strings.TrimSpace(searchText))

	// Completed days per tracker.
	completedDays := make(map[string]map[time.Time]struct{})
	for _, rec := range records {
		days, ok := completedDays[rec.TrackerID]
		if !ok {
			days = make(map[time.Time]struct{})
			completedDays[rec.TrackerID] = days
		}
		days[model.DayOf(rec.Day)] = struct{}{}
	}

	var pinned []model.Tracker
	var visible []model.Category

	for _, category := range categories {
		var kept []model.Tracker
		for _, t := range category.Trackers {
			if !ScheduleMatches(t.Schedule, day) {
				continue
			}

			days := completedDays[t.ID]
			_, doneOnDay := days[day]

			// An event is used up once completed on any day: it stays
			// visible only on exactly that day.
			if !t.IsHabit() && len(days) > 0 && !doneOnDay {
				continue
			}

			if search != "" && !strings.Contains(strings.ToLower(t.Title), search) {
				continue
			}

			switch mode {
			case model.FilterCompleted:
				if !doneOnDay {
					continue
				}
			case model.FilterUncompleted:
				if doneOnDay {
					continue
				}
			}

			if t.Pinned {
				pinned = append(pinned, t)
				continue
			}
			kept = append(kept, t)
		}

		if len(kept) > 0 {
			visible = append(visible, model.Category{
				ID:        category.ID,
				Title:     category.Title,
				CreatedAt: category.CreatedAt,
				UpdatedAt: category.UpdatedAt,
				Trackers:  kept,
			})
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Title < visible[j].Title
	})

	if len(pinned) > 0 {
		visible = append([]model.Category{{
			Title:    model.PinnedCategoryTitle,
			Trackers: pinned,
		}}, visible...)
	}

	return visible
}
