package engine

import (
	"context"
	"time"

	"github.com/trackerhq/tracker/internal/model"
)

// Statistics is an aggregate view over the ledger.
type Statistics struct {
	// TrackerCount is the number of persisted trackers.
	TrackerCount int

	// CompletedTotal is the lifetime number of completion records.
	CompletedTotal int

	// CompletedToday is the number of trackers completed on the
	// current day.
	CompletedToday int

	// BestDay is the day with the most completions, with its count.
	// Zero when the ledger is empty.
	BestDay      time.Time
	BestDayCount int
}

// Statistics aggregates the ledger and tracker set.
func (s *Service) Statistics(ctx context.Context) (Statistics, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return Statistics{}, err
	}
	records, err := s.store.ListCompletionRecords(ctx)
	if err != nil {
		return Statistics{}, err
	}

	var stats Statistics
	for _, category := range categories {
		stats.TrackerCount += len(category.Trackers)
	}

	today := model.DayOf(s.now())
	perDay := make(map[time.Time]int)
	for _, rec := range records {
		day := model.DayOf(rec.Day)
		stats.CompletedTotal++
		if day.Equal(today) {
			stats.CompletedToday++
		}
		perDay[day]++
	}

	for day, count := range perDay {
		if count > stats.BestDayCount ||
			(count == stats.BestDayCount && day.Before(stats.BestDay)) {
			stats.BestDay = day
			stats.BestDayCount = count
		}
	}

	return stats, nil
}
