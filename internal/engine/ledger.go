package engine

import (
	"context"
	"time"

	"github.com/trackerhq/tracker/internal/model"
)

// IsComplete reports whether a completion record exists for the exact
// (tracker, day) pair. Day comparison is by calendar day, not
// wall-clock.
func (s *Service) IsComplete(ctx context.Context, trackerID string, day time.Time) (bool, error) {
	return s.store.HasCompletionRecord(ctx, trackerID, day)
}

// MarkComplete records a tracker as done for a day. Marking an already
// complete day is a no-op; the count never grows from repeats. The
// write persists before returning; a failed write propagates to the
// caller.
func (s *Service) MarkComplete(ctx context.Context, trackerID string, day time.Time) error {
	rec := model.CompletionRecord{TrackerID: trackerID, Day: model.DayOf(day)}
	if err := s.store.CreateCompletionRecord(ctx, rec); err != nil {
		return err
	}
	s.notify()
	return nil
}

// MarkIncomplete removes the completion record for a day. Unmarking a
// day that was never marked is a no-op.
func (s *Service) MarkIncomplete(ctx context.Context, trackerID string, day time.Time) error {
	rec := model.CompletionRecord{TrackerID: trackerID, Day: model.DayOf(day)}
	if err := s.store.DeleteCompletionRecord(ctx, rec); err != nil {
		return err
	}
	s.notify()
	return nil
}

// CompletionCount returns the lifetime number of days a tracker was
// completed on. This is the day count shown next to a tracker; it is a
// total, not a consecutive streak.
func (s *Service) CompletionCount(ctx context.Context, trackerID string) (int, error) {
	return s.store.CompletionCount(ctx, trackerID)
}

// Records returns every completion record in the ledger.
func (s *Service) Records(ctx context.Context) ([]model.CompletionRecord, error) {
	return s.store.ListCompletionRecords(ctx)
}
