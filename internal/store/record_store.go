package store

import (
	"context"
	"fmt"
	"time"

	"github.com/trackerhq/tracker/internal/model"
)

// ListCompletionRecords retrieves every completion record.
func (s *SQLiteStore) ListCompletionRecords(ctx context.Context) ([]model.CompletionRecord, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT tracker_id, day FROM completion_records ORDER BY day, tracker_id")
	if err != nil {
		return nil, fmt.Errorf("querying completion records: %w", err)
	}
	defer rows.Close()

	var records []model.CompletionRecord
	for rows.Next() {
		var rec model.CompletionRecord
		var day time.Time
		if err := rows.Scan(&rec.TrackerID, &day); err != nil {
			logDecodeErr(fmt.Errorf("scanning completion record row: %w", err))
			continue
		}
		rec.Day = model.DayOf(day)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CreateCompletionRecord marks a tracker complete for a day. Inserting
// an existing (tracker, day) pair is a no-op; the primary key keeps set
// semantics.
func (s *SQLiteStore) CreateCompletionRecord(ctx context.Context, rec model.CompletionRecord) error {
	var exists int
	err := s.db.GetContext(ctx, &exists,
		"SELECT COUNT(*) FROM trackers WHERE id = ?", rec.TrackerID)
	if err != nil {
		return fmt.Errorf("checking tracker %s: %w", rec.TrackerID, err)
	}
	if exists == 0 {
		return fmt.Errorf("tracker %s: %w", rec.TrackerID, model.ErrNotFound)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO completion_records (tracker_id, day)
		VALUES (?, ?)`,
		rec.TrackerID, model.DayOf(rec.Day),
	)
	if err != nil {
		return fmt.Errorf("creating completion record for tracker %s: %w", rec.TrackerID, err)
	}
	return nil
}

// DeleteCompletionRecord unmarks a tracker for a day. Deleting an
// absent record is a no-op so the operation is idempotent.
func (s *SQLiteStore) DeleteCompletionRecord(ctx context.Context, rec model.CompletionRecord) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM completion_records WHERE tracker_id = ? AND day = ?",
		rec.TrackerID, model.DayOf(rec.Day),
	)
	if err != nil {
		return fmt.Errorf("deleting completion record for tracker %s: %w", rec.TrackerID, err)
	}
	return nil
}

// HasCompletionRecord reports whether a record exists for the exact
// (tracker, day) pair.
func (s *SQLiteStore) HasCompletionRecord(ctx context.Context, trackerID string, day time.Time) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM completion_records WHERE tracker_id = ? AND day = ?",
		trackerID, model.DayOf(day),
	)
	if err != nil {
		return false, fmt.Errorf("checking completion record for tracker %s: %w", trackerID, err)
	}
	return count > 0, nil
}

// CompletionCount returns the lifetime number of completed days for a
// tracker.
func (s *SQLiteStore) CompletionCount(ctx context.Context, trackerID string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM completion_records WHERE tracker_id = ?", trackerID)
	if err != nil {
		return 0, fmt.Errorf("counting completion records for tracker %s: %w", trackerID, err)
	}
	return count, nil
}

// DeleteRecordsForTracker removes every completion record for a tracker.
func (s *SQLiteStore) DeleteRecordsForTracker(ctx context.Context, trackerID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM completion_records WHERE tracker_id = ?", trackerID)
	if err != nil {
		return fmt.Errorf("deleting completion records for tracker %s: %w", trackerID, err)
	}
	return nil
}
