package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trackerhq/tracker/internal/model"
)

// CreateTracker inserts a new tracker into the named category.
// Generates a UUID if ID is empty.
func (s *SQLiteStore) CreateTracker(ctx context.Context, t model.Tracker, categoryTitle string) error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("creating tracker: %w", model.ErrEmptyTitle)
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Kind == "" {
		t.Kind = model.KindHabit
	}
	if t.Kind != model.KindHabit && t.Kind != model.KindEvent {
		return fmt.Errorf("creating tracker: unknown kind %q", t.Kind)
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	categoryID, err := s.categoryIDByTitle(ctx, categoryTitle)
	if err != nil {
		return err
	}

	scheduleJSON, err := marshalSchedule(t.Schedule)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO trackers (
			id, category_id, title, color, emoji,
			schedule, kind, pinned, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, categoryID, t.Title, t.Color, t.Emoji,
		scheduleJSON, t.Kind, boolToInt(t.Pinned), t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating tracker: %w", err)
	}
	return nil
}

// UpdateTracker updates an existing tracker's editable fields (title,
// color, emoji, schedule, kind, pinned). Category reassignment goes
// through MoveTracker.
func (s *SQLiteStore) UpdateTracker(ctx context.Context, t model.Tracker) error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("updating tracker: %w", model.ErrEmptyTitle)
	}
	if t.Kind != model.KindHabit && t.Kind != model.KindEvent {
		return fmt.Errorf("updating tracker: unknown kind %q", t.Kind)
	}

	scheduleJSON, err := marshalSchedule(t.Schedule)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE trackers SET
			title = ?, color = ?, emoji = ?,
			schedule = ?, kind = ?, pinned = ?, updated_at = ?
		WHERE id = ?`,
		t.Title, t.Color, t.Emoji,
		scheduleJSON, t.Kind, boolToInt(t.Pinned), time.Now().UTC(),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating tracker %s: %w", t.ID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("tracker %s: %w", t.ID, model.ErrNotFound)
	}
	return nil
}

// MoveTracker reassigns a tracker to a different category.
func (s *SQLiteStore) MoveTracker(ctx context.Context, trackerID, categoryTitle string) error {
	categoryID, err := s.categoryIDByTitle(ctx, categoryTitle)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE trackers SET category_id = ?, updated_at = ? WHERE id = ?",
		categoryID, time.Now().UTC(), trackerID,
	)
	if err != nil {
		return fmt.Errorf("moving tracker %s: %w", trackerID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("tracker %s: %w", trackerID, model.ErrNotFound)
	}
	return nil
}

// DeleteTracker removes a tracker by ID. Cascades to completion_records.
func (s *SQLiteStore) DeleteTracker(ctx context.Context, trackerID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM trackers WHERE id = ?", trackerID)
	if err != nil {
		return fmt.Errorf("deleting tracker %s: %w", trackerID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("tracker %s: %w", trackerID, model.ErrNotFound)
	}
	return nil
}

// GetTrackerByID retrieves a single tracker by ID.
func (s *SQLiteStore) GetTrackerByID(ctx context.Context, trackerID string) (*model.Tracker, error) {
	row := s.db.QueryRowxContext(ctx,
		"SELECT * FROM trackers WHERE id = ?", trackerID)

	t, err := scanTracker(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tracker %s: %w", trackerID, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting tracker %s: %w", trackerID, err)
	}
	return &t, nil
}
