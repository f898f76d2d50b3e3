package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trackerhq/tracker/internal/model"
)

// ListCategories retrieves all categories with their trackers nested,
// ordered by title ascending. Trackers within a category keep insertion
// order. Corrupt tracker rows are logged and skipped.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT * FROM categories ORDER BY title")
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		err := rows.Scan(&c.ID, &c.Title, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range categories {
		trackers, err := s.trackersForCategory(ctx, categories[i].ID)
		if err != nil {
			return nil, fmt.Errorf("loading trackers for category %q: %w",
				categories[i].Title, err)
		}
		categories[i].Trackers = trackers
	}

	return categories, nil
}

// CreateCategory inserts a new category. A duplicate title is rejected
// with ErrDuplicateTitle.
func (s *SQLiteStore) CreateCategory(ctx context.Context, title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("creating category: %w", model.ErrEmptyTitle)
	}

	var existing int
	err := s.db.GetContext(ctx, &existing,
		"SELECT COUNT(*) FROM categories WHERE title = ?", title)
	if err != nil {
		return fmt.Errorf("checking category title %q: %w", title, err)
	}
	if existing > 0 {
		return fmt.Errorf("creating category %q: %w", title, model.ErrDuplicateTitle)
	}

	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO categories (id, title, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		uuid.New().String(), title, now, now,
	)
	if err != nil {
		return fmt.Errorf("creating category %q: %w", title, err)
	}
	return nil
}

// RenameCategory changes a category's title. The new title must not
// collide with an existing one.
func (s *SQLiteStore) RenameCategory(ctx context.Context, oldTitle, newTitle string) error {
	if strings.TrimSpace(newTitle) == "" {
		return fmt.Errorf("renaming category: %w", model.ErrEmptyTitle)
	}
	if oldTitle != newTitle {
		var existing int
		err := s.db.GetContext(ctx, &existing,
			"SELECT COUNT(*) FROM categories WHERE title = ?", newTitle)
		if err != nil {
			return fmt.Errorf("checking category title %q: %w", newTitle, err)
		}
		if existing > 0 {
			return fmt.Errorf("renaming category to %q: %w", newTitle, model.ErrDuplicateTitle)
		}
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE categories SET title = ?, updated_at = ? WHERE title = ?",
		newTitle, time.Now().UTC(), oldTitle,
	)
	if err != nil {
		return fmt.Errorf("renaming category %q: %w", oldTitle, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("category %q: %w", oldTitle, model.ErrNotFound)
	}
	return nil
}

// DeleteCategory removes a category by title. Contained trackers and
// their completion records are deleted by cascade.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, title string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM categories WHERE title = ?", title)
	if err != nil {
		return fmt.Errorf("deleting category %q: %w", title, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("category %q: %w", title, model.ErrNotFound)
	}
	return nil
}

// trackersForCategory loads a category's trackers in insertion order.
func (s *SQLiteStore) trackersForCategory(ctx context.Context, categoryID string) ([]model.Tracker, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT * FROM trackers WHERE category_id = ? ORDER BY created_at, rowid",
		categoryID)
	if err != nil {
		return nil, fmt.Errorf("querying trackers: %w", err)
	}
	defer rows.Close()

	var trackers []model.Tracker
	for rows.Next() {
		t, err := scanTracker(rows)
		if err != nil {
			logDecodeErr(err)
			continue
		}
		trackers = append(trackers, t)
	}
	return trackers, rows.Err()
}
