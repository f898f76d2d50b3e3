package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/trackerhq/tracker/internal/model"
)

// SQLiteStore implements the Store interface using a local SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Enable foreign keys; record cascades depend on it.
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	// Check if schema_version table exists.
	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// scanTracker scans a tracker row from a sqlx.Rows result set. A row
// whose schedule or kind cannot be reconstructed yields a DecodeError;
// callers skip such rows rather than aborting the fetch.
func scanTracker(rows interface{ Scan(dest ...interface{}) error }) (model.Tracker, error) {
	var (
		t            model.Tracker
		scheduleJSON string
		pinnedInt    int
		createdAt    time.Time
		updatedAt    time.Time
	)

	err := rows.Scan(
		&t.ID, &t.CategoryID, &t.Title, &t.Color, &t.Emoji,
		&scheduleJSON, &t.Kind, &pinnedInt,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return model.Tracker{}, fmt.Errorf("scanning tracker row: %w", err)
	}

	t.Pinned = pinnedInt != 0
	t.CreatedAt = createdAt
	t.UpdatedAt = updatedAt

	if err := json.Unmarshal([]byte(scheduleJSON), &t.Schedule); err != nil {
		return model.Tracker{}, &model.DecodeError{Entity: "tracker", ID: t.ID, Err: err}
	}
	for _, w := range t.Schedule {
		if !w.Valid() {
			return model.Tracker{}, &model.DecodeError{
				Entity: "tracker", ID: t.ID,
				Err: fmt.Errorf("weekday %d out of range", w),
			}
		}
	}
	if t.Kind != model.KindHabit && t.Kind != model.KindEvent {
		return model.Tracker{}, &model.DecodeError{
			Entity: "tracker", ID: t.ID,
			Err: fmt.Errorf("unknown kind %q", t.Kind),
		}
	}

	return t, nil
}

// logDecodeErr logs a skipped row. One corrupt record must not blank
// the whole list.
func logDecodeErr(err error) {
	var decErr *model.DecodeError
	if errors.As(err, &decErr) {
		log.Printf("skipping corrupt %s %s: %v", decErr.Entity, decErr.ID, decErr.Err)
		return
	}
	log.Printf("skipping unreadable row: %v", err)
}

// marshalSchedule serializes a schedule as a JSON integer array for the
// schedule TEXT column.
func marshalSchedule(s model.Schedule) (string, error) {
	if s == nil {
		s = model.Schedule{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshaling schedule: %w", err)
	}
	return string(b), nil
}

// categoryIDByTitle resolves a category's ID from its unique title.
func (s *SQLiteStore) categoryIDByTitle(ctx context.Context, title string) (string, error) {
	var id string
	err := s.db.GetContext(ctx, &id, "SELECT id FROM categories WHERE title = ?", title)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("category %q: %w", title, model.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("looking up category %q: %w", title, err)
	}
	return id, nil
}

// boolToInt converts a boolean to 0 or 1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
