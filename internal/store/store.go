package store

import (
	"context"
	"time"

	"github.com/trackerhq/tracker/internal/model"
)

// Store defines the persistence interface for categories, trackers, and
// completion records. All operations are synchronous; the engine issues
// one mutation at a time.
type Store interface {
	// === Categories ===

	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, title string) error
	RenameCategory(ctx context.Context, oldTitle, newTitle string) error
	DeleteCategory(ctx context.Context, title string) error

	// === Trackers ===

	CreateTracker(ctx context.Context, t model.Tracker, categoryTitle string) error
	UpdateTracker(ctx context.Context, t model.Tracker) error
	MoveTracker(ctx context.Context, trackerID, categoryTitle string) error
	DeleteTracker(ctx context.Context, trackerID string) error
	GetTrackerByID(ctx context.Context, trackerID string) (*model.Tracker, error)

	// === Completion records ===

	ListCompletionRecords(ctx context.Context) ([]model.CompletionRecord, error)
	CreateCompletionRecord(ctx context.Context, rec model.CompletionRecord) error
	DeleteCompletionRecord(ctx context.Context, rec model.CompletionRecord) error
	HasCompletionRecord(ctx context.Context, trackerID string, day time.Time) (bool, error)
	CompletionCount(ctx context.Context, trackerID string) (int, error)
	DeleteRecordsForTracker(ctx context.Context, trackerID string) error
}
