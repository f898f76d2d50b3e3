package engine

import (
	"context"
	"sync"
	"time"

	"github.com/trackerhq/tracker/internal/model"
	"github.com/trackerhq/tracker/internal/store"
)

// Preferences is the slice of the preference store the engine consumes:
// the persisted view filter. The full preference surface lives in
// internal/prefs.
type Preferences interface {
	FilterMode() model.FilterMode
}

// Service is the tracker visibility and completion engine. It is an
// explicitly constructed object; the store and preference store are
// injected rather than reached through globals.
type Service struct {
	store store.Store
	prefs Preferences
	now   func() time.Time

	mu          sync.Mutex
	subscribers []func()
}

// NewService builds a Service. A nil now falls back to time.Now; a nil
// prefs pins the filter mode to "all".
func NewService(st store.Store, prefs Preferences, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: st, prefs: prefs, now: now}
}

// Subscribe registers a callback invoked after every successful
// mutation. Reads never notify. There is no unsubscribe; subscribers
// live as long as the service.
func (s *Service) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Service) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// filterMode resolves the persisted view filter.
func (s *Service) filterMode() model.FilterMode {
	if s.prefs == nil {
		return model.FilterAll
	}
	mode := s.prefs.FilterMode()
	if _, err := model.ParseFilterMode(string(mode)); err != nil {
		return model.FilterAll
	}
	return mode
}

// === Categories ===

// Categories returns all persisted categories with nested trackers.
func (s *Service) Categories(ctx context.Context) ([]model.Category, error) {
	return s.store.ListCategories(ctx)
}

// CreateCategory adds a new category. Duplicate titles are rejected
// with model.ErrDuplicateTitle.
func (s *Service) CreateCategory(ctx context.Context, title string) error {
	if err := s.store.CreateCategory(ctx, title); err != nil {
		return err
	}
	s.notify()
	return nil
}

// RenameCategory changes a category's title.
func (s *Service) RenameCategory(ctx context.Context, oldTitle, newTitle string) error {
	if err := s.store.RenameCategory(ctx, oldTitle, newTitle); err != nil {
		return err
	}
	s.notify()
	return nil
}

// DeleteCategory removes a category. Its trackers and their completion
// records are deleted with it.
func (s *Service) DeleteCategory(ctx context.Context, title string) error {
	if err := s.store.DeleteCategory(ctx, title); err != nil {
		return err
	}
	s.notify()
	return nil
}

// === Trackers ===

// AddTracker creates a tracker in the named category.
func (s *Service) AddTracker(ctx context.Context, t model.Tracker, categoryTitle string) error {
	if err := s.store.CreateTracker(ctx, t, categoryTitle); err != nil {
		return err
	}
	s.notify()
	return nil
}

// UpdateTracker edits a tracker in place.
func (s *Service) UpdateTracker(ctx context.Context, t model.Tracker) error {
	if err := s.store.UpdateTracker(ctx, t); err != nil {
		return err
	}
	s.notify()
	return nil
}

// MoveTracker reassigns a tracker to a different category.
func (s *Service) MoveTracker(ctx context.Context, trackerID, categoryTitle string) error {
	if err := s.store.MoveTracker(ctx, trackerID, categoryTitle); err != nil {
		return err
	}
	s.notify()
	return nil
}

// SetPinned flips a tracker's pinned flag.
func (s *Service) SetPinned(ctx context.Context, trackerID string, pinned bool) error {
	t, err := s.store.GetTrackerByID(ctx, trackerID)
	if err != nil {
		return err
	}
	if t.Pinned == pinned {
		return nil
	}
	t.Pinned = pinned
	if err := s.store.UpdateTracker(ctx, *t); err != nil {
		return err
	}
	s.notify()
	return nil
}

// DeleteTracker removes a tracker and every completion record for it.
func (s *Service) DeleteTracker(ctx context.Context, trackerID string) error {
	if err := s.store.DeleteRecordsForTracker(ctx, trackerID); err != nil {
		return err
	}
	if err := s.store.DeleteTracker(ctx, trackerID); err != nil {
		return err
	}
	s.notify()
	return nil
}
