package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackerhq/tracker/internal/model"
	"github.com/trackerhq/tracker/internal/store"
	"github.com/trackerhq/tracker/tests/testutil"
)

// newTestService wires a Service to an in-memory store with a fixed
// clock so "today" is stable across a test.
func newTestService(t *testing.T, today time.Time) (*Service, store.Store) {
	t.Helper()
	st := testutil.NewTestStore(t)
	svc := NewService(st, nil, func() time.Time { return today })
	return svc, st
}

// seedTracker creates a category (if missing) and a tracker inside it,
// returning the tracker's generated ID.
func seedTracker(t *testing.T, svc *Service, categoryTitle string, tracker model.Tracker) string {
	t.Helper()
	ctx := context.Background()

	err := svc.CreateCategory(ctx, categoryTitle)
	if err != nil && !errors.Is(err, model.ErrDuplicateTitle) {
		t.Fatalf("creating category: %v", err)
	}
	require.NoError(t, svc.AddTracker(ctx, tracker, categoryTitle))

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	for _, c := range categories {
		for _, tr := range c.Trackers {
			if tr.Title == tracker.Title {
				return tr.ID
			}
		}
	}
	t.Fatalf("tracker %q not found after creation", tracker.Title)
	return ""
}

func TestLedger_MarkCompleteIdempotent(t *testing.T) {
	svc, _ := newTestService(t, monday)
	ctx := context.Background()

	id := seedTracker(t, svc, "Health", habit("", "Walk", model.EveryDay()...))

	done, err := svc.IsComplete(ctx, id, monday)
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, svc.MarkComplete(ctx, id, monday))
	done, err = svc.IsComplete(ctx, id, monday)
	require.NoError(t, err)
	assert.True(t, done)

	// Marking the same day again never grows the count.
	require.NoError(t, svc.MarkComplete(ctx, id, monday))
	count, err := svc.CompletionCount(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLedger_MarkIncompleteIdempotent(t *testing.T) {
	svc, _ := newTestService(t, monday)
	ctx := context.Background()

	id := seedTracker(t, svc, "Health", habit("", "Walk", model.EveryDay()...))

	require.NoError(t, svc.MarkComplete(ctx, id, monday))
	require.NoError(t, svc.MarkIncomplete(ctx, id, monday))

	done, err := svc.IsComplete(ctx, id, monday)
	require.NoError(t, err)
	assert.False(t, done)

	// Unmarking a never-marked day is a no-op, not an error.
	require.NoError(t, svc.MarkIncomplete(ctx, id, monday))
	require.NoError(t, svc.MarkIncomplete(ctx, id, tuesday))
}

func TestLedger_CountsDistinctDays(t *testing.T) {
	svc, _ := newTestService(t, monday)
	ctx := context.Background()

	id := seedTracker(t, svc, "Health", habit("", "Walk", model.EveryDay()...))

	require.NoError(t, svc.MarkComplete(ctx, id, monday))
	require.NoError(t, svc.MarkComplete(ctx, id, tuesday))
	// Same day, different wall-clock time: still one day.
	require.NoError(t, svc.MarkComplete(ctx, id, monday.Add(9*time.Hour)))

	count, err := svc.CompletionCount(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestLedger_DayEqualityIgnoresTime(t *testing.T) {
	svc, _ := newTestService(t, monday)
	ctx := context.Background()

	id := seedTracker(t, svc, "Health", habit("", "Walk", model.EveryDay()...))

	require.NoError(t, svc.MarkComplete(ctx, id, monday.Add(8*time.Hour)))

	done, err := svc.IsComplete(ctx, id, monday.Add(22*time.Hour))
	require.NoError(t, err)
	assert.True(t, done)
}

func TestLedger_UnknownTrackerRejected(t *testing.T) {
	svc, _ := newTestService(t, monday)

	err := svc.MarkComplete(context.Background(), "no-such-id", monday)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestService_DeleteTrackerRemovesRecords(t *testing.T) {
	svc, st := newTestService(t, monday)
	ctx := context.Background()

	id := seedTracker(t, svc, "Health", habit("", "Walk", model.EveryDay()...))
	require.NoError(t, svc.MarkComplete(ctx, id, monday))
	require.NoError(t, svc.MarkComplete(ctx, id, tuesday))

	require.NoError(t, svc.DeleteTracker(ctx, id))

	records, err := st.ListCompletionRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestService_DuplicateCategoryRejected(t *testing.T) {
	svc, _ := newTestService(t, monday)
	ctx := context.Background()

	require.NoError(t, svc.CreateCategory(ctx, "Health"))
	err := svc.CreateCategory(ctx, "Health")
	assert.ErrorIs(t, err, model.ErrDuplicateTitle)

	// Case-sensitive uniqueness: a different casing is a new category.
	assert.NoError(t, svc.CreateCategory(ctx, "health"))
}

func TestService_DeleteCategoryCascades(t *testing.T) {
	svc, st := newTestService(t, monday)
	ctx := context.Background()

	id := seedTracker(t, svc, "Health", habit("", "Walk", model.EveryDay()...))
	require.NoError(t, svc.MarkComplete(ctx, id, monday))

	require.NoError(t, svc.DeleteCategory(ctx, "Health"))

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	records, err := st.ListCompletionRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestService_SubscribersNotifiedOnMutations(t *testing.T) {
	svc, _ := newTestService(t, monday)
	ctx := context.Background()

	var notified int
	svc.Subscribe(func() { notified++ })

	require.NoError(t, svc.CreateCategory(ctx, "Health"))
	assert.Equal(t, 1, notified)

	id := seedTracker(t, svc, "Health", habit("", "Walk", model.EveryDay()...))
	assert.Equal(t, 2, notified)

	require.NoError(t, svc.MarkComplete(ctx, id, monday))
	assert.Equal(t, 3, notified)

	// Reads do not notify.
	_, err := svc.Categories(ctx)
	require.NoError(t, err)
	_, err = svc.VisibleCategories(ctx, monday, model.FilterAll, "")
	require.NoError(t, err)
	assert.Equal(t, 3, notified)

	// Failed mutations do not notify.
	err = svc.CreateCategory(ctx, "Health")
	require.Error(t, err)
	assert.Equal(t, 3, notified)
}

func TestService_SetPinned(t *testing.T) {
	svc, _ := newTestService(t, monday)
	ctx := context.Background()

	id := seedTracker(t, svc, "Health", habit("", "Walk", model.EveryDay()...))
	require.NoError(t, svc.SetPinned(ctx, id, true))

	visible, err := svc.VisibleCategories(ctx, monday, model.FilterAll, "")
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, model.PinnedCategoryTitle, visible[0].Title)

	require.NoError(t, svc.SetPinned(ctx, id, false))
	visible, err = svc.VisibleCategories(ctx, monday, model.FilterAll, "")
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Health", visible[0].Title)
}

func TestService_MoveTracker(t *testing.T) {
	svc, _ := newTestService(t, monday)
	ctx := context.Background()

	require.NoError(t, svc.CreateCategory(ctx, "Later"))
	id := seedTracker(t, svc, "Health", habit("", "Walk", model.EveryDay()...))

	require.NoError(t, svc.MoveTracker(ctx, id, "Later"))

	visible, err := svc.VisibleCategories(ctx, monday, model.FilterAll, "")
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Later", visible[0].Title)
}

func TestService_VisibleUsesPersistedFilter(t *testing.T) {
	st := testutil.NewTestStore(t)
	pf := fixedPrefs{mode: model.FilterUncompleted}
	svc := NewService(st, pf, func() time.Time { return monday })
	ctx := context.Background()

	require.NoError(t, svc.CreateCategory(ctx, "Health"))
	require.NoError(t, svc.AddTracker(ctx, habit("", "Walk", model.EveryDay()...), "Health"))
	require.NoError(t, svc.AddTracker(ctx, habit("", "Water", model.EveryDay()...), "Health"))

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Len(t, categories[0].Trackers, 2)
	require.NoError(t, svc.MarkComplete(ctx, categories[0].Trackers[0].ID, monday))

	visible, err := svc.Visible(ctx, monday, "")
	require.NoError(t, err)
	require.Len(t, visible, 1)
	require.Len(t, visible[0].Trackers, 1)
	assert.Equal(t, categories[0].Trackers[1].ID, visible[0].Trackers[0].ID)
}

type fixedPrefs struct{ mode model.FilterMode }

func (p fixedPrefs) FilterMode() model.FilterMode { return p.mode }

func TestService_Statistics(t *testing.T) {
	svc, _ := newTestService(t, tuesday)
	ctx := context.Background()

	walk := seedTracker(t, svc, "Health", habit("", "Walk", model.EveryDay()...))
	water := seedTracker(t, svc, "Health", habit("", "Water", model.EveryDay()...))

	require.NoError(t, svc.MarkComplete(ctx, walk, monday))
	require.NoError(t, svc.MarkComplete(ctx, water, monday))
	require.NoError(t, svc.MarkComplete(ctx, walk, tuesday))

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TrackerCount)
	assert.Equal(t, 3, stats.CompletedTotal)
	assert.Equal(t, 1, stats.CompletedToday)
	assert.Equal(t, model.DayOf(monday), stats.BestDay)
	assert.Equal(t, 2, stats.BestDayCount)
}

func TestService_StatisticsEmpty(t *testing.T) {
	svc, _ := newTestService(t, monday)

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TrackerCount)
	assert.Zero(t, stats.CompletedTotal)
	assert.Zero(t, stats.BestDayCount)
}
