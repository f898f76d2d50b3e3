package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/trackerhq/tracker/internal/engine"
	"github.com/trackerhq/tracker/internal/model"
)

// findTracker resolves a tracker by full ID, unique ID prefix, or exact
// title.
func findTracker(ctx context.Context, svc *engine.Service, ref string) (*model.Tracker, error) {
	categories, err := svc.Categories(ctx)
	if err != nil {
		return nil, err
	}

	var matches []model.Tracker
	for _, category := range categories {
		for _, t := range category.Trackers {
			if t.ID == ref || t.Title == ref || strings.HasPrefix(t.ID, ref) {
				matches = append(matches, t)
			}
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("tracker %q: %w", ref, model.ErrNotFound)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("tracker %q is ambiguous (%d matches)", ref, len(matches))
	}
}
