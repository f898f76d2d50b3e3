package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trackerhq/tracker/internal/model"
)

var (
	trackerCategory string
	trackerKind     string
	trackerColor    string
	trackerEmoji    string
	trackerDays     string
	trackerTitle    string
)

var trackerCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Manage trackers",
}

var trackerAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a tracker",
	Long: `Create a habit or event tracker in a category. The schedule is a
comma-separated list of weekday numbers, Monday=1 through Sunday=7.
Events default to every day; mark them done once and they disappear
from other days.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, pf, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		category := trackerCategory
		if category == "" {
			category = pf.LastCategory()
		}
		if category == "" {
			return fmt.Errorf("no category given and no last-used category; pass --category")
		}

		schedule, err := parseSchedule(trackerDays)
		if err != nil {
			return err
		}
		if len(schedule) == 0 {
			schedule = model.EveryDay()
		}

		t := model.Tracker{
			Title:    args[0],
			Color:    trackerColor,
			Emoji:    trackerEmoji,
			Schedule: schedule,
			Kind:     trackerKind,
		}
		if err := svc.AddTracker(context.Background(), t, category); err != nil {
			return err
		}
		if err := pf.SetLastCategory(category); err != nil {
			return err
		}
		fmt.Printf("created %s %q in %q\n", t.Kind, t.Title, category)
		return nil
	},
}

var trackerEditCmd = &cobra.Command{
	Use:   "edit <tracker-id>",
	Short: "Edit a tracker's title, color, emoji, or schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		ctx := context.Background()
		t, err := findTracker(ctx, svc, args[0])
		if err != nil {
			return err
		}

		if trackerTitle != "" {
			t.Title = trackerTitle
		}
		if trackerColor != "" {
			t.Color = trackerColor
		}
		if trackerEmoji != "" {
			t.Emoji = trackerEmoji
		}
		if trackerDays != "" {
			schedule, err := parseSchedule(trackerDays)
			if err != nil {
				return err
			}
			t.Schedule = schedule
		}

		if err := svc.UpdateTracker(ctx, *t); err != nil {
			return err
		}
		fmt.Printf("updated tracker %q\n", t.Title)
		return nil
	},
}

var trackerMvCmd = &cobra.Command{
	Use:   "mv <tracker-id> <category-title>",
	Short: "Move a tracker to another category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		ctx := context.Background()
		t, err := findTracker(ctx, svc, args[0])
		if err != nil {
			return err
		}
		if err := svc.MoveTracker(ctx, t.ID, args[1]); err != nil {
			return err
		}
		fmt.Printf("moved %q to %q\n", t.Title, args[1])
		return nil
	},
}

var trackerRmCmd = &cobra.Command{
	Use:   "rm <tracker-id>",
	Short: "Delete a tracker and its completion records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		ctx := context.Background()
		t, err := findTracker(ctx, svc, args[0])
		if err != nil {
			return err
		}
		if err := svc.DeleteTracker(ctx, t.ID); err != nil {
			return err
		}
		fmt.Printf("deleted tracker %q\n", t.Title)
		return nil
	},
}

var trackerPinCmd = &cobra.Command{
	Use:   "pin <tracker-id>",
	Short: "Pin a tracker to the Pinned group",
	Args:  cobra.ExactArgs(1),
	RunE:  setPinned(true),
}

var trackerUnpinCmd = &cobra.Command{
	Use:   "unpin <tracker-id>",
	Short: "Return a tracker to its category group",
	Args:  cobra.ExactArgs(1),
	RunE:  setPinned(false),
}

func setPinned(pinned bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		svc, _, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		ctx := context.Background()
		t, err := findTracker(ctx, svc, args[0])
		if err != nil {
			return err
		}
		if err := svc.SetPinned(ctx, t.ID, pinned); err != nil {
			return err
		}
		if pinned {
			fmt.Printf("pinned %q\n", t.Title)
		} else {
			fmt.Printf("unpinned %q\n", t.Title)
		}
		return nil
	}
}

// parseSchedule parses "1,3,5" into a schedule.
func parseSchedule(s string) (model.Schedule, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var schedule model.Schedule
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid weekday %q", part)
		}
		w := model.Weekday(n)
		if !w.Valid() {
			return nil, fmt.Errorf("weekday %d out of range 1-7", n)
		}
		if !schedule.Contains(w) {
			schedule = append(schedule, w)
		}
	}
	return schedule, nil
}

func init() {
	trackerAddCmd.Flags().StringVarP(&trackerCategory, "category", "c", "", "category title (default: last used)")
	trackerAddCmd.Flags().StringVarP(&trackerKind, "kind", "k", model.KindHabit, "tracker kind: habit or event")
	trackerAddCmd.Flags().StringVar(&trackerColor, "color", "", "color token")
	trackerAddCmd.Flags().StringVar(&trackerEmoji, "emoji", "", "emoji")
	trackerAddCmd.Flags().StringVarP(&trackerDays, "days", "d", "", "schedule weekdays, e.g. 1,3,5 (default: every day)")

	trackerEditCmd.Flags().StringVar(&trackerTitle, "title", "", "new title")
	trackerEditCmd.Flags().StringVar(&trackerColor, "color", "", "new color token")
	trackerEditCmd.Flags().StringVar(&trackerEmoji, "emoji", "", "new emoji")
	trackerEditCmd.Flags().StringVarP(&trackerDays, "days", "d", "", "new schedule weekdays")

	trackerCmd.AddCommand(trackerAddCmd)
	trackerCmd.AddCommand(trackerEditCmd)
	trackerCmd.AddCommand(trackerMvCmd)
	trackerCmd.AddCommand(trackerRmCmd)
	trackerCmd.AddCommand(trackerPinCmd)
	trackerCmd.AddCommand(trackerUnpinCmd)
}
