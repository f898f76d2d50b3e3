package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var completeDate string

var completeCmd = &cobra.Command{
	Use:   "complete <tracker-id>",
	Short: "Mark a tracker done for a day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		day, err := parseDay(completeDate)
		if err != nil {
			return err
		}

		ctx := context.Background()
		t, err := findTracker(ctx, svc, args[0])
		if err != nil {
			return err
		}
		if err := svc.MarkComplete(ctx, t.ID, day); err != nil {
			return err
		}

		count, err := svc.CompletionCount(ctx, t.ID)
		if err != nil {
			return err
		}
		fmt.Printf("completed %q (%d days)\n", t.Title, count)
		return nil
	},
}

var uncompleteCmd = &cobra.Command{
	Use:   "uncomplete <tracker-id>",
	Short: "Unmark a tracker for a day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		day, err := parseDay(completeDate)
		if err != nil {
			return err
		}

		ctx := context.Background()
		t, err := findTracker(ctx, svc, args[0])
		if err != nil {
			return err
		}
		if err := svc.MarkIncomplete(ctx, t.ID, day); err != nil {
			return err
		}
		fmt.Printf("unmarked %q\n", t.Title)
		return nil
	},
}

func init() {
	completeCmd.Flags().StringVar(&completeDate, "date", "", "day to mark (YYYY-MM-DD, default today)")
	uncompleteCmd.Flags().StringVar(&completeDate, "date", "", "day to unmark (YYYY-MM-DD, default today)")
}
