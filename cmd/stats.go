package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		stats, err := svc.Statistics(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(headerStyle.Render("Statistics"))
		fmt.Printf("  trackers:        %d\n", stats.TrackerCount)
		fmt.Printf("  completed total: %d\n", stats.CompletedTotal)
		fmt.Printf("  completed today: %d\n", stats.CompletedToday)
		if stats.BestDayCount > 0 {
			fmt.Printf("  best day:        %s (%d)\n",
				stats.BestDay.Format("2006-01-02"), stats.BestDayCount)
		}
		return nil
	},
}
