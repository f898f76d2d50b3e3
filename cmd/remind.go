package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/trackerhq/tracker/internal/model"
	"github.com/trackerhq/tracker/internal/remind"
)

var (
	remindAt    string
	remindEvery time.Duration
	remindOnce  bool
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Watch for due, uncompleted trackers",
	Long: `Periodically check which trackers are scheduled for today and not
yet completed, and print them. Runs until interrupted. With --once,
checks a single time and exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		notify := func(due []model.Tracker) {
			fmt.Printf("%s: %d tracker(s) still due today\n",
				time.Now().Format("15:04"), len(due))
			for _, t := range due {
				fmt.Printf("  %s %s\n", t.Emoji, t.Title)
			}
		}

		r := remind.New(svc, time.Local, notify, nil)

		if remindOnce {
			r.Run()
			return nil
		}

		if remindAt != "" {
			if _, err := r.ScheduleDaily(remindAt); err != nil {
				return err
			}
		} else {
			if _, err := r.ScheduleInterval(remindEvery); err != nil {
				return err
			}
		}

		r.Start()
		defer r.Stop()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		return nil
	},
}

func init() {
	remindCmd.Flags().StringVar(&remindAt, "at", "", "daily check time (HH:MM)")
	remindCmd.Flags().DurationVar(&remindEvery, "every", time.Hour, "check interval when --at is not set")
	remindCmd.Flags().BoolVar(&remindOnce, "once", false, "check once and exit")
}
