package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/trackerhq/tracker/internal/model"
)

var (
	listDate   string
	listSearch string
	listMode   string
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	pinnedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show visible trackers for a date",
	Long: `Show the trackers due on a date, grouped by category. Pinned
trackers appear first in their own group. The persisted filter mode
applies unless overridden with --filter.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, pf, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		day, err := parseDay(listDate)
		if err != nil {
			return err
		}

		mode := pf.FilterMode()
		if listMode != "" {
			mode, err = model.ParseFilterMode(listMode)
			if err != nil {
				return err
			}
		}

		ctx := context.Background()
		groups, err := svc.VisibleCategories(ctx, day, mode, listSearch)
		if err != nil {
			// Degrade to an empty view; the failure is a diagnostic,
			// not a crash.
			log.Printf("failed to load trackers: %v", err)
			groups = nil
		}

		if len(groups) == 0 {
			fmt.Println(dimStyle.Render("nothing to track"))
			return nil
		}

		for _, group := range groups {
			style := headerStyle
			if group.Title == model.PinnedCategoryTitle {
				style = pinnedStyle
			}
			fmt.Println(style.Render(group.Title))
			for _, t := range group.Trackers {
				done, err := svc.IsComplete(ctx, t.ID, day)
				if err != nil {
					log.Printf("failed to check completion for %s: %v", t.ID, err)
				}
				count, err := svc.CompletionCount(ctx, t.ID)
				if err != nil {
					log.Printf("failed to count completions for %s: %v", t.ID, err)
				}

				mark := "[ ]"
				if done {
					mark = doneStyle.Render("[x]")
				}
				fmt.Printf("  %s %s %s %s\n",
					mark, t.Emoji, t.Title,
					dimStyle.Render(fmt.Sprintf("(%s, %d days)", shortID(t.ID), count)),
				)
			}
		}
		return nil
	},
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	listCmd.Flags().StringVar(&listDate, "date", "", "date to show (YYYY-MM-DD, default today)")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "filter trackers by title substring")
	listCmd.Flags().StringVarP(&listMode, "filter", "f", "", "filter mode: all, today, completed, uncompleted")
}
