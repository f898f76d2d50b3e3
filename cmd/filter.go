package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trackerhq/tracker/internal/model"
	"github.com/trackerhq/tracker/internal/prefs"
)

var filterCmd = &cobra.Command{
	Use:   "filter [mode]",
	Short: "Show or set the persisted view filter",
	Long:  `Without arguments, prints the current filter mode. With one of all, today, completed, or uncompleted, persists it for future lists.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pf, err := prefs.Load(prefsPath)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Println(pf.FilterMode())
			return nil
		}

		mode, err := model.ParseFilterMode(args[0])
		if err != nil {
			return err
		}
		if err := pf.SetFilterMode(mode); err != nil {
			return err
		}
		fmt.Printf("filter set to %s\n", mode)
		return nil
	},
}
