package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, pf, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		if err := svc.CreateCategory(context.Background(), args[0]); err != nil {
			return err
		}
		if err := pf.SetLastCategory(args[0]); err != nil {
			return err
		}
		fmt.Printf("created category %q\n", args[0])
		return nil
	},
}

var categoryRenameCmd = &cobra.Command{
	Use:   "rename <old-title> <new-title>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		if err := svc.RenameCategory(context.Background(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("renamed category %q to %q\n", args[0], args[1])
		return nil
	},
}

var categoryRmCmd = &cobra.Command{
	Use:   "rm <title>",
	Short: "Delete a category and its trackers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		if err := svc.DeleteCategory(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted category %q\n", args[0])
		return nil
	},
}

func init() {
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryRenameCmd)
	categoryCmd.AddCommand(categoryRmCmd)
}
