package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a record by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}

		tree, err := treeFrom(cmd)
		if err != nil {
			return err
		}

		removed, err := tree.Remove(id)
		if err != nil {
			return err
		}
		if !removed {
			fmt.Printf("id %d not found\n", id)
			return nil
		}
		fmt.Printf("removed %d\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
