package cmd

import (
	"fmt"
	"strconv"

	"btreeindex/btree"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <id> <name> <age>",
	Short: "Update a record's payload",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}
		age, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid age %q: %w", args[2], err)
		}

		tree, err := treeFrom(cmd)
		if err != nil {
			return err
		}

		if err := tree.Update(id, args[1], age); err != nil {
			if errors.Cause(err) == btree.ErrNotFound {
				fmt.Printf("id %d not found\n", id)
				return nil
			}
			return err
		}

		fmt.Printf("updated %d %s %d\n", id, args[1], age)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
