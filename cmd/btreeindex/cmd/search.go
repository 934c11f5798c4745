package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <id>",
	Short: "Search for a record by id",
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

		rec, found := tree.Search(id)
		if !found {
			fmt.Printf("id %d not found\n", id)
			return nil
		}
		fmt.Printf("%d %s %d\n", rec.ID, rec.Name, rec.Age)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
