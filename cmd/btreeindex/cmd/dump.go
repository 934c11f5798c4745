package cmd

import (
	"fmt"

	"btreeindex/btree"

	"github.com/spf13/cobra"
)

var printOrder bool

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print every record in the tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := treeFrom(cmd)
		if err != nil {
			return err
		}

		var records []btree.Record
		if printOrder {
			records = tree.DumpPrintOrder()
		} else {
			records = tree.Dump()
		}

		fmt.Printf("%-10s %-20s %-5s\n", "ID", "Name", "Age")
		fmt.Println("===================================")
		for _, r := range records {
			fmt.Printf("%-10d %-20s %-5d\n", r.ID, r.Name, r.Age)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().BoolVar(&printOrder, "print-order", false, "use the slots-then-children traversal order instead of strict sorted order")
}
