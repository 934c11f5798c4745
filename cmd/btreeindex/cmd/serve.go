package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"btreeindex/btree"

	"github.com/spf13/cobra"
)

// serveCmd reproduces the original interactive text menu as a thin read-eval-print loop over the
// same btree.Tree operations the other subcommands call directly. It is menu dispatch and line
// formatting only — no B-tree logic lives here.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the interactive menu (insert/search/update/remove/dump loop)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := treeFrom(cmd)
		if err != nil {
			return err
		}
		runMenu(tree, os.Stdin, os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runMenu(tree *btree.Tree, in io.Reader, out io.Writer) {
	reader := bufio.NewScanner(in)
	prompt := func(msg string) string {
		fmt.Fprint(out, msg)
		reader.Scan()
		return strings.TrimSpace(reader.Text())
	}
	promptInt := func(msg string) (int, bool) {
		v, err := strconv.Atoi(prompt(msg))
		if err != nil {
			fmt.Fprintln(out, "not a number")
			return 0, false
		}
		return v, true
	}

	for {
		fmt.Fprintln(out, "\nMenu:")
		fmt.Fprintln(out, "1. Insert record")
		fmt.Fprintln(out, "2. Search record")
		fmt.Fprintln(out, "3. Update record")
		fmt.Fprintln(out, "4. Remove record")
		fmt.Fprintln(out, "5. Dump table")
		fmt.Fprintln(out, "6. Quit")

		switch prompt("Choose an option (1-6): ") {
		case "1":
			id, ok := promptInt("ID: ")
			if !ok {
				continue
			}
			name := prompt("Name: ")
			age, ok := promptInt("Age: ")
			if !ok {
				continue
			}
			if err := tree.Insert(id, name, age); err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			fmt.Fprintf(out, "record %d inserted\n", id)

		case "2":
			id, ok := promptInt("ID: ")
			if !ok {
				continue
			}
			rec, found := tree.Search(id)
			if !found {
				fmt.Fprintf(out, "record %d not found\n", id)
				continue
			}
			fmt.Fprintf(out, "%d %s %d\n", rec.ID, rec.Name, rec.Age)

		case "3":
			id, ok := promptInt("ID: ")
			if !ok {
				continue
			}
			name := prompt("New name: ")
			age, ok := promptInt("New age: ")
			if !ok {
				continue
			}
			if err := tree.Update(id, name, age); err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			fmt.Fprintf(out, "record %d updated\n", id)

		case "4":
			id, ok := promptInt("ID: ")
			if !ok {
				continue
			}
			removed, err := tree.Remove(id)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if !removed {
				fmt.Fprintf(out, "record %d not found\n", id)
				continue
			}
			fmt.Fprintf(out, "record %d removed\n", id)

		case "5":
			fmt.Fprintf(out, "%-10s %-20s %-5s\n", "ID", "Name", "Age")
			fmt.Fprintln(out, "===================================")
			for _, r := range tree.DumpPrintOrder() {
				fmt.Fprintf(out, "%-10d %-20s %-5d\n", r.ID, r.Name, r.Age)
			}

		case "6":
			fmt.Fprintln(out, "bye")
			return

		default:
			fmt.Fprintln(out, "invalid choice")
		}
	}
}
