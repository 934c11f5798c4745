// Command btreeindex is the CLI driver for the btree package: it parses arguments, loads the
// configured tree, and dispatches to one dictionary operation. The driver is an external
// collaborator, not part of the core — this file and its cmd subpackage hold no B-tree logic.
package main

import "btreeindex/cmd/btreeindex/cmd"

func main() {
	cmd.Execute()
}
