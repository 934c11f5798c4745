package cmd

import (
	"context"
	"fmt"
	"os"

	"btreeindex/btree"
	"btreeindex/internal/config"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type ctxKey string

const treeCtxKey ctxKey = "tree"

var configPath string

// rootCmd is the entry point for the btreeindex driver: a thin CLI over the btree package's
// dictionary operations. It carries no B-tree logic of its own — every subcommand below loads
// the configured tree, calls straight into btree, and formats the result.
var rootCmd = &cobra.Command{
	Use:   "btreeindex",
	Short: "B-tree index over fixed-schema records with JSON snapshotting",
	Long: `btreeindex is a small CLI driver around an in-memory B-tree index. Each invocation
loads the configured snapshot, applies one operation, and (for mutations) persists the result.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return errors.Wrap(err, "load config")
		}

		tree, err := btree.New(cfg.Degree, btree.WithSnapshot(cfg.SnapshotPath))
		if err != nil {
			return errors.Wrap(err, "construct tree")
		}

		if err := tree.Load(cfg.SnapshotPath); err != nil {
			return errors.Wrap(err, "load snapshot")
		}

		cmd.SetContext(context.WithValue(cmd.Context(), treeCtxKey, tree))
		return nil
	},
}

// Execute runs the root command. It is the single entry point main.main calls.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "btreeindex.json", "Path to the JSON config file")
}

// treeFrom recovers the *btree.Tree the PersistentPreRunE stashed in the command's context.
func treeFrom(cmd *cobra.Command) (*btree.Tree, error) {
	tree, ok := cmd.Context().Value(treeCtxKey).(*btree.Tree)
	if !ok {
		return nil, fmt.Errorf("btreeindex: tree not found in command context")
	}
	return tree, nil
}
