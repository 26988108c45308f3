package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ctvaccess/captvty-bridge/internal/model"
	"github.com/ctvaccess/captvty-bridge/internal/output"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Dump the foreground window's accessibility tree",
	Long: `Capture the element tree of the foreground window. Mainly for tuning the
layout heuristics when a Captvty update moves things around.

Examples:
  captvty-bridge tree
  captvty-bridge tree --flat --depth 4`,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().Int("depth", 0, "Max depth to capture (0 = unlimited)")
	treeCmd.Flags().Bool("flat", false, "Flat list with path breadcrumbs instead of a tree")
}

func runTree(cmd *cobra.Command, args []string) error {
	depth, _ := cmd.Flags().GetInt("depth")
	flat, _ := cmd.Flags().GetBool("flat")

	b, err := newBridge()
	if err != nil {
		return err
	}
	defer b.Close()

	win, err := b.provider.Reader.Foreground()
	if err != nil {
		return fmt.Errorf("foreground window: %w", err)
	}

	snap := model.Snapshot(win, depth)
	ts := time.Now().Unix()
	nodes := snap.Count()

	if flat {
		return output.Print(output.TreeFlatResult{
			Window:   win.Name(),
			TS:       ts,
			Nodes:    nodes,
			Elements: model.Flatten(snap),
		})
	}
	return output.Print(output.TreeResult{Window: win.Name(), TS: ts, Nodes: nodes, Tree: snap})
}
