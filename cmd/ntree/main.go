// Command ntree is a demo driver for the tree library: it loads a tree
// from a file when one exists, otherwise generates a random tree and
// saves it, then reports per-stage timings, the widest subtree, and a
// pretty dump of the result.
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/treelab/ntree/builder"
	"github.com/treelab/ntree/codec"
	"github.com/treelab/ntree/core"
)

var (
	treeFile     string
	arity        int
	leaves       int
	seed         int64
	displayDepth int
)

var rootCmd = &cobra.Command{
	Use:   "ntree",
	Short: "fixed-arity tree demo: generate or load, search, serialize",
	Long: `ntree loads a tree from --file when the file exists; otherwise it
generates a random tree of --leaves nodes (prompting when 0), saves it
to --file, and in both cases finds the widest subtree and pretty-prints
the result with per-stage time/allocation profiling.`,
	RunE:         run,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
}

func main() {
	rootCmd.Flags().StringVarP(&treeFile, "file", "f", "ntree.nt", "tree file to load (if present) or create")
	rootCmd.Flags().IntVarP(&arity, "arity", "a", 5, "branching factor N")
	rootCmd.Flags().IntVarP(&leaves, "leaves", "n", 0, "node count to generate (0 prompts)")
	rootCmd.Flags().Int64Var(&seed, "seed", 1, "random seed for generation")
	rootCmd.Flags().IntVarP(&displayDepth, "depth", "d", 6, "display depth limit for the pretty dump (0 = unlimited)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	var (
		tree   *core.Node[int]
		stages []stage
	)

	if input, err := os.Open(treeFile); err == nil {
		var derr error
		stages = append(stages, measure("deserialize", func() {
			tree, derr = codec.Decode(input, arity, codec.ParseInt)
		}))
		cerr := input.Close()
		if derr != nil {
			return fmt.Errorf("load %s: %w", treeFile, derr)
		}
		if cerr != nil {
			return fmt.Errorf("load %s: %w", treeFile, cerr)
		}
		if tree == nil {
			return fmt.Errorf("load %s: file holds no tree", treeFile)
		}
	} else {
		count := leaves
		if count <= 0 {
			fmt.Fprint(cmd.OutOrStdout(), "Enter max amount of leaves: ")
			if _, err = fmt.Fscanln(cmd.InOrStdin(), &count); err != nil {
				return fmt.Errorf("read leaf count: %w", err)
			}
		}

		var gerr error
		stages = append(stages, measure("generate", func() {
			tree, gerr = builder.RandomInt(arity, count, builder.WithSeed(seed))
		}))
		if gerr != nil {
			return gerr
		}

		if err = saveTree(tree, &stages); err != nil {
			return err
		}
	}
	defer tree.Destroy()

	var (
		maxChildren int
		maxSubtree  *core.Node[int]
	)
	stages = append(stages, measure("search", func() {
		maxChildren, maxSubtree = tree.MaxBranchingSubtree()
	}))

	out := cmd.OutOrStdout()
	printStages(out, stages)

	fmt.Fprintf(out, "\n%s used by tree\n", humanize.IBytes(uint64(tree.ByteSize())))

	fmt.Fprintln(out, "\nTree:")
	if err := codec.Encode(out, tree, codec.WithPretty(), codec.WithMaxDepth(displayDepth)); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nMaximum children subtree (%d children):\n", maxChildren)

	return codec.Encode(out, maxSubtree, codec.WithPretty(), codec.WithMaxDepth(displayDepth))
}

// saveTree profiles the serialization of a freshly generated tree.
func saveTree(tree *core.Node[int], stages *[]stage) error {
	output, err := os.Create(treeFile)
	if err != nil {
		return fmt.Errorf("save %s: %w", treeFile, err)
	}

	var eerr error
	*stages = append(*stages, measure("serialize", func() {
		eerr = codec.Encode(output, tree)
	}))
	cerr := output.Close()
	if eerr != nil {
		return fmt.Errorf("save %s: %w", treeFile, eerr)
	}
	if cerr != nil {
		return fmt.Errorf("save %s: %w", treeFile, cerr)
	}

	return nil
}
