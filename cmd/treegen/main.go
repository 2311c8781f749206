// Package main implements the treegen CLI: generate M-branch or binary
// trees with a bounded thread budget, then report their depth or render
// their structure to stdout or a file.
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/treegen/builder"
	"github.com/katalvlaran/treegen/depth"
	"github.com/katalvlaran/treegen/render"
	"github.com/katalvlaran/treegen/tree"
)

// Defaults mirroring the flag help text.
const (
	defaultDepth   = 4
	defaultThreads = 4
)

var (
	flagDepth      int
	flagBranches   int
	flagBinary     bool
	flagThreads    int
	flagNoParallel bool
	flagSeed       int64
	flagOutput     string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "treegen",
	Short: "Generate and analyze M-branch trees with a bounded thread budget",
	Long: `treegen builds arbitrarily branching trees top-down, recursively
subdividing a finite thread budget across child subtrees, then computes
their depth and renders their structure.

Depth is bounded to 1-10 and branch factor to 1-5; passing 0 for either
picks a random value inside the bound. --no-parallel forces a thread
budget of 1 (fully sequential construction).`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVarP(&flagDepth, "depth", "d", defaultDepth, "tree depth, 1-10 (0 picks randomly)")
	pf.IntVarP(&flagBranches, "branches", "m", tree.BinaryBranchFactor, "branch factor M, 1-5 (0 picks randomly)")
	pf.BoolVar(&flagBinary, "binary", false, "shorthand for --branches 2")
	pf.IntVarP(&flagThreads, "threads", "t", defaultThreads, "thread budget for construction (>= 1)")
	pf.BoolVar(&flagNoParallel, "no-parallel", false, "disable concurrent construction (forces --threads 1)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed for node values (0 derives one from the current time)")
	pf.StringVarP(&flagOutput, "output", "o", "", "write output to FILE instead of stdout")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "also report structure, timing and thread count")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(depthCmd)
}

// generateCmd builds a tree and renders its structure.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tree and render its structure",
	Long: `Generate a tree of the requested depth and branch factor, then
render its indented structure.

Examples:
  # A depth-5, 3-branch tree
  treegen generate -d 5 -m 3

  # A binary tree built with 8 workers, written to a file
  treegen generate --binary -d 6 -t 8 -o tree.txt

  # Reproducible output
  treegen generate -d 4 -m 2 --seed 42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(generate)
	},
}

// depthCmd builds a tree and reports its computed depth.
var depthCmd = &cobra.Command{
	Use:   "depth",
	Short: "Generate a tree and report its depth",
	Long: `Generate a tree of the requested depth and branch factor, then
compute and report its maximum depth.

Examples:
  # Depth of a binary tree, with timing
  treegen depth --binary -d 6 -v

  # Depth of a 3-branch tree built with 8 workers
  treegen depth -m 3 -t 8`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(reportDepth)
	},
}

// settings is one resolved invocation: flags with randomness and shorthands
// applied.
type settings struct {
	req     builder.Request
	seed    int64
	binary  bool
	verbose bool
}

// resolveSettings applies the random-within-bounds fallbacks, the --binary
// shorthand, and the --no-parallel override. Bounds themselves are enforced
// by builder.Build before anything is allocated.
func resolveSettings() settings {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	d := flagDepth
	if d == 0 {
		d = rng.Intn(tree.MaxDepth) + 1
	}

	branches := flagBranches
	if flagBinary {
		branches = tree.BinaryBranchFactor
	}
	if branches == 0 {
		branches = rng.Intn(tree.MaxBranchFactor) + 1
	}

	threads := flagThreads
	if flagNoParallel {
		threads = 1
	}

	return settings{
		req: builder.Request{
			Depth:        d,
			BranchFactor: branches,
			ThreadBudget: threads,
		},
		seed:    seed,
		binary:  flagBinary || branches == tree.BinaryBranchFactor,
		verbose: flagVerbose,
	}
}

// run resolves flags, opens the output sink, and executes op against it.
func run(op func(w io.Writer, s settings) error) error {
	s := resolveSettings()

	w := io.Writer(os.Stdout)
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return fmt.Errorf("open output %q: %w", flagOutput, err)
		}
		defer f.Close()
		w = f
	}

	if err := op(w, s); err != nil {
		return err
	}

	if flagOutput != "" && s.verbose {
		fmt.Printf("Output written to %s\n", flagOutput)
	}

	return nil
}

// generate builds the requested tree and renders it to w.
func generate(w io.Writer, s settings) error {
	start := time.Now()

	root, err := builder.Build(s.req, builder.WithSeed(s.seed))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Generated tree (branches=%d, depth=%d):\n", s.req.BranchFactor, s.req.Depth)
	if err = render.Tree(w, root); err != nil {
		return err
	}

	if s.verbose {
		reportStats(w, s, start)
	}

	return nil
}

// reportDepth builds the requested tree and reports its computed depth to w.
func reportDepth(w io.Writer, s settings) error {
	start := time.Now()

	root, err := builder.Build(s.req, builder.WithSeed(s.seed))
	if err != nil {
		return err
	}

	if s.verbose {
		fmt.Fprintf(w, "M-branch tree structure (M=%d, depth=%d):\n", s.req.BranchFactor, s.req.Depth)
		if err = render.Tree(w, root); err != nil {
			return err
		}
	}

	if s.binary {
		fmt.Fprintf(w, "Binary tree depth: %d\n", depth.Of(root))
	} else {
		fmt.Fprintf(w, "M-branch tree depth (M=%d): %d\n", s.req.BranchFactor, depth.Of(root))
	}

	if s.verbose {
		reportStats(w, s, start)
	}

	return nil
}

// reportStats appends the timing/thread footer in verbose mode.
func reportStats(w io.Writer, s settings, start time.Time) {
	fmt.Fprintf(w, "Execution time: %.4f seconds\n", time.Since(start).Seconds())
	fmt.Fprintf(w, "Thread count: %d\n", s.req.ThreadBudget)
}
