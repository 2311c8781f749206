// SPDX-License-Identifier: MIT
// Package: treegen/builder
//
// build.go — the recursive concurrent tree builder.
//
// State machine per recursive call:
//   Start → PartitionDecided → ChildrenDispatched → ChildrenJoined → NodeComplete.
// NodeComplete is terminal; there is no retry state. Any child failure
// propagates after every dispatched sibling has been joined, and the partial
// subtree is discarded rather than returned.
//
// Determinism:
//   - Child slots are attached in stable slot order no matter which of them
//     ran concurrently; the budget moves work in time, never in position.
//   - Per-slot RNG streams are seeded by parent-stream draws taken in slot
//     order before any dispatch, so node values depend only on the root seed
//     and the slot path — not on the budget or the scheduler.

package builder

import (
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/treegen/tree"
)

const methodBuild = "Build"

// Request is the configuration of one construction call.
type Request struct {
	// Depth is the number of levels to grow, 0..tree.MaxDepth.
	// Zero yields an absent tree (the natural terminal case, not an error).
	Depth int

	// BranchFactor is the number of child slots per node,
	// 1..tree.MaxBranchFactor.
	BranchFactor int

	// ThreadBudget is the number of concurrent workers the whole build may
	// spend, ≥ 1. A budget of 1 builds the entire tree sequentially.
	ThreadBudget int
}

// Validate reports whether every field is inside its declared bounds.
// Returns only sentinel errors; callers branch with errors.Is.
func (r Request) Validate() error {
	if r.Depth < 0 || r.Depth > tree.MaxDepth {
		return fmt.Errorf("depth=%d not in 0..%d: %w", r.Depth, tree.MaxDepth, ErrDepthOutOfRange)
	}
	if r.BranchFactor < 1 || r.BranchFactor > tree.MaxBranchFactor {
		return fmt.Errorf("branchFactor=%d not in 1..%d: %w",
			r.BranchFactor, tree.MaxBranchFactor, ErrBranchFactorOutOfRange)
	}
	if r.ThreadBudget < minBudget {
		return fmt.Errorf("threadBudget=%d < %d: %w", r.ThreadBudget, minBudget, ErrThreadBudgetOutOfRange)
	}

	return nil
}

// Build constructs a tree of req.Depth levels and req.BranchFactor child
// slots per node, spending at most req.ThreadBudget concurrent workers.
//
// A zero-depth request returns (nil, nil) — an absent tree — for any branch
// factor or budget, before any validation or allocation. All other requests
// are validated first; nothing is allocated on a rejected request.
//
// The returned root owns the whole structure transitively and is immutable
// once Build returns.
func Build(req Request, opts ...Option) (*tree.Node, error) {
	// Terminal case first: nothing to grow, nothing to validate.
	if req.Depth == 0 {
		return nil, nil
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	cfg := newBuilderConfig(opts...)
	g := &grower{branchFactor: req.BranchFactor, valueFn: cfg.valueFn}

	return g.grow(req.Depth, req.ThreadBudget, cfg.rng)
}

// BuildBinary is the branch-factor-2 shorthand:
// BuildBinary(d, t) ≡ Build(Request{d, tree.BinaryBranchFactor, t}).
func BuildBinary(depth, threadBudget int, opts ...Option) (*tree.Node, error) {
	return Build(Request{
		Depth:        depth,
		BranchFactor: tree.BinaryBranchFactor,
		ThreadBudget: threadBudget,
	}, opts...)
}

// grower carries the per-build state that is constant across the recursion.
type grower struct {
	branchFactor int
	valueFn      ValueFn
}

// grow builds one subtree of the given depth with the given budget. rng is
// owned exclusively by this call; concurrent children receive derived
// streams, never rng itself.
func (g *grower) grow(depth, budget int, rng *rand.Rand) (*tree.Node, error) {
	// Terminal case: the absent subtree below the last level.
	if depth == 0 {
		return nil, nil
	}

	// Generate the payload from this node's own stream.
	v, err := g.valueFn(rng)
	if err != nil {
		return nil, fmt.Errorf("%s: depth=%d: %v: %w", methodBuild, depth, err, ErrValueGenFailed)
	}

	// Allocate the node with empty child slots.
	node, err := tree.NewNode(v, g.branchFactor)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	// Decide the per-slot budget plan (pure data, deterministic).
	plan, err := Partition(budget, g.branchFactor)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	// Derive one seed per child slot, in slot order, before any dispatch.
	// Slot streams therefore depend only on the root seed and the path to
	// the slot — the plan decides where work runs, never what it produces.
	seeds := make([]int64, len(plan))
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	// Fan-out: dispatch concurrent slots, each writing only the slot it owns.
	var grp errgroup.Group
	for i, gr := range plan {
		if !gr.Concurrent {
			continue
		}
		slot, sub, childRNG := i, gr.Budget, rand.New(rand.NewSource(seeds[i]))
		grp.Go(func() error {
			child, gerr := g.grow(depth-1, sub, childRNG)
			if gerr != nil {
				return gerr
			}
			node.Children[slot] = child // disjoint slot, no other writer

			return nil
		})
	}

	// Sequential slots run on the calling worker, in slot order.
	var seqErr error
	for i, gr := range plan {
		if gr.Concurrent {
			continue
		}
		child, gerr := g.grow(depth-1, gr.Budget, rand.New(rand.NewSource(seeds[i])))
		if gerr != nil {
			// Dispatched siblings must still be joined below.
			seqErr = gerr
			break
		}
		node.Children[i] = child
	}

	// Fan-in: every dispatched sibling is joined before any failure
	// surfaces, so no task outlives its parent call. On failure the partial
	// subtree is discarded, never returned.
	if err = grp.Wait(); err != nil {
		return nil, err
	}
	if seqErr != nil {
		return nil, seqErr
	}

	return node, nil
}
