// Package builder constructs M-branch trees top-down, subdividing a finite
// thread budget across child subtrees and dispatching their construction
// either sequentially or concurrently.
//
// What:
//
//   - Build(req, opts...): recursively grows a tree of req.Depth levels with
//     req.BranchFactor child slots per node, spending at most
//     req.ThreadBudget concurrent workers across the whole construction.
//   - BuildBinary(depth, threadBudget, opts...): branch-factor-2 shorthand.
//   - Partition(threadBudget, branchFactor): the pure budget-splitting
//     policy, exposed as data so the scheduling decision stays decoupled
//     from the mechanism that runs a child concurrently.
//
// Budget policy (deterministic; the budget divides, never grows):
//
//   - threadBudget ≤ 1: every child is grown in-line by the calling worker
//     with a sub-budget of 1 — the recursion's natural floor.
//   - branchFactor == 1: the single child inherits the full remaining
//     budget in-line (nothing to fan out over).
//   - otherwise: min(branchFactor, threadBudget) children each get their own
//     worker with sub-budget floor(threadBudget/branchFactor), floored to 1;
//     any remaining slots are grown in-line with sub-budget 1.
//
// Determinism:
//
//   - Shape is a pure function of (depth, branchFactor): b^k nodes at level
//     k. The budget affects timing only, never slot order or node identity.
//   - Values are a pure function of (seed, depth, branchFactor): every child
//     slot receives its own RNG stream, seeded by a parent-stream draw taken
//     in slot order before any dispatch. Two builds with the same seed
//     produce identical trees whatever their budgets.
//
// Concurrency:
//
//   - Fan-out runs on an errgroup; the parent blocks until every dispatched
//     child has returned (fan-in). No detached tasks, no shared mutable
//     state: each worker writes only the child slot it owns.
//
// Failure semantics:
//
//   - Requests outside bounds are rejected before any node is allocated.
//   - A value-generator failure anywhere aborts the whole build; in-flight
//     siblings are still joined before the error surfaces, and no partial
//     tree is ever returned.
//
// Errors:
//
//	ErrDepthOutOfRange        - depth outside 0..tree.MaxDepth.
//	ErrBranchFactorOutOfRange - branch factor outside 1..tree.MaxBranchFactor.
//	ErrThreadBudgetOutOfRange - thread budget < 1.
//	ErrValueGenFailed         - the pluggable value generator returned an error.
package builder
