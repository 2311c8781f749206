// Package tree defines the central Node type for generated M-branch trees,
// together with the bounds every construction and analysis in this module
// observes.
//
// A Node owns its children exclusively: the slice returned at allocation time
// has exactly one slot per declared branch, a nil slot standing for an absent
// subtree. Nodes are never shared between parents and never mutated after the
// build that produced them completes, so read-only traversals need no
// synchronization.
//
// This file declares Node, the size bounds, the sentinel errors, and the
// NewNode allocator.
//
// Errors:
//
//	ErrBranchFactorOutOfRange - branch factor outside 1..MaxBranchFactor.
package tree

import "errors"

// Size bounds shared by builders, analyzers, and the CLI boundary.
// Depth and branch factor are bounded so total work is bounded too:
// the largest permitted tree holds Σ 5^k nodes for k in 0..9.
const (
	// MaxDepth is the deepest tree any builder may produce.
	MaxDepth = 10

	// MaxBranchFactor is the widest node any builder may produce.
	MaxBranchFactor = 5

	// BinaryBranchFactor is the branch factor of the binary shorthand.
	BinaryBranchFactor = 2

	// MaxNodeValue bounds generated payloads to the half-open range
	// [0, MaxNodeValue).
	MaxNodeValue = 100
)

// ErrBranchFactorOutOfRange indicates a node allocation was requested with a
// branch factor outside 1..MaxBranchFactor.
// Usage: if errors.Is(err, tree.ErrBranchFactorOutOfRange) { /* reject M */ }.
var ErrBranchFactorOutOfRange = errors.New("tree: branch factor out of range")

// Node is one generated tree node.
//
// Children always has length equal to the branch factor the node was
// allocated with; a nil entry is an absent subtree. Absent entries appear
// only at the maximum requested depth of a build. Slot order is stable and
// meaningful: it is the order children were attached, regardless of which of
// them were built concurrently.
type Node struct {
	// Value is the node payload, in [0, MaxNodeValue) for the default
	// generator; custom generators may use the full int64 range.
	Value int64

	// Children holds one slot per declared branch. Owned exclusively by
	// this node; callers must treat it as read-only.
	Children []*Node
}
