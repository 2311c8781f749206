// Package tree: Node allocation and read-only accessors.
//
// Allocation has no shared mutable state: every NewNode call produces an
// independent node, so concurrent builders may allocate without locks as long
// as each writes only into child slots it owns.

package tree

import "fmt"

// NewNode allocates a node with the given value and branchFactor empty child
// slots. It is the single allocation point for the whole module.
//
// Errors:
//   - ErrBranchFactorOutOfRange if branchFactor is outside 1..MaxBranchFactor.
//
// Complexity: O(branchFactor) time and space.
func NewNode(value int64, branchFactor int) (*Node, error) {
	if branchFactor < 1 || branchFactor > MaxBranchFactor {
		return nil, fmt.Errorf("NewNode: branchFactor=%d not in 1..%d: %w",
			branchFactor, MaxBranchFactor, ErrBranchFactorOutOfRange)
	}

	return &Node{
		Value:    value,
		Children: make([]*Node, branchFactor),
	}, nil
}

// Arity reports the number of child slots (the branch factor the node was
// allocated with), counting absent subtrees.
func (n *Node) Arity() int {
	return len(n.Children)
}

// Leaf reports whether every child slot holds an absent subtree.
func (n *Node) Leaf() bool {
	for _, c := range n.Children {
		if c != nil {
			return false
		}
	}

	return true
}
