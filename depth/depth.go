package depth

import "github.com/katalvlaran/treegen/tree"

// Of returns the maximum depth of the tree rooted at n: 0 for an absent
// tree, otherwise 1 plus the deepest present child. Traversal order is
// irrelevant to the result (max is associative), so no ordering is promised.
func Of(n *tree.Node) int {
	if n == nil {
		return 0
	}

	maxChild := 0
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		if d := Of(c); d > maxChild {
			maxChild = d
		}
	}

	return 1 + maxChild
}

// Count returns the total number of present nodes in the tree rooted at n.
func Count(n *tree.Node) int {
	if n == nil {
		return 0
	}

	total := 1
	for _, c := range n.Children {
		total += Count(c)
	}

	return total
}

// Profile returns the number of present nodes per level, root first.
// An absent tree yields an empty profile. A full M-branch tree of depth d
// yields [M^0, M^1, …, M^(d-1)].
func Profile(n *tree.Node) []int {
	if n == nil {
		return nil
	}

	var widths []int
	frontier := []*tree.Node{n}

	// Level-order sweep: count a whole frontier, then advance it.
	for len(frontier) > 0 {
		widths = append(widths, len(frontier))

		var next []*tree.Node
		for _, v := range frontier {
			for _, c := range v.Children {
				if c != nil {
					next = append(next, c)
				}
			}
		}
		frontier = next
	}

	return widths
}
