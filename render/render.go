package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/treegen/tree"
)

// Branch markers: one per nesting level, the innermost distinguishing the
// node's own line from the levels it merely passes through.
const (
	markerBranch   = "|-- "
	markerContinue = "|   "
)

// Tree writes the pre-order rendering of the tree rooted at n to w.
// An absent tree writes nothing. Write errors abort the traversal and
// propagate to the caller.
func Tree(w io.Writer, n *tree.Node) error {
	if n == nil {
		return nil
	}

	if err := walk(w, n, 0); err != nil {
		return err
	}

	// Blank line closing the whole tree.
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

// String renders the tree rooted at n into a string. Convenience wrapper
// over Tree; an absent tree yields the empty string.
func String(n *tree.Node) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = Tree(&sb, n)

	return sb.String()
}

// walk emits node n at the given level, then its present children in slot
// order.
func walk(w io.Writer, n *tree.Node, level int) error {
	for i := 0; i < level; i++ {
		marker := markerContinue
		if i == level-1 {
			marker = markerBranch
		}
		if _, err := io.WriteString(w, marker); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}

	if _, err := fmt.Fprintf(w, "%d\n", n.Value); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	for _, c := range n.Children {
		if c == nil {
			continue
		}
		if err := walk(w, c, level+1); err != nil {
			return err
		}
	}

	return nil
}
