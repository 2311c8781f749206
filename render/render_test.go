package render_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treegen/render"
	"github.com/katalvlaran/treegen/tree"
)

// node is a shorthand allocator for hand-built fixtures.
func node(t *testing.T, value int64, branchFactor int) *tree.Node {
	t.Helper()

	n, err := tree.NewNode(value, branchFactor)
	require.NoError(t, err)

	return n
}

func TestTree_AbsentEmitsNothing(t *testing.T) {
	var sb strings.Builder
	err := render.Tree(&sb, nil)

	assert.NoError(t, err)
	assert.Empty(t, sb.String())
	assert.Empty(t, render.String(nil))
}

func TestTree_SingleNode(t *testing.T) {
	assert.Equal(t, "5\n\n", render.String(node(t, 5, 2)))
}

func TestTree_MarkersPerLevel(t *testing.T) {
	// Chain 1 -> 2 -> 3: one branch marker at level 1, a continuation plus
	// a branch marker at level 2.
	root := node(t, 1, 1)
	root.Children[0] = node(t, 2, 1)
	root.Children[0].Children[0] = node(t, 3, 1)

	want := "1\n" +
		"|-- 2\n" +
		"|   |-- 3\n" +
		"\n"
	assert.Equal(t, want, render.String(root))
}

func TestTree_PreOrderSlotOrder(t *testing.T) {
	root := node(t, 1, 2)
	root.Children[0] = node(t, 2, 2)
	root.Children[1] = node(t, 3, 2)
	root.Children[0].Children[1] = node(t, 4, 2)

	// Pre-order: parent before children, slots left to right, absent slots
	// skipped silently.
	want := "1\n" +
		"|-- 2\n" +
		"|   |-- 4\n" +
		"|-- 3\n" +
		"\n"
	assert.Equal(t, want, render.String(root))
}

func TestTree_Idempotent(t *testing.T) {
	root := node(t, 8, 2)
	root.Children[0] = node(t, 9, 2)

	first := render.String(root)
	second := render.String(root)
	assert.Equal(t, first, second)
}

// failWriter fails every write after the first n bytes were accepted.
type failWriter struct {
	budget int
}

func (f *failWriter) Write(p []byte) (int, error) {
	if f.budget <= 0 {
		return 0, errors.New("sink closed")
	}
	f.budget -= len(p)

	return len(p), nil
}

func TestTree_WriteErrorPropagates(t *testing.T) {
	root := node(t, 1, 1)
	root.Children[0] = node(t, 2, 1)

	err := render.Tree(&failWriter{budget: 2}, root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render:")
}
