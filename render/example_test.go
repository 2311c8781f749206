package render_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/treegen/builder"
	"github.com/katalvlaran/treegen/render"
)

// ExampleTree renders a sequentially built ternary tree labeled in
// build (pre-order) sequence.
func ExampleTree() {
	next := int64(0)
	counter := func(*rand.Rand) (int64, error) {
		next++
		return next, nil
	}

	root, err := builder.Build(
		builder.Request{Depth: 2, BranchFactor: 3, ThreadBudget: 1},
		builder.WithValueFn(counter),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(render.String(root))

	// Output:
	// 1
	// |-- 2
	// |-- 3
	// |-- 4
}
