package builder_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/treegen/builder"
	"github.com/katalvlaran/treegen/depth"
	"github.com/katalvlaran/treegen/render"
)

// ExampleBuild grows a small binary tree sequentially with a pre-order
// counter as the value generator, so every node is numbered in the order it
// was built, and renders the structure.
func ExampleBuild() {
	next := int64(0)
	counter := func(*rand.Rand) (int64, error) {
		next++
		return next, nil
	}

	// ThreadBudget 1 builds strictly in slot order, so the counter labels
	// nodes in pre-order.
	root, err := builder.Build(
		builder.Request{Depth: 3, BranchFactor: 2, ThreadBudget: 1},
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
	// |   |-- 3
	// |   |-- 4
	// |-- 5
	// |   |-- 6
	// |   |-- 7
}

// ExampleBuild_parallel shows that a wide thread budget changes neither the
// shape nor the measured depth of the result.
func ExampleBuild_parallel() {
	root, err := builder.Build(builder.Request{Depth: 4, BranchFactor: 3, ThreadBudget: 8})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("depth:", depth.Of(root))
	fmt.Println("nodes per level:", depth.Profile(root))

	// Output:
	// depth: 4
	// nodes per level: [1 3 9 27]
}

// ExamplePartition shows the budget plan for a fan-out wider than the
// remaining budget: two slots get dedicated workers, the rest run in-line.
func ExamplePartition() {
	plan, err := builder.Partition(2, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i, g := range plan {
		fmt.Printf("slot %d: budget=%d concurrent=%v\n", i, g.Budget, g.Concurrent)
	}

	// Output:
	// slot 0: budget=1 concurrent=true
	// slot 1: budget=1 concurrent=true
	// slot 2: budget=1 concurrent=false
	// slot 3: budget=1 concurrent=false
	// slot 4: budget=1 concurrent=false
}
