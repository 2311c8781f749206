package depth_test

import (
	"fmt"

	"github.com/katalvlaran/treegen/builder"
	"github.com/katalvlaran/treegen/depth"
)

// ExampleOf measures a generated tree: the analyzer recovers exactly the
// depth the build was asked for.
func ExampleOf() {
	root, err := builder.Build(builder.Request{Depth: 5, BranchFactor: 2, ThreadBudget: 4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("requested: 5, measured:", depth.Of(root))
	fmt.Println("absent tree measures:", depth.Of(nil))

	// Output:
	// requested: 5, measured: 5
	// absent tree measures: 0
}
