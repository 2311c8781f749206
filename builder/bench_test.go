package builder_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/treegen/builder"
	"github.com/katalvlaran/treegen/tree"
)

// BenchmarkBuild_Binary compares sequential construction against widening
// thread budgets on the largest permitted binary tree (2^10 − 1 nodes).
func BenchmarkBuild_Binary(b *testing.B) {
	for _, budget := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("budget=%d", budget), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = builder.BuildBinary(tree.MaxDepth, budget)
			}
		})
	}
}

// BenchmarkBuild_WideFanOut measures a depth-6 full 5-branch tree
// (≈ 3.9k nodes) under a narrow and a generous budget.
func BenchmarkBuild_WideFanOut(b *testing.B) {
	for _, budget := range []int{1, 8} {
		b.Run(fmt.Sprintf("budget=%d", budget), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = builder.Build(builder.Request{
					Depth:        6,
					BranchFactor: tree.MaxBranchFactor,
					ThreadBudget: budget,
				})
			}
		})
	}
}

// BenchmarkPartition measures the pure planning cost alone.
func BenchmarkPartition(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = builder.Partition(8, tree.MaxBranchFactor)
	}
}
