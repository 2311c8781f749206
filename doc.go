// Package treegen is a parallel recursive tree-construction and
// depth-analysis engine: it grows arbitrarily branching trees top-down,
// recursively subdividing a finite thread budget across child subtrees, then
// computes their depth and renders their structure.
//
// 🚀 What is treegen?
//
//	A small, deterministic library that brings together:
//		• builder/  — recursive concurrent construction with a pure
//		  thread-budget partitioning policy (fan-out, fan-in, no locks)
//		• tree/     — the immutable Node model: slot-ordered, exclusively
//		  owned children, bounded depth and branch factor
//		• depth/    — read-only analyses: maximum depth, node count,
//		  per-level width profile
//		• render/   — indented pre-order structure rendering
//		• cmd/treegen — the CLI: generate trees, report depth, write to
//		  stdout or a file
//
// ✨ Why choose treegen?
//
//   - Reproducible by construction — same seed, same tree, whatever the
//     thread budget; concurrency moves work in time, never in position
//   - No shared mutable state — every worker writes only the subtree it
//     owns, so the builder needs no locks or atomics
//   - Bounded by design — depth ≤ 10, branch factor ≤ 5, so total work is
//     bounded and failure-free builds always terminate
//   - Pure Go — no cgo, explicit sentinel errors, never panics at runtime
//
// Quick ASCII example (depth 3, branch factor 2):
//
//	1
//	|-- 2
//	|   |-- 3
//	|   |-- 4
//	|-- 5
//	|   |-- 6
//	|   |-- 7
//
// Dive into the per-package docs for contracts, complexity notes, and the
// exact budget-partitioning policy.
//
//	go get github.com/katalvlaran/treegen
package treegen
