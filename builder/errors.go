// SPDX-License-Identifier: MIT
// Package: treegen/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w` at the API boundary.
//   • Builders MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrDepthOutOfRange indicates a requested depth outside 0..tree.MaxDepth.
// Classification: validation error, detected before any allocation.
// Usage: if errors.Is(err, ErrDepthOutOfRange) { /* reject depth */ }.
var ErrDepthOutOfRange = errors.New("builder: depth out of range")

// ErrBranchFactorOutOfRange indicates a requested branch factor outside
// 1..tree.MaxBranchFactor.
// Usage: if errors.Is(err, ErrBranchFactorOutOfRange) { /* reject M */ }.
var ErrBranchFactorOutOfRange = errors.New("builder: branch factor out of range")

// ErrThreadBudgetOutOfRange indicates a thread budget below 1. The budget is
// a count of concurrent workers; zero workers can build nothing.
// Usage: if errors.Is(err, ErrThreadBudgetOutOfRange) { /* reject budget */ }.
var ErrThreadBudgetOutOfRange = errors.New("builder: thread budget out of range")

// ErrValueGenFailed indicates the pluggable value generator returned an
// error mid-build. Fatal for the whole construction: sibling tasks are
// joined, their results discarded, and no partial tree is returned.
// Usage: if errors.Is(err, ErrValueGenFailed) { /* inspect generator */ }.
var ErrValueGenFailed = errors.New("builder: value generation failed")
