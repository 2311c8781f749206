// SPDX-License-Identifier: MIT
// Package: treegen/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng     = rand.New(rand.NewSource(defaultSeed))
//   • valueFn = boundedValue  (uniform draw from [0, tree.MaxNodeValue))

package builder

import (
	"math/rand" // seeded RNG for value generation

	"github.com/katalvlaran/treegen/tree"
)

// defaultSeed feeds the root RNG when no WithSeed/WithRand option is given.
// A fixed default keeps out-of-the-box builds reproducible; callers wanting
// run-to-run variety pass an explicit time-derived seed.
const defaultSeed = int64(1)

// builderConfig aggregates all knobs used by one Build call.
// It is resolved once per call and passed by value (immutable to callers).
type builderConfig struct {
	// Root RNG; per-slot streams are derived from it in slot order.
	rng *rand.Rand
	// Payload generator invoked once per node.
	valueFn ValueFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:     rand.New(rand.NewSource(defaultSeed)),
		valueFn: boundedValue,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// boundedValue is the default payload generator: a uniform draw from
// [0, tree.MaxNodeValue). It never fails.
func boundedValue(r *rand.Rand) (int64, error) {
	return r.Int63n(tree.MaxNodeValue), nil
}
