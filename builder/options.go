// SPDX-License-Identifier: MIT
// Package: treegen/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     the build algorithms themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand" // RNG source for value generation
)

// ValueFn produces one node payload from the RNG stream owned by the node
// being built. The builder hands every node its own deterministic stream, so
// a ValueFn that draws only from r is automatically safe under concurrency
// and reproducible per seed. Returning an error aborts the whole build.
type ValueFn func(r *rand.Rand) (int64, error)

// Option customizes a single Build call by mutating a builderConfig
// instance before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithSeed replaces the root RNG with a new *rand.Rand seeded by seed.
// Same seed, same request ⇒ identical tree, regardless of thread budget.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		// Seeded source → reproducible values down every slot path.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit root RNG. The builder derives per-slot
// streams from it and never hands r itself to more than one worker.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithValueFn overrides the per-node payload generator.
// Panics on nil; value policy must be explicit if customized.
// Complexity: O(1) time, O(1) space.
func WithValueFn(fn ValueFn) Option {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}
