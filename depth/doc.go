// Package depth implements read-only structural analyses over generated
// trees: maximum depth, node count, and the per-level width profile.
//
// All functions are pure traversals over an immutable tree — no shared
// mutation, no synchronization, and identical results on repeated calls.
// An absent (nil) tree is a valid input everywhere and measures as empty.
//
// Complexity:
//
//   - Of:      Time O(n), stack O(d) for n nodes and depth d.
//   - Count:   Time O(n), stack O(d).
//   - Profile: Time O(n), space O(n) for the frontier (level-order sweep).
package depth
