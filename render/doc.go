// Package render emits an indented textual representation of a generated
// tree: a pre-order traversal printing one line per node, with one branch
// marker per level of nesting.
//
// Format, per node at level L:
//
//	L-1 copies of "|   ", then one "|-- " (L ≥ 1), then the value.
//
// The root prints with no prefix; a trailing blank line closes a non-empty
// tree. An absent tree emits nothing.
//
// Rendering is a pure read-only consumer of the tree: repeated calls on the
// same tree produce byte-identical output, and two trees of equal shape and
// values render identically no matter how they were scheduled during
// construction.
package render
