// SPDX-License-Identifier: MIT

// Package omap provides a generic insertion-ordered map.
//
// It is the associative container underneath series.Series and frame.Frame:
// a thin, type-safe facade over gods' linkedhashmap that guarantees stable,
// insertion-order iteration. Go's built-in map randomizes iteration order,
// which would make frame's linear search and textual rendering
// non-deterministic; omap exists to rule that out structurally.
//
// omap is deliberately minimal: point get/put, membership, length, ordered
// enumeration, and shallow cloning. It offers no removal because the tabular
// layer above it never deletes keys (rows and columns are only ever selected
// into smaller derived structures, never removed in place).
package omap
