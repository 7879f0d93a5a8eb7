// SPDX-License-Identifier: MIT

// Package series implements a one-dimensional keyed sequence of observations.
//
// A Series[K, V] maps unique keys to values over an insertion-ordered backing
// container (omap.Map). It is used standalone and as the projection type of
// every row and column view handed out by package frame.
//
// The package provides:
//
//   - Point and batch access (Get, Set, GetMany, SetMany).
//   - Non-mutating predicate filters over keys, values, and entries.
//   - Element-wise combination of two sequences sharing a key type.
//   - Re-keying and value mapping as package-level generic functions
//     (Reindex, ReindexKeys, Map, Convert), since Go methods cannot
//     introduce new type parameters.
//   - A lazy, restartable key enumeration (KeysWhere).
//
// Sequences constructed by filters, Combine, and the transform functions are
// always detached, independent copies. Sequences constructed with View alias
// external storage and may carry a write-back sink; frame uses this to hand
// out live row/column views whose writes re-synchronize the parent table.
//
// A Series is not safe for concurrent use; the owner provides external
// synchronization if it is shared.
package series
