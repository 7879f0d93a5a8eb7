// SPDX-License-Identifier: MIT

// Package frame implements a two-dimensional keyed table of observations.
//
// A Frame[R, C, V] maps (row key, column key) pairs to observations and keeps
// two internal representations at all times:
//
//   - row-major:    row key → (column key → observation)
//   - column-major: column key → (row key → observation)
//
// The two maps are content-equal views of one logical table, differing only
// in primary grouping. Every mutation path — the cell setter, the bulk
// constructors, writes through row/column views — funnels through a single
// internal dual-write primitive so no caller can ever observe the maps out of
// sync. Bulk construction builds one map directly and derives the other by
// transposition.
//
// The package provides:
//
//   - Bulk construction from rows, columns, or (row, col, value) triples.
//   - Symmetric cell access from either side (Get / GetByCol) with implicit
//     materialization of missing rows and columns, and a non-mutating Peek.
//   - Live row/column views (series.Series aliases with write-back) and
//     deep-independent sub-frame selection.
//   - Linear predicate search in deterministic row-outer/column-inner order.
//   - A deterministic fixed-width textual dump for diffing in tests.
//
// A Frame never deletes rows or columns; smaller tables are derived with
// SelectRows/SelectCols. The observation type V is fixed per instance; use
// V = any for heterogeneous tables and FindAs for typed search over them.
//
// A Frame is not safe for concurrent use: it is mutably owned by its creator,
// and views alias the parent. Sub-frames and filtered series are independent
// copies and may be handed off freely.
package frame
