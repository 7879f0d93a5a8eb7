// SPDX-License-Identifier: MIT

// Package frame: the Frame type and its internal synchronization primitives.
// Everything that mutates a Frame funnels through setCell (the dual write)
// or transpose (bulk derivation); construction is in construction.go, access
// in access.go, views in views.go, selection in project.go, search in
// search.go, rendering in render.go.

package frame

import "github.com/katalvlaran/tabular/omap"

// Frame is a two-dimensional keyed table of observations, stored twice: once
// grouped by row key and once grouped by column key.
//
// Invariant: for every (r, c) recorded in either map,
// rows[r][c] == cols[c][r], and the outer key sets of the two maps reference
// each other symmetrically after every public operation. The invariant is
// enforced structurally: setCell is the only code path that writes a cell,
// and transpose is the only code path that derives one map from the other.
//
// Iteration order of rows and columns is insertion order (first appearance),
// stable for the lifetime of the instance. Not safe for concurrent use.
type Frame[R comparable, C comparable, V any] struct {
	// rows is the row-major representation: row key → (column key → cell).
	rows *omap.Map[R, *omap.Map[C, V]]

	// cols is the column-major representation: column key → (row key → cell).
	cols *omap.Map[C, *omap.Map[R, V]]
}

// New returns an empty Frame.
// Complexity: O(1)
func New[R comparable, C comparable, V any]() *Frame[R, C, V] {
	return &Frame[R, C, V]{
		rows: omap.New[R, *omap.Map[C, V]](),
		cols: omap.New[C, *omap.Map[R, V]](),
	}
}

// setCell writes v at (r, c) in BOTH representations. This is the single
// invariant-preserving mutation primitive: every public mutation path ends
// here, so no caller can observe the two maps out of sync.
// Complexity: O(1)
func (f *Frame[R, C, V]) setCell(r R, c C, v V) {
	f.ensure(r, c)
	row, _ := f.rows.Get(r)
	row.Put(c, v)
	col, _ := f.cols.Get(c)
	col.Put(r, v)
}

// ensure materializes the outer entries for r and c and, when the crossing
// cell is absent, records a zero-value placeholder in both maps so that
// shape queries see both keys immediately.
//
// The dual-map invariant guarantees rows[r] has c exactly when cols[c] has
// r, so probing the row-major side alone is sufficient.
// Complexity: O(1)
func (f *Frame[R, C, V]) ensure(r R, c C) {
	row := f.rowInner(r)
	col := f.colInner(c)
	if !row.Has(c) {
		var zero V
		row.Put(c, zero)
		col.Put(r, zero)
	}
}

// rowInner returns the row-major inner map for r, creating it if absent.
// Complexity: O(1)
func (f *Frame[R, C, V]) rowInner(r R) *omap.Map[C, V] {
	row, ok := f.rows.Get(r)
	if !ok {
		row = omap.New[C, V]()
		f.rows.Put(r, row)
	}

	return row
}

// colInner returns the column-major inner map for c, creating it if absent.
// Complexity: O(1)
func (f *Frame[R, C, V]) colInner(c C) *omap.Map[R, V] {
	col, ok := f.cols.Get(c)
	if !ok {
		col = omap.New[R, V]()
		f.cols.Put(c, col)
	}

	return col
}

// transpose derives the opposite grouping of a nested map: for every outer a
// and inner (b, v), the result holds v at [b][a]. Outer keys of the result
// appear in order of first appearance as inner keys of the source. This is
// the single synchronization primitive shared by the bulk constructors and
// sub-frame selection.
// Complexity: O(cells)
func transpose[A comparable, B comparable, V any](src *omap.Map[A, *omap.Map[B, V]]) *omap.Map[B, *omap.Map[A, V]] {
	dst := omap.New[B, *omap.Map[A, V]]()
	for a, inner := range src.All() {
		for b, v := range inner.All() {
			out, ok := dst.Get(b)
			if !ok {
				out = omap.New[A, V]()
				dst.Put(b, out)
			}
			out.Put(a, v)
		}
	}

	return dst
}
