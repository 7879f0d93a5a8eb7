// SPDX-License-Identifier: MIT

// Package frame: live row/column views and write-back slices.
// A view is a series.Series aliasing one inner map of the parent Frame, with
// the Frame's dual-write setter installed as the write-back sink — writing
// through a view mutates the parent and keeps both representations in sync.

package frame

import "github.com/katalvlaran/tabular/series"

// RowView returns a live, horizontally oriented view over row r. Reads
// observe the parent's current cells for that row; writes are routed back
// through the Frame's cell setter, so the column-major side stays
// synchronized. Viewing an unknown row materializes its outer entry.
// Complexity: O(1)
func (f *Frame[R, C, V]) RowView(r R) *series.Series[C, V] {
	inner := f.rowInner(r)

	return series.View(inner, func(c C, v V) { f.setCell(r, c, v) }, series.WithHorizontal())
}

// ColView returns a live view over column c, symmetric to RowView.
// Complexity: O(1)
func (f *Frame[R, C, V]) ColView(c C) *series.Series[R, V] {
	inner := f.colInner(c)

	return series.View(inner, func(r R, v V) { f.setCell(r, c, v) })
}

// Rows returns an eagerly materialized sequence of one live RowView per row
// key, in row order. The outer sequence is detached; the views inside it are
// live and write back to f.
// Complexity: O(rows)
func (f *Frame[R, C, V]) Rows() *series.Series[R, *series.Series[C, V]] {
	out := series.New[R, *series.Series[C, V]]()
	for _, r := range f.rows.Keys() {
		out.Set(r, f.RowView(r))
	}

	return out
}

// Cols returns an eagerly materialized sequence of one live ColView per
// column key, in column order, symmetric to Rows.
// Complexity: O(cols)
func (f *Frame[R, C, V]) Cols() *series.Series[C, *series.Series[R, V]] {
	out := series.New[C, *series.Series[R, V]]()
	for _, c := range f.cols.Keys() {
		out.Set(c, f.ColView(c))
	}

	return out
}

// RowSlice projects row r onto the given columns: a write-back sequence
// holding the current observation for each requested column (materializing
// missing cells like Get does). Writes through the slice are re-applied
// through the Frame's cell setter; it is a sequence of cell projections, not
// a new Frame.
// Complexity: O(len(cols))
func (f *Frame[R, C, V]) RowSlice(r R, cols []C) *series.Series[C, V] {
	out := series.View[C, V](nil, func(c C, v V) { f.setCell(r, c, v) }, series.WithHorizontal())
	for _, c := range cols {
		out.Set(c, f.Get(r, c))
	}

	return out
}

// ColSlice projects column c onto the given rows, symmetric to RowSlice.
// Complexity: O(len(rows))
func (f *Frame[R, C, V]) ColSlice(c C, rows []R) *series.Series[R, V] {
	out := series.View[R, V](nil, func(r R, v V) { f.setCell(r, c, v) })
	for _, r := range rows {
		out.Set(r, f.Get(r, c))
	}

	return out
}
