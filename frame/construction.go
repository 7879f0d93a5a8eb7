// SPDX-License-Identifier: MIT

// Package frame: bulk construction from rows, columns, and triples.
// Each constructor builds one representation directly and derives the other
// with transpose, so the dual-map invariant holds by construction.

package frame

import "github.com/katalvlaran/tabular/series"

// Row pairs a row key with its cells, keyed by column.
type Row[R comparable, C comparable, V any] struct {
	// Key identifies the row.
	Key R

	// Cells holds the row's observations keyed by column key.
	Cells *series.Series[C, V]
}

// Column pairs a column key with its cells, keyed by row.
type Column[R comparable, C comparable, V any] struct {
	// Key identifies the column.
	Key C

	// Cells holds the column's observations keyed by row key.
	Cells *series.Series[R, V]
}

// Triple is one (row, col, value) record for FromTriples and Triples.
type Triple[R comparable, C comparable, V any] struct {
	Row   R
	Col   C
	Value V
}

// FromRows builds a Frame from whole rows. Each row's cells are copied into a
// fresh inner map (the Frame shares no storage with the inputs); the
// column-major representation is then derived by transposition. A duplicate
// row key merges cell-wise, later cells winning.
// Complexity: O(cells)
func FromRows[R comparable, C comparable, V any](rows ...Row[R, C, V]) *Frame[R, C, V] {
	f := New[R, C, V]()
	for _, row := range rows {
		inner := f.rowInner(row.Key)
		for c, v := range row.Cells.All() {
			inner.Put(c, v)
		}
	}
	f.cols = transpose(f.rows)

	return f
}

// FromColumns builds a Frame from whole columns, symmetrically to FromRows:
// the column-major representation is built directly and row-major is derived
// by transposition.
// Complexity: O(cells)
func FromColumns[R comparable, C comparable, V any](cols ...Column[R, C, V]) *Frame[R, C, V] {
	f := New[R, C, V]()
	for _, col := range cols {
		inner := f.colInner(col.Key)
		for r, v := range col.Cells.All() {
			inner.Put(r, v)
		}
	}
	f.rows = transpose(f.cols)

	return f
}

// FromTriples builds a Frame from individual (row, col, value) records. The
// row-major representation grows incrementally in record order (an unseen row
// key opens a new row on first encounter); column-major is derived by a final
// transposition. A later triple for an already-recorded (row, col) overwrites
// the earlier value: last write wins.
// Complexity: O(len(ts))
func FromTriples[R comparable, C comparable, V any](ts []Triple[R, C, V]) *Frame[R, C, V] {
	f := New[R, C, V]()
	for _, t := range ts {
		f.rowInner(t.Row).Put(t.Col, t.Value)
	}
	f.cols = transpose(f.rows)

	return f
}

// Triples returns every recorded cell as a (row, col, value) record in
// row-major order (rows outer, columns inner). FromTriples(f.Triples())
// reproduces f's contents.
// Complexity: O(cells)
func (f *Frame[R, C, V]) Triples() []Triple[R, C, V] {
	var out []Triple[R, C, V]
	for r, inner := range f.rows.All() {
		for c, v := range inner.All() {
			out = append(out, Triple[R, C, V]{Row: r, Col: c, Value: v})
		}
	}

	return out
}
