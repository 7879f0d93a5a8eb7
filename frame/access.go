// SPDX-License-Identifier: MIT

// Package frame: cell access, shape, and whole-frame copying/equality.

package frame

// Get returns the observation at (r, c), read from the row-major side.
//
// Reading has a documented side effect: if r or c is new, the outer entries
// are materialized and a zero-value placeholder is recorded at the crossing
// cell in both representations, so subsequent shape queries see both keys.
// Use Peek for a side-effect-free probe.
// Complexity: O(1)
func (f *Frame[R, C, V]) Get(r R, c C) V {
	f.ensure(r, c)
	row, _ := f.rows.Get(r)
	v, _ := row.Get(c)

	return v
}

// GetByCol is the same logical read as Get(r, c) expressed from the
// column-major side; for every state reachable through the public contract
// the two return identical results.
// Complexity: O(1)
func (f *Frame[R, C, V]) GetByCol(c C, r R) V {
	f.ensure(r, c)
	col, _ := f.cols.Get(c)
	v, _ := col.Get(r)

	return v
}

// Set records v at (r, c) in both representations, materializing the row and
// column if needed.
// Complexity: O(1)
func (f *Frame[R, C, V]) Set(r R, c C, v V) {
	f.setCell(r, c, v)
}

// Peek returns the observation at (r, c) and whether the cell is recorded,
// without materializing anything.
// Complexity: O(1)
func (f *Frame[R, C, V]) Peek(r R, c C) (V, bool) {
	row, ok := f.rows.Get(r)
	if !ok {
		var zero V

		return zero, false
	}

	return row.Get(c)
}

// HasRow reports whether row key r is present.
// Complexity: O(1)
func (f *Frame[R, C, V]) HasRow(r R) bool {
	return f.rows.Has(r)
}

// HasCol reports whether column key c is present.
// Complexity: O(1)
func (f *Frame[R, C, V]) HasCol(c C) bool {
	return f.cols.Has(c)
}

// RowKeys returns all row keys in insertion order.
// Complexity: O(rows)
func (f *Frame[R, C, V]) RowKeys() []R {
	return f.rows.Keys()
}

// ColKeys returns all column keys in insertion order.
// Complexity: O(cols)
func (f *Frame[R, C, V]) ColKeys() []C {
	return f.cols.Keys()
}

// Shape returns the cardinality of the row and column key sets.
// Complexity: O(1)
func (f *Frame[R, C, V]) Shape() (int, int) {
	return f.rows.Len(), f.cols.Len()
}

// Clone returns a deep, independent copy: mutating either frame never
// affects the other. Key orders are preserved.
// Complexity: O(cells)
func (f *Frame[R, C, V]) Clone() *Frame[R, C, V] {
	out := New[R, C, V]()
	for r, inner := range f.rows.All() {
		out.rows.Put(r, inner.Clone())
	}
	for c, inner := range f.cols.All() {
		out.cols.Put(c, inner.Clone())
	}

	return out
}

// Equal reports whether a and b record the same cells with the same values.
// Equality is content-based: key order does not matter.
// Complexity: O(cells)
func Equal[R comparable, C comparable, V comparable](a, b *Frame[R, C, V]) bool {
	if a.rows.Len() != b.rows.Len() || a.cols.Len() != b.cols.Len() {
		return false
	}
	for r, inner := range a.rows.All() {
		other, ok := b.rows.Get(r)
		if !ok || other.Len() != inner.Len() {
			return false
		}
		for c, v := range inner.All() {
			w, ok := other.Get(c)
			if !ok || v != w {
				return false
			}
		}
	}

	return true
}
