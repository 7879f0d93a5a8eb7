// SPDX-License-Identifier: MIT

// Package frame: linear predicate search. The scan walks the row-major
// representation in its iteration order — rows outer, columns inner — so the
// first match is deterministic. No value index exists; worst case is always
// O(rows × cols).

package frame

import "fmt"

// Find returns the (row, col) of the first observation satisfying pred, in
// row-major scan order. Returns ErrNoMatch if the scan completes without a
// match.
// Complexity: O(rows × cols)
func (f *Frame[R, C, V]) Find(pred func(V) bool) (R, C, error) {
	for r, inner := range f.rows.All() {
		for c, v := range inner.All() {
			if pred(v) {
				return r, c, nil
			}
		}
	}
	var zr R
	var zc C

	return zr, zc, ErrNoMatch
}

// TryFind is Find without the failure mode: the boolean reports whether a
// match was found, and the keys are zero values when it is false.
// Complexity: O(rows × cols)
func (f *Frame[R, C, V]) TryFind(pred func(V) bool) (R, C, bool) {
	r, c, err := f.Find(pred)

	return r, c, err == nil
}

// FindValue is the equality overload of Find: it locates the first cell whose
// observation equals target.
// Complexity: O(rows × cols)
func FindValue[R comparable, C comparable, V comparable](f *Frame[R, C, V], target V) (R, C, error) {
	return f.Find(func(v V) bool { return v == target })
}

// FindAs searches a heterogeneous frame (V = any) for the first observation
// of type T satisfying pred. Nil cells (unset placeholders) are skipped; a
// non-nil cell that is not a T aborts the scan with ErrConvert rather than
// being silently excluded. Returns ErrNoMatch if the scan completes without
// a match.
// Complexity: O(rows × cols)
func FindAs[T any, R comparable, C comparable](f *Frame[R, C, any], pred func(T) bool) (R, C, error) {
	var zr R
	var zc C
	for r, inner := range f.rows.All() {
		for c, v := range inner.All() {
			if v == nil {
				continue
			}
			t, ok := v.(T)
			if !ok {
				return zr, zc, fmt.Errorf("find at (%v, %v), observation %T: %w", r, c, v, ErrConvert)
			}
			if pred(t) {
				return r, c, nil
			}
		}
	}

	return zr, zc, ErrNoMatch
}
