// SPDX-License-Identifier: MIT

// Test-only bridge exposing the private transpose primitive to frame_test,
// so transposition can be verified in isolation without widening the API.

package frame

import "github.com/katalvlaran/tabular/omap"

// Transpose is a test-only alias for the internal transpose primitive.
func Transpose[A comparable, B comparable, V any](src *omap.Map[A, *omap.Map[B, V]]) *omap.Map[B, *omap.Map[A, V]] {
	return transpose(src)
}

// RowMajor is a test-only accessor for white-box invariant checks.
func (f *Frame[R, C, V]) RowMajor() *omap.Map[R, *omap.Map[C, V]] { return f.rows }

// ColMajor is a test-only accessor for white-box invariant checks.
func (f *Frame[R, C, V]) ColMajor() *omap.Map[C, *omap.Map[R, V]] { return f.cols }
