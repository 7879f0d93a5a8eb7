// Package frame_test: unit tests for linear search and its scan-order,
// equality, and typed-search variants.
package frame_test

import (
	"testing"

	"github.com/katalvlaran/tabular/frame"
	"github.com/stretchr/testify/require"
)

// TestFindScanOrder verifies the first match is taken in row-major order:
// rows outer (insertion order), columns inner.
func TestFindScanOrder(t *testing.T) {
	f := frame.FromRows(
		frame.Row[string, string, int]{Key: "rA", Cells: pairs(p("c1", 7), p("c2", 0))},
		frame.Row[string, string, int]{Key: "rB", Cells: pairs(p("c1", 0), p("c2", 7))},
	)

	// Both (rA,c1) and (rB,c2) match; row-major order picks (rA,c1).
	r, c, err := f.Find(func(v int) bool { return v == 7 })
	require.NoError(t, err)
	require.Equal(t, "rA", r)
	require.Equal(t, "c1", c)
}

// TestFindInnerOrder verifies the inner scan walks columns in row order.
func TestFindInnerOrder(t *testing.T) {
	f := frame.FromRows(
		frame.Row[string, string, int]{Key: "rA", Cells: pairs(p("c1", 0), p("c2", 7), p("c3", 7))},
	)

	_, c, err := f.Find(func(v int) bool { return v == 7 })
	require.NoError(t, err)
	require.Equal(t, "c2", c) // first matching column within the row
}

// TestFindNoMatch verifies the ErrNoMatch failure mode.
func TestFindNoMatch(t *testing.T) {
	f := threeByTwo()

	_, _, err := f.Find(func(v int) bool { return v > 100 })
	require.ErrorIs(t, err, frame.ErrNoMatch)
}

// TestTryFind verifies the non-failing variant.
func TestTryFind(t *testing.T) {
	f := threeByTwo()

	r, c, ok := f.TryFind(func(v int) bool { return v == 6 })
	require.True(t, ok)
	require.Equal(t, "rC", r)
	require.Equal(t, "c2", c)

	r, c, ok = f.TryFind(func(v int) bool { return v > 100 })
	require.False(t, ok)
	require.Empty(t, r) // zero values on a miss
	require.Empty(t, c)
}

// TestFindValue verifies the equality overload.
func TestFindValue(t *testing.T) {
	f := threeByTwo()

	r, c, err := frame.FindValue(f, 5)
	require.NoError(t, err)
	require.Equal(t, "rC", r)
	require.Equal(t, "c1", c)

	_, _, err = frame.FindValue(f, 404)
	require.ErrorIs(t, err, frame.ErrNoMatch)
}

// TestFindAs verifies typed search over a heterogeneous frame, including the
// conversion failure on a foreign observation and the nil-skip on
// placeholders.
func TestFindAs(t *testing.T) {
	f := frame.New[string, string, any]()
	f.Set("r1", "c1", 3)
	f.Set("r2", "c2", 9)
	_ = f.Get("r1", "c2") // materialize a nil placeholder at (r1,c2)

	r, c, err := frame.FindAs(f, func(v int) bool { return v > 5 })
	require.NoError(t, err) // the nil placeholder was skipped, ints asserted
	require.Equal(t, "r2", r)
	require.Equal(t, "c2", c)

	f.Set("r1", "c2", "text") // poison the scan with a non-int
	_, _, err = frame.FindAs(f, func(v int) bool { return v > 100 })
	require.ErrorIs(t, err, frame.ErrConvert) // not silently excluded

	_, _, err = frame.FindAs(f, func(v bool) bool { return v })
	require.ErrorIs(t, err, frame.ErrConvert) // first non-bool cell aborts
}
