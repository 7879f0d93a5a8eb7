// Package frame_test: golden tests for the textual dump.
package frame_test

import (
	"testing"

	"github.com/katalvlaran/tabular/frame"
	"github.com/stretchr/testify/require"
)

// TestStringGolden pins the exact rendering of the canonical fixture.
func TestStringGolden(t *testing.T) {
	f := threeByTwo()

	expected := "       c1  c2\n" +
		"0) rA   1   2\n" +
		"1) rB   3   4\n" +
		"2) rC   5   6\n"
	require.Equal(t, expected, f.String())
}

// TestStringWidths verifies cell content can widen a column past its header.
func TestStringWidths(t *testing.T) {
	f := frame.FromTriples([]frame.Triple[string, string, int]{
		{Row: "r", Col: "c", Value: 1234}, // value wider than header "c"
	})

	expected := "         c\n" +
		"0) r  1234\n"
	require.Equal(t, expected, f.String())
}

// TestStringDeterministic verifies two renders of the same frame are
// byte-identical (insertion-ordered backing, no map randomness).
func TestStringDeterministic(t *testing.T) {
	f := threeByTwoFromTriples()
	require.Equal(t, f.String(), f.String())
}
