// Package frame_test: shared fixtures. Every helper builds small, fully
// deterministic frames so ordering assertions stay byte-stable.
package frame_test

import (
	"github.com/katalvlaran/tabular/frame"
	"github.com/katalvlaran/tabular/series"
)

// pairs abbreviates series.FromPairs for string→int cells.
func pairs(ps ...series.Pair[string, int]) *series.Series[string, int] {
	return series.FromPairs(ps)
}

// p abbreviates a single key/value pair.
func p(k string, v int) series.Pair[string, int] {
	return series.Pair[string, int]{Key: k, Value: v}
}

// threeByTwo builds the canonical fixture used across the suite:
//
//	     c1  c2
//	rA    1   2
//	rB    3   4
//	rC    5   6
func threeByTwo() *frame.Frame[string, string, int] {
	return frame.FromRows(
		frame.Row[string, string, int]{Key: "rA", Cells: pairs(p("c1", 1), p("c2", 2))},
		frame.Row[string, string, int]{Key: "rB", Cells: pairs(p("c1", 3), p("c2", 4))},
		frame.Row[string, string, int]{Key: "rC", Cells: pairs(p("c1", 5), p("c2", 6))},
	)
}

// threeByTwoFromColumns builds the same logical table column-first.
func threeByTwoFromColumns() *frame.Frame[string, string, int] {
	return frame.FromColumns(
		frame.Column[string, string, int]{Key: "c1", Cells: pairs(p("rA", 1), p("rB", 3), p("rC", 5))},
		frame.Column[string, string, int]{Key: "c2", Cells: pairs(p("rA", 2), p("rB", 4), p("rC", 6))},
	)
}

// threeByTwoFromTriples builds the same logical table cell by cell.
func threeByTwoFromTriples() *frame.Frame[string, string, int] {
	return frame.FromTriples([]frame.Triple[string, string, int]{
		{Row: "rA", Col: "c1", Value: 1},
		{Row: "rA", Col: "c2", Value: 2},
		{Row: "rB", Col: "c1", Value: 3},
		{Row: "rB", Col: "c2", Value: 4},
		{Row: "rC", Col: "c1", Value: 5},
		{Row: "rC", Col: "c2", Value: 6},
	})
}
