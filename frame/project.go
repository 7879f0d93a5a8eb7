// SPDX-License-Identifier: MIT

// Package frame: sub-frame selection. Unlike views, selected sub-frames are
// deep-independent copies rebuilt through the bulk constructors, so they may
// be handed off and mutated freely.

package frame

import (
	"fmt"

	"github.com/katalvlaran/tabular/series"
)

// SelectRows returns a new independent Frame containing exactly the requested
// rows, in the requested order, with their full cell contents. The result
// shares no mutable state with f. Returns ErrRowNotFound (wrapped with the
// key) if any requested row key is absent.
// Complexity: O(selected cells)
func (f *Frame[R, C, V]) SelectRows(keys []R) (*Frame[R, C, V], error) {
	rows := make([]Row[R, C, V], 0, len(keys))
	for _, r := range keys {
		inner, ok := f.rows.Get(r)
		if !ok {
			return nil, fmt.Errorf("select row %v: %w", r, ErrRowNotFound)
		}
		rows = append(rows, Row[R, C, V]{Key: r, Cells: series.View(inner, nil)})
	}

	// FromRows copies every cell out of the aliased inners, so the result is
	// fully detached from f.
	return FromRows(rows...), nil
}

// SelectCols returns a new independent Frame containing exactly the requested
// columns, symmetric to SelectRows. Returns ErrColNotFound (wrapped with the
// key) if any requested column key is absent.
// Complexity: O(selected cells)
func (f *Frame[R, C, V]) SelectCols(keys []C) (*Frame[R, C, V], error) {
	cols := make([]Column[R, C, V], 0, len(keys))
	for _, c := range keys {
		inner, ok := f.cols.Get(c)
		if !ok {
			return nil, fmt.Errorf("select column %v: %w", c, ErrColNotFound)
		}
		cols = append(cols, Column[R, C, V]{Key: c, Cells: series.View(inner, nil)})
	}

	return FromColumns(cols...), nil
}
