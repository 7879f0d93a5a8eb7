// SPDX-License-Identifier: MIT

// Package frame: deterministic textual rendering. The dump is stable enough
// to diff in tests (keys iterate in insertion order, widths are derived from
// content) but is not a machine-readable format.

package frame

import (
	"fmt"
	"strings"
)

// String renders the frame as a fixed-width table: a header row of column
// keys, then one line per row with a left gutter of "ordinal) rowKey" and
// right-aligned cells. Cells absent from a ragged row render empty.
// Complexity: O(rows × cols)
func (f *Frame[R, C, V]) String() string {
	rowKeys := f.rows.Keys()
	colKeys := f.cols.Keys()

	// Left gutter: "i) rowKey", padded to the widest entry.
	gutter := make([]string, len(rowKeys))
	gutterWidth := 0
	for i, r := range rowKeys {
		gutter[i] = fmt.Sprintf("%d) %v", i, r)
		if len(gutter[i]) > gutterWidth {
			gutterWidth = len(gutter[i])
		}
	}

	// Per-column width: max of header and every cell in that column.
	widths := make([]int, len(colKeys))
	for j, c := range colKeys {
		widths[j] = len(fmt.Sprintf("%v", c))
	}
	cells := make([][]string, len(rowKeys))
	for i, r := range rowKeys {
		cells[i] = make([]string, len(colKeys))
		inner, _ := f.rows.Get(r)
		for j, c := range colKeys {
			if v, ok := inner.Get(c); ok {
				cells[i][j] = fmt.Sprintf("%v", v)
			}
			if len(cells[i][j]) > widths[j] {
				widths[j] = len(cells[i][j])
			}
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutterWidth))
	for j, c := range colKeys {
		fmt.Fprintf(&b, "  %*v", widths[j], c)
	}
	b.WriteByte('\n')
	for i := range rowKeys {
		fmt.Fprintf(&b, "%-*s", gutterWidth, gutter[i])
		for j := range colKeys {
			fmt.Fprintf(&b, "  %*s", widths[j], cells[i][j])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
