// Package series_test: runnable examples documenting the public surface.
package series_test

import (
	"fmt"

	"github.com/katalvlaran/tabular/series"
)

// ExampleFromPairs builds a sequence and filters it without mutating the
// source.
func ExampleFromPairs() {
	temps := series.FromPairs([]series.Pair[string, int]{
		{Key: "mon", Value: 18},
		{Key: "tue", Value: 23},
		{Key: "wed", Value: 21},
	})

	warm := temps.FilterByValue(func(v int) bool { return v > 20 })
	fmt.Println("warm days:", warm.Keys())
	fmt.Println("source len:", temps.Len())

	// Output:
	// warm days: [tue wed]
	// source len: 3
}

// ExampleSeries_Combine sums two sequences key-wise; the result key set is
// the receiver's, not the union.
func ExampleSeries_Combine() {
	a := series.FromPairs([]series.Pair[string, int]{{Key: "x", Value: 1}, {Key: "y", Value: 2}})
	b := series.FromPairs([]series.Pair[string, int]{{Key: "x", Value: 10}, {Key: "y", Value: 20}, {Key: "z", Value: 30}})

	sum, _ := a.Combine(b, func(p, q int) int { return p + q })
	fmt.Println(sum.Keys(), sum.Values())

	// Output:
	// [x y] [11 22]
}

// ExampleReindex re-keys a sequence to a different key type.
func ExampleReindex() {
	byIndex := series.FromPairs([]series.Pair[int, string]{
		{Key: 0, Value: "north"},
		{Key: 1, Value: "south"},
	})

	byLabel := series.Reindex(byIndex, func(i int) string { return fmt.Sprintf("zone-%d", i) })
	fmt.Println(byLabel.Keys())

	// Output:
	// [zone-0 zone-1]
}

// ExampleSeries_KeysWhere shows the lazy, restartable key enumeration.
func ExampleSeries_KeysWhere() {
	temps := series.FromPairs([]series.Pair[string, int]{
		{Key: "mon", Value: 18},
		{Key: "tue", Value: 23},
	})

	hot := temps.KeysWhere(func(v int) bool { return v > 20 })
	for k := range hot {
		fmt.Println(k)
	}
	temps.Set("mon", 30) // the sequence is recomputed, not cached
	for k := range hot {
		fmt.Println(k)
	}

	// Output:
	// tue
	// mon
	// tue
}
