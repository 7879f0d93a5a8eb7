// SPDX-License-Identifier: MIT

// Package series: the Series type, its constructors, and functional options.
// Methods live in methods.go; package-level generic transforms (re-keying,
// value mapping) live in transform.go; sentinel errors in errors.go.

package series

import "github.com/katalvlaran/tabular/omap"

// Pair couples a key with its observation. It is the element type of the
// FromPairs constructor and keeps construction order explicit (a plain Go map
// literal would randomize it).
type Pair[K comparable, V any] struct {
	// Key uniquely identifies the observation within its Series.
	Key K

	// Value is the observation stored under Key.
	Value V
}

// Series is a keyed sequence of observations backed by an insertion-ordered
// map. Iteration order is the backing container's native order and is stable
// for the lifetime of the instance.
//
// A Series owns its backing map unless constructed with View, in which case
// it aliases storage owned elsewhere (frame hands out such aliases as live
// row/column views). Not safe for concurrent use.
type Series[K comparable, V any] struct {
	// data is the backing ordered map.
	data *omap.Map[K, V]

	// horizontal is purely descriptive: it decides which way Shape reports
	// its two cardinalities and has no effect on storage or lookup.
	horizontal bool

	// sink, when non-nil, is invoked after every write so the owning
	// structure can re-apply the mutation through its own setter. frame
	// installs its dual-write cell setter here.
	sink func(K, V)
}

// config collects option state before construction.
type config struct {
	horizontal bool
}

// Option configures a Series at construction time.
type Option func(*config)

// WithHorizontal marks the sequence as horizontally oriented. Orientation
// only affects how Shape orders its result; storage and lookup are identical
// either way.
func WithHorizontal() Option {
	return func(c *config) { c.horizontal = true }
}

// New returns an empty Series.
// Complexity: O(1)
func New[K comparable, V any](opts ...Option) *Series[K, V] {
	return View(omap.New[K, V](), nil, opts...)
}

// FromPairs returns a Series containing the given pairs in order.
// A later pair with a duplicate key overwrites the earlier value.
// Complexity: O(n)
func FromPairs[K comparable, V any](pairs []Pair[K, V], opts ...Option) *Series[K, V] {
	s := New[K, V](opts...)
	for _, p := range pairs {
		s.data.Put(p.Key, p.Value)
	}

	return s
}

// FromMap returns a Series containing the entries of m. The source map has no
// iteration order, so the resulting sequence order is unspecified (though
// stable once constructed); prefer FromPairs when order matters.
// Complexity: O(n)
func FromMap[K comparable, V any](m map[K]V, opts ...Option) *Series[K, V] {
	s := New[K, V](opts...)
	for k, v := range m {
		s.data.Put(k, v)
	}

	return s
}

// View returns a Series aliasing backing rather than copying it: reads observe
// backing's current state and plain writes land in it directly. When sink is
// non-nil it is invoked after every write through the Series, letting the
// owner of backing re-apply the mutation through its own setter. A nil backing
// is replaced by a fresh empty map.
// Complexity: O(1)
func View[K comparable, V any](backing *omap.Map[K, V], sink func(K, V), opts ...Option) *Series[K, V] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if backing == nil {
		backing = omap.New[K, V]()
	}

	return &Series[K, V]{data: backing, horizontal: c.horizontal, sink: sink}
}
