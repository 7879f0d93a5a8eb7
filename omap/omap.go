// SPDX-License-Identifier: MIT

// Package omap: a generic insertion-ordered map.
//
// This file defines Map, a type-safe facade over gods' linkedhashmap. The
// underlying container stores interface{} keys and values; Map confines every
// boxing/unboxing assertion to this one package so that series and frame can
// work with concrete K/V types throughout.
//
// Ordering contract (relied upon by frame's search and rendering):
//   - Iteration yields entries in insertion order.
//   - Overwriting an existing key keeps the key's original position.
//   - Order is stable for the lifetime of the instance.
package omap

import (
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Map is an insertion-ordered mapping from K to V.
// The zero value is not usable; construct with New.
// Not safe for concurrent use; callers provide external synchronization.
type Map[K comparable, V any] struct {
	inner *linkedhashmap.Map
}

// New returns an empty ordered map.
// Complexity: O(1)
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{inner: linkedhashmap.New()}
}

// Put inserts or overwrites the value for k.
// An overwrite preserves k's position in iteration order.
// Complexity: O(1) amortized
func (m *Map[K, V]) Put(k K, v V) {
	m.inner.Put(k, v)
}

// Get returns the value for k and whether k is present.
// Complexity: O(1)
func (m *Map[K, V]) Get(k K) (V, bool) {
	raw, ok := m.inner.Get(k)
	if !ok {
		var zero V

		return zero, false
	}

	// Comma-ok form: when V is an interface type, a stored nil boxes to a nil
	// interface{}, and a plain assertion would panic instead of yielding V's
	// zero value.
	v, _ := raw.(V)

	return v, true
}

// Has reports whether k is present.
// Complexity: O(1)
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.inner.Get(k)

	return ok
}

// Len returns the number of entries.
// Complexity: O(1)
func (m *Map[K, V]) Len() int {
	return m.inner.Size()
}

// Keys returns all keys in insertion order.
// Complexity: O(n)
func (m *Map[K, V]) Keys() []K {
	raw := m.inner.Keys()
	out := make([]K, len(raw))
	for i, k := range raw {
		out[i] = k.(K)
	}

	return out
}

// Values returns all values in insertion order.
// Complexity: O(n)
func (m *Map[K, V]) Values() []V {
	raw := m.inner.Values()
	out := make([]V, len(raw))
	for i, v := range raw {
		out[i], _ = v.(V)
	}

	return out
}

// All returns a restartable iterator over entries in insertion order.
// The iterator reflects the map's state at the time each pass begins.
// Complexity: O(n) per full pass
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.inner.Iterator()
		for it.Next() {
			v, _ := it.Value().(V)
			if !yield(it.Key().(K), v) {
				return
			}
		}
	}
}

// Clone returns an independent copy with the same entries and order.
// Values are copied shallowly.
// Complexity: O(n)
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := New[K, V]()
	it := m.inner.Iterator()
	for it.Next() {
		out.inner.Put(it.Key(), it.Value())
	}

	return out
}
