// SPDX-License-Identifier: MIT

// Package series: Series methods — access, filtering, combination, shape,
// and rendering. Transforms that change a type parameter are in transform.go.

package series

import (
	"fmt"
	"iter"
	"strings"
)

// Get returns the observation stored under k.
// Returns ErrKeyNotFound (wrapped with the key) if k is absent.
// Complexity: O(1)
func (s *Series[K, V]) Get(k K) (V, error) {
	v, ok := s.data.Get(k)
	if !ok {
		var zero V

		return zero, fmt.Errorf("get %v: %w", k, ErrKeyNotFound)
	}

	return v, nil
}

// Set inserts or overwrites the observation under k. If the Series carries a
// write-back sink (it is a live view), the write is additionally re-applied
// through the owner's setter so the owner stays synchronized.
// Complexity: O(1)
func (s *Series[K, V]) Set(k K, v V) {
	s.data.Put(k, v)
	if s.sink != nil {
		s.sink(k, v)
	}
}

// GetMany returns a new detached Series holding the requested keys in the
// given order. Returns ErrKeyNotFound if any key is absent; the source is
// never mutated.
// Complexity: O(len(keys))
func (s *Series[K, V]) GetMany(keys []K) (*Series[K, V], error) {
	out := s.emptyLike()
	for _, k := range keys {
		v, ok := s.data.Get(k)
		if !ok {
			return nil, fmt.Errorf("get many %v: %w", k, ErrKeyNotFound)
		}
		out.data.Put(k, v)
	}

	return out, nil
}

// SetMany copies the observations for the given keys out of other into s.
// Every requested key must be present in other; on ErrKeyNotFound nothing is
// written (no partial application).
// Complexity: O(len(keys))
func (s *Series[K, V]) SetMany(keys []K, other *Series[K, V]) error {
	// Validate the whole batch before the first write.
	for _, k := range keys {
		if !other.data.Has(k) {
			return fmt.Errorf("set many %v: %w", k, ErrKeyNotFound)
		}
	}
	for _, k := range keys {
		v, _ := other.data.Get(k)
		s.Set(k, v)
	}

	return nil
}

// FilterByKey returns a new detached Series holding exactly the entries whose
// key satisfies pred, preserving pairing and order. The source is unchanged.
// Complexity: O(n)
func (s *Series[K, V]) FilterByKey(pred func(K) bool) *Series[K, V] {
	return s.Filter(func(k K, _ V) bool { return pred(k) })
}

// FilterByValue returns a new detached Series holding exactly the entries
// whose value satisfies pred, preserving pairing and order.
// Complexity: O(n)
func (s *Series[K, V]) FilterByValue(pred func(V) bool) *Series[K, V] {
	return s.Filter(func(_ K, v V) bool { return pred(v) })
}

// Filter returns a new detached Series holding exactly the entries satisfying
// pred, preserving pairing and order. The source is never mutated.
// Complexity: O(n)
func (s *Series[K, V]) Filter(pred func(K, V) bool) *Series[K, V] {
	out := s.emptyLike()
	for k, v := range s.data.All() {
		if pred(k, v) {
			out.data.Put(k, v)
		}
	}

	return out
}

// Combine pairs every observation in s with the observation under the same
// key in other and records op(this, that). The result key set equals s's key
// set exactly (not the union); returns ErrKeyNotFound if other lacks any of
// s's keys.
// Complexity: O(n)
func (s *Series[K, V]) Combine(other *Series[K, V], op func(V, V) V) (*Series[K, V], error) {
	out := s.emptyLike()
	for k, v := range s.data.All() {
		w, ok := other.data.Get(k)
		if !ok {
			return nil, fmt.Errorf("combine %v: %w", k, ErrKeyNotFound)
		}
		out.data.Put(k, op(v, w))
	}

	return out, nil
}

// KeysWhere returns a lazy sequence of the keys whose observation satisfies
// pred. The sequence is finite, restartable, and recomputed on every pass —
// it is never cached, so later mutations of s are visible to later passes.
// Complexity: O(n) per full pass
func (s *Series[K, V]) KeysWhere(pred func(V) bool) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k, v := range s.data.All() {
			if pred(v) && !yield(k) {
				return
			}
		}
	}
}

// Has reports whether k is present.
// Complexity: O(1)
func (s *Series[K, V]) Has(k K) bool {
	return s.data.Has(k)
}

// Len returns the number of observations.
// Complexity: O(1)
func (s *Series[K, V]) Len() int {
	return s.data.Len()
}

// Keys returns all keys in sequence order.
// Complexity: O(n)
func (s *Series[K, V]) Keys() []K {
	return s.data.Keys()
}

// Values returns all observations in sequence order.
// Complexity: O(n)
func (s *Series[K, V]) Values() []V {
	return s.data.Values()
}

// All returns a restartable iterator over (key, observation) in sequence order.
// Complexity: O(n) per full pass
func (s *Series[K, V]) All() iter.Seq2[K, V] {
	return s.data.All()
}

// Horizontal reports the orientation flag set at construction.
func (s *Series[K, V]) Horizontal() bool {
	return s.horizontal
}

// Clone returns a detached copy with the same entries, order, and orientation.
// The copy carries no write-back sink even if s is a live view.
// Complexity: O(n)
func (s *Series[K, V]) Clone() *Series[K, V] {
	out := s.emptyLike()
	for k, v := range s.data.All() {
		out.data.Put(k, v)
	}

	return out
}

// Shape reports (Len, width) for a vertical sequence and (width, Len) for a
// horizontal one, where width is the maximum Len() of any observation that is
// itself a sized collection, or 1 when all observations are scalar. It is a
// display hint, not a structural constraint.
// Complexity: O(n)
func (s *Series[K, V]) Shape() (int, int) {
	width := 1
	for _, v := range s.data.All() {
		if sized, ok := any(v).(interface{ Len() int }); ok && sized.Len() > width {
			width = sized.Len()
		}
	}
	if s.horizontal {
		return width, s.data.Len()
	}

	return s.data.Len(), width
}

// String renders the sequence as aligned "key : value" lines in sequence
// order. The output is deterministic and stable enough to diff in tests.
// Complexity: O(n)
func (s *Series[K, V]) String() string {
	keyWidth := 0
	for _, k := range s.data.Keys() {
		if w := len(fmt.Sprintf("%v", k)); w > keyWidth {
			keyWidth = w
		}
	}

	var b strings.Builder
	for k, v := range s.data.All() {
		fmt.Fprintf(&b, "%-*v : %v\n", keyWidth, k, v)
	}

	return b.String()
}

// emptyLike returns an empty detached Series sharing s's orientation.
func (s *Series[K, V]) emptyLike() *Series[K, V] {
	out := New[K, V]()
	out.horizontal = s.horizontal

	return out
}
