// SPDX-License-Identifier: MIT

// Package series: transforms that introduce a new type parameter (re-keying
// to a new key type, mapping to a new value type). Go methods cannot declare
// type parameters, so these live as package-level functions taking the source
// Series as their first argument.

package series

import "fmt"

// Reindex returns a new detached Series whose keys are fn(oldKey), values
// unchanged, in the source order. If fn maps two old keys to the same new
// key, the later entry wins.
// Complexity: O(n)
func Reindex[K2 comparable, K comparable, V any](s *Series[K, V], fn func(K) K2) *Series[K2, V] {
	out := New[K2, V]()
	out.horizontal = s.horizontal
	for k, v := range s.data.All() {
		out.data.Put(fn(k), v)
	}

	return out
}

// ReindexKeys re-keys s by zipping it against the supplied collection of new
// keys: every old key is matched, in source order, to the first new key for
// which match(newKey, oldKey) holds. A nil match falls back to plain equality
// of the boxed keys (useful when K2 and K share a representation).
//
// Returns ErrSizeMismatch when len(keys) differs from s.Len(), and
// ErrKeyNotFound when some old key has no matching counterpart in keys.
// Complexity: O(n²) worst case (linear match per key)
func ReindexKeys[K2 comparable, K comparable, V any](s *Series[K, V], keys []K2, match func(K2, K) bool) (*Series[K2, V], error) {
	if len(keys) != s.Len() {
		return nil, fmt.Errorf("reindex with %d keys over %d entries: %w", len(keys), s.Len(), ErrSizeMismatch)
	}
	if match == nil {
		match = func(n K2, o K) bool { return any(n) == any(o) }
	}

	out := New[K2, V]()
	out.horizontal = s.horizontal
	for k, v := range s.data.All() {
		matched := false
		for _, nk := range keys {
			if match(nk, k) {
				out.data.Put(nk, v)
				matched = true

				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("reindex %v: %w", k, ErrKeyNotFound)
		}
	}

	return out, nil
}

// Map returns a new detached Series with every observation replaced by
// fn(observation), keys and order unchanged.
// Complexity: O(n)
func Map[W any, K comparable, V any](s *Series[K, V], fn func(V) W) *Series[K, W] {
	out := New[K, W]()
	out.horizontal = s.horizontal
	for k, v := range s.data.All() {
		out.data.Put(k, fn(v))
	}

	return out
}

// Convert returns a new detached Series with every observation converted to W
// by type assertion. Returns ErrConvert (wrapped with the offending key) on
// the first observation that is not a W; nothing is produced in that case.
// Complexity: O(n)
func Convert[W any, K comparable, V any](s *Series[K, V]) (*Series[K, W], error) {
	out := New[K, W]()
	out.horizontal = s.horizontal
	for k, v := range s.data.All() {
		w, ok := any(v).(W)
		if !ok {
			return nil, fmt.Errorf("convert %v (%T): %w", k, v, ErrConvert)
		}
		out.data.Put(k, w)
	}

	return out, nil
}
