// SPDX-License-Identifier: MIT

// Package series: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the series
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.
//
// Every message is prefixed with "series: ..." for consistency and to allow
// easy grepping across logs. When call-site context (the offending key) is
// essential, operations wrap with fmt.Errorf("ctx: %w", ErrX) — callers still
// match via errors.Is.

package series

import "errors"

var (
	// ErrKeyNotFound indicates a key was absent where presence is required:
	// point/batch reads, SetMany sources, Combine counterparts, and the
	// equality form of re-keying all fail with it.
	ErrKeyNotFound = errors.New("series: key not found")

	// ErrSizeMismatch indicates a cardinality mismatch between the sequence
	// and a supplied key collection during equality-based re-keying.
	ErrSizeMismatch = errors.New("series: size mismatch")

	// ErrConvert indicates an observation could not be converted to the
	// requested type during Convert.
	ErrConvert = errors.New("series: cannot convert observation")
)
