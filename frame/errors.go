// SPDX-License-Identifier: MIT

// Package frame: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the frame
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.
//
// Every message is prefixed with "frame: ..." for consistency and to allow
// easy grepping across logs. When call-site context (the offending key) is
// essential, operations wrap with fmt.Errorf("ctx: %w", ErrX) — callers still
// match via errors.Is.

package frame

import "errors"

var (
	// ErrRowNotFound indicates SelectRows referenced a row key that is not
	// present in the frame.
	ErrRowNotFound = errors.New("frame: row not found")

	// ErrColNotFound indicates SelectCols referenced a column key that is
	// not present in the frame.
	ErrColNotFound = errors.New("frame: column not found")

	// ErrNoMatch indicates a linear search completed without any observation
	// satisfying the predicate.
	ErrNoMatch = errors.New("frame: no matching observation")

	// ErrConvert indicates FindAs met a non-nil observation that could not
	// be asserted to the requested type.
	ErrConvert = errors.New("frame: cannot convert observation")
)
