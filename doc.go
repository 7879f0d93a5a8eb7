// Package tabular is your in-memory playground for keyed, two-dimensional
// data — a generic table with symmetric row and column access, and the keyed
// sequence abstraction underneath it.
//
// 🚀 What is tabular?
//
//	A small, deterministic library that brings together:
//		• frame.Frame — a dual-indexed table: every cell lives in a row-major
//		  AND a column-major representation, kept consistent by construction
//		• Live views — row/column projections that write back to their parent
//		• Sub-frames — deep-independent selections by row or column keys
//		• series.Series — a one-dimensional keyed sequence with filtering,
//		  re-keying, and element-wise combination
//		• omap.Map — the insertion-ordered map both of them stand on
//
// ✨ Why choose tabular?
//
//   - Deterministic – insertion-ordered iteration everywhere, stable renders
//   - Rock-solid guarantees – one dual-write primitive, sentinel errors,
//     errors.Is everywhere
//   - Generic – pick your row key, column key, and observation types once
//     per instance; use `any` observations when rows must stay heterogeneous
//
// Everything is organized under three subpackages:
//
//	frame/  — the dual-indexed table: construction, cell access, views,
//	          sub-frame selection, linear search, rendering
//	series/ — keyed sequences: point/batch access, filters, Combine,
//	          Reindex/Map/Convert transforms
//	omap/   — the generic insertion-ordered map (gods' linkedhashmap behind
//	          a type-safe facade)
//
// Quick ASCII example:
//
//	        q1   q2
//	0) ants  4    7
//	1) bees  1    9
//
// Start with frame.FromRows, frame.FromTriples, or series.FromPairs; see the
// Example functions in each package for usage patterns.
package tabular
