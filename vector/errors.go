// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the vector
// package. Operations that can fail MUST return these sentinels (optionally
// wrapped with %w) and tests MUST check them via errors.Is.
//
// Fixed-dimension vectors (Vec2, Vec3, Vec4) never return errors: their shape
// is fixed by the type, and degenerate numeric input follows IEEE-754.
// Only VecN, whose length is a runtime property, and the checked helpers
// (NormalizeChecked, CosineSimilarity) report errors.

package vector

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for consistency. Call sites add
// context with fmt.Errorf("VecN.Get(%d): %w", i, ErrOutOfRange); callers
// still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> index -> dimension mismatch -> numeric policy -> degenerate input.

var (
	// ErrNilVector indicates that a nil *VecN (receiver or argument) was used.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrInvalidDimensions indicates that a requested length is negative.
	ErrInvalidDimensions = errors.New("vector: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index is outside [0, Len()).
	// Public indexers (Get/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates operands of different lengths under the
	// strict length policy (the default), or a slice of the wrong length in a
	// fixed-vector conversion.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value rejected by a VecN built with
	// WithValidateNaNInf.
	ErrNaNInf = errors.New("vector: NaN or Inf encountered")

	// ErrDegenerateVector signals a vector with no direction (zero magnitude,
	// or a NaN or Inf component) where one is required, e.g. NormalizeChecked
	// or CosineSimilarity.
	ErrDegenerateVector = errors.New("vector: degenerate vector (zero magnitude or non-finite component)")
)
