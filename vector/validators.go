// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//  - Provide a single, canonical source of truth for VecN validation checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap again with their own method context.
//
// Note:
//  - Each validator states what it assumes (e.g. ValidateSameLen assumes
//    non-nil operands; call ValidateNotNil first).

package vector

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures every given *VecN is non-nil.
// Returns ErrNilVector on the first nil. Complexity: O(k) for k arguments.
func ValidateNotNil(vs ...*VecN) error {
	for _, v := range vs {
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilVector)
		}
	}

	return nil
}

// ValidateSameLen ensures a and b have equal length.
// Assumes a and b are non-nil.
func ValidateSameLen(a, b *VecN) error {
	if len(a.data) != len(b.data) {
		return validatorErrorf("ValidateSameLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex ensures 0 <= i < n.
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf.
func ValidateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}

	return nil
}
