// SPDX-License-Identifier: MIT

// Package vector: generic helpers over the shared contracts.
//
// Purpose:
//   - Express operations once for every type satisfying Vector[V] or
//     Arithmetic[V], instead of repeating them per dimension.
//   - Offer checked variants where the plain contract silently propagates NaN.
//
// Determinism & Policy:
//   - Helpers never change the numeric semantics of the underlying methods;
//     they only compose them and add explicit degenerate-input checks.
package vector

import (
	"fmt"
	"math"
)

// NormalizeChecked returns v.Normalize() unless v is degenerate: zero
// magnitude, or a NaN or Inf component (detected as a NaN length of the
// result). It then returns the zero value of V and ErrDegenerateVector.
func NormalizeChecked[V Vector[V]](v V) (V, error) {
	var zero V
	if mag := v.Magnitude(); mag == 0 || math.IsNaN(mag) {
		return zero, fmt.Errorf("NormalizeChecked: %w", ErrDegenerateVector)
	}
	n := v.Normalize()
	if math.IsNaN(n.Magnitude()) {
		return zero, fmt.Errorf("NormalizeChecked: %w", ErrDegenerateVector)
	}

	return n, nil
}

// IsUnit reports whether |v.Magnitude()-1| <= eps.
func IsUnit[V Vector[V]](v V, eps float64) bool {
	return math.Abs(v.Magnitude()-1) <= eps
}

// CosineSimilarity returns a·b / (|a|·|b|), computed as the dot product of
// the normalized operands so large components do not overflow.
// Returns ErrDegenerateVector if either operand is degenerate (see
// NormalizeChecked).
func CosineSimilarity[V Vector[V]](a, b V) (float64, error) {
	ua, err := NormalizeChecked(a)
	if err != nil {
		return 0, fmt.Errorf("CosineSimilarity: %w", ErrDegenerateVector)
	}
	ub, err := NormalizeChecked(b)
	if err != nil {
		return 0, fmt.Errorf("CosineSimilarity: %w", ErrDegenerateVector)
	}

	return ua.Dot(ub), nil
}

// Distance returns the Euclidean distance |a - b|.
func Distance[V Arithmetic[V]](a, b V) float64 {
	return a.Sub(b).Magnitude()
}

// Lerp returns a + (b-a)*t; t=0 gives a, t=1 gives b.
func Lerp[V Arithmetic[V]](a, b V, t float64) V {
	return a.Add(b.Sub(a).Mul(t))
}

// Project returns the projection of a onto b: b * (a·b / b·b).
// Projecting onto a zero vector yields NaN components, like Normalize.
func Project[V Arithmetic[V]](a, b V) V {
	return b.Mul(a.Dot(b) / b.Dot(b))
}

// ApproxEqual reports whether a and b have the same dimension and every
// component differs by at most eps. It works across vector kinds, e.g. a
// Vec3 against a VecN of length 3.
func ApproxEqual(a, b Components, eps float64) bool {
	return ewApproxEqual(a.Slice(), b.Slice(), eps)
}
