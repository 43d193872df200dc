// SPDX-License-Identifier: MIT

// Package vector - variable-length vector (VecN) & safe accessors.
//
// Purpose:
//   - Provide an N-component vector over a contiguous []float64 whose length
//     is fixed at construction.
//   - Guarantee safety at the public surface: Get/Set return errors instead of
//     panicking; mismatched lengths are reported, not silently truncated,
//     unless the vector was built WithTruncate.
//   - Carry the same numeric contract as the fixed vectors (dot, magnitude,
//     NaN-propagating normalize).
//
// Complexity quicksheet:
//   - NewVecN: O(n) zero-init; Get/Set: O(1); Dot/Magnitude/Normalize/Add/Sub/
//     Mul/Div/Clone: O(n).
//
// Concurrency:
//   - Set mutates in place and is not synchronized; concurrent writers need
//     external locking. All other methods only read.

package vector

import (
	"fmt"
	"math"
	"slices"
)

// ---------- error context tags ----------

const (
	ctxGet       = "Get"
	ctxSet       = "Set"
	ctxDot       = "Dot"
	ctxAdd       = "Add"
	ctxSub       = "Sub"
	ctxNormalize = "NormalizeChecked"
	ctxFromSlice = "VecNFromSlice"
)

// vecErrorf wraps an error with a uniform VecN context.
func vecErrorf(method string, err error) error {
	return fmt.Errorf("VecN.%s: %w", method, err)
}

// vecIndexErrorf wraps an error with VecN context and the offending index.
func vecIndexErrorf(method string, i int, err error) error {
	return fmt.Errorf("VecN.%s(%d): %w", method, i, err)
}

// VecN is a vector whose dimension is chosen at run time.
//   - data holds the components in order; len(data) never changes.
//   - opts carries the length and numeric policy (see options.go); derived
//     vectors inherit the receiver's policy.
type VecN struct {
	data []float64 // components (len fixed after construction)
	opts Options   // resolved policy
}

// NewVecN creates a zero vector of length n.
//
// Implementation:
//   - Stage 1: validate n >= 0; a zero-length vector is legal.
//   - Stage 2: allocate a zero-filled buffer and resolve options.
//
// Errors:
//   - ErrInvalidDimensions when n < 0.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewVecN(n int, opts ...Option) (*VecN, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewVecN(%d): %w", n, ErrInvalidDimensions)
	}

	return &VecN{
		data: make([]float64, n), // make() zero-fills
		opts: gatherOptions(opts...),
	}, nil
}

// VecNFromSlice creates a vector holding a copy of s.
// Under WithValidateNaNInf a non-finite element is rejected with ErrNaNInf.
// A nil or empty s yields a zero-length vector.
func VecNFromSlice(s []float64, opts ...Option) (*VecN, error) {
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for i, v := range s {
			if err := ValidateFinite(v); err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", ctxFromSlice, i, err)
			}
		}
	}
	data := make([]float64, len(s))
	copy(data, s)

	return &VecN{data: data, opts: o}, nil
}

// derive wraps data with the receiver's policy. data must not be shared.
func (v *VecN) derive(data []float64) *VecN {
	return &VecN{data: data, opts: v.opts}
}

// Len returns the number of components. A nil *VecN has length 0.
func (v *VecN) Len() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// Dim is an alias of Len satisfying Components.
func (v *VecN) Dim() int { return v.Len() }

// Get returns the component at index i.
//
// Errors:
//   - ErrNilVector for a nil receiver.
//   - ErrOutOfRange when i < 0 or i >= Len().
func (v *VecN) Get(i int) (float64, error) {
	if err := ValidateNotNil(v); err != nil {
		return 0, vecIndexErrorf(ctxGet, i, err)
	}
	if err := ValidateIndex(i, len(v.data)); err != nil {
		return 0, vecIndexErrorf(ctxGet, i, err)
	}

	return v.data[i], nil
}

// Set stores x at index i.
//
// Errors:
//   - ErrNilVector for a nil receiver.
//   - ErrOutOfRange when i < 0 or i >= Len().
//   - ErrNaNInf when x is not finite and the vector validates NaN/Inf.
//
// Notes:
//   - On error the vector is left unchanged.
func (v *VecN) Set(i int, x float64) error {
	if err := ValidateNotNil(v); err != nil {
		return vecIndexErrorf(ctxSet, i, err)
	}
	if err := ValidateIndex(i, len(v.data)); err != nil {
		return vecIndexErrorf(ctxSet, i, err)
	}
	if v.opts.validateNaNInf {
		if err := ValidateFinite(x); err != nil {
			return vecIndexErrorf(ctxSet, i, err)
		}
	}
	v.data[i] = x

	return nil
}

// pairLen resolves how many components two operands share under the
// receiver's length policy.
func (v *VecN) pairLen(method string, w *VecN) (int, error) {
	if err := ValidateNotNil(v, w); err != nil {
		return 0, vecErrorf(method, err)
	}
	if v.opts.truncate {
		return min(len(v.data), len(w.data)), nil
	}
	if err := ValidateSameLen(v, w); err != nil {
		return 0, fmt.Errorf("VecN.%s(len %d vs %d): %w", method, len(v.data), len(w.data), err)
	}

	return len(v.data), nil
}

// Dot returns v · w.
//
// Behavior highlights:
//   - Strict policy (default): lengths must match, else ErrDimensionMismatch.
//   - WithTruncate: components are paired up to the shorter length; the tail
//     of the longer operand is ignored.
//
// Complexity:
//   - Time O(n), Space O(1).
func (v *VecN) Dot(w *VecN) (float64, error) {
	n, err := v.pairLen(ctxDot, w)
	if err != nil {
		return 0, err
	}

	return ewDot(v.data, w.data, n), nil
}

// Magnitude returns the Euclidean length sqrt(Σ v_i²). A nil or empty vector
// has magnitude 0.
func (v *VecN) Magnitude() float64 {
	if v == nil {
		return 0
	}

	return ewNorm(v.data...)
}

// Normalize returns a new vector with every component divided by the
// magnitude. A zero vector yields NaN components; v is not modified.
// Normalize of nil is nil.
func (v *VecN) Normalize() *VecN {
	if v == nil {
		return nil
	}

	return v.derive(ewUnit(v.data...))
}

// NormalizeChecked is Normalize with an explicit degenerate-input check.
//
// Errors:
//   - ErrNilVector for a nil receiver.
//   - ErrDegenerateVector when the magnitude is 0 (including the empty
//     vector) or a component is NaN or Inf.
func (v *VecN) NormalizeChecked() (*VecN, error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, vecErrorf(ctxNormalize, err)
	}
	nonFinite := slices.ContainsFunc(v.data, func(x float64) bool { return ValidateFinite(x) != nil })
	if nonFinite || v.Magnitude() == 0 {
		return nil, vecErrorf(ctxNormalize, ErrDegenerateVector)
	}

	return v.derive(ewUnit(v.data...)), nil
}

// Add returns v + w under the receiver's length policy.
func (v *VecN) Add(w *VecN) (*VecN, error) {
	n, err := v.pairLen(ctxAdd, w)
	if err != nil {
		return nil, err
	}

	return v.derive(ewZip(v.data, w.data, n, 1)), nil
}

// Sub returns v - w under the receiver's length policy.
func (v *VecN) Sub(w *VecN) (*VecN, error) {
	n, err := v.pairLen(ctxSub, w)
	if err != nil {
		return nil, err
	}

	return v.derive(ewZip(v.data, w.data, n, -1)), nil
}

// Mul returns v scaled by s. Mul of nil is nil.
func (v *VecN) Mul(s float64) *VecN {
	if v == nil {
		return nil
	}

	return v.derive(ewMap(v.data, func(x float64) float64 { return x * s }))
}

// Div returns v divided by s (IEEE-754 on s == 0). Div of nil is nil.
func (v *VecN) Div(s float64) *VecN {
	if v == nil {
		return nil
	}

	return v.derive(ewMap(v.data, func(x float64) float64 { return x / s }))
}

// Clone returns a deep copy with the same policy.
func (v *VecN) Clone() *VecN {
	if v == nil {
		return nil
	}

	return v.derive(slices.Clone(v.data))
}

// Slice returns a copy of the components.
func (v *VecN) Slice() []float64 {
	if v == nil {
		return nil
	}

	return slices.Clone(v.data)
}

// Equal reports whether v and w have the same length and componentwise equal
// values (IEEE: NaN != NaN). Two nil vectors are equal.
func (v *VecN) Equal(w *VecN) bool {
	if v == nil || w == nil {
		return v == w
	}

	return slices.Equal(v.data, w.data)
}

// Compare orders v and w lexicographically by component, then by length.
// ok is false when a NaN makes the order undecidable. nil orders as empty.
func (v *VecN) Compare(w *VecN) (order int, ok bool) {
	return ewCompare(v.Slice(), w.Slice())
}

// Less reports whether v orders strictly before w.
func (v *VecN) Less(w *VecN) bool {
	c, ok := v.Compare(w)
	return ok && c < 0
}

// ApproxEqual reports whether lengths match and every component differs by at
// most the receiver's epsilon (WithEpsilon, default DefaultEpsilon).
func (v *VecN) ApproxEqual(w *VecN) bool {
	if v == nil || w == nil {
		return v == w
	}

	return ewApproxEqual(v.data, w.data, v.opts.eps)
}

// IsUnit reports whether |Magnitude()-1| is within the receiver's epsilon.
func (v *VecN) IsUnit() bool {
	if v == nil {
		return false
	}

	return math.Abs(v.Magnitude()-1) <= v.opts.eps
}

// String formats v as "[v0, v1, ...]"; nil formats as "<nil>".
func (v *VecN) String() string {
	if v == nil {
		return "<nil>"
	}

	return formatComponents(_fmtListOpen, _fmtListClose, v.data...)
}
