// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Provide small, *private* slice kernels (ew*) shared by VecN and the
//     conversion/formatting helpers, so tight loops are written once.
//
// Design:
//   - All ew* are unexported; the public API reaches them through VecN methods.
//   - Kernels never validate lengths: the caller decides the pairing length n
//     under its length policy and passes it explicitly.
//   - Fixed loop order 0..n-1; results are bit-reproducible for a given input.
//
// Complexity:
//   - Every kernel is O(n) time; ewMap/ewZip/ewUnit allocate exactly one
//     []float64.

package vector

import (
	"fmt"
	"math"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtTupleOpen  = "("
	_fmtTupleClose = ")"
	_fmtListOpen   = "["
	_fmtListClose  = "]"
	_fmtSep        = ", "
)

// ewDot returns Σ a[i]*b[i] for i in [0, n).
// Requires n <= len(a) and n <= len(b).
func ewDot(a, b []float64, n int) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}

	return sum
}

// ewScaleExp returns the binary exponent e of max|a[i]|, so every
// a[i]·2^-e lies in (-1, 1). Zero for an empty or all-zero input; a NaN or
// Inf component also yields 0, leaving the components unscaled.
func ewScaleExp(a ...float64) int {
	var m float64
	for _, v := range a {
		m = math.Max(m, math.Abs(v))
	}
	_, e := math.Frexp(m)

	return e
}

// ewNorm returns sqrt(Σ a[i]²). Components are rescaled by a power of two
// before squaring, so finite inputs neither underflow to 0 nor overflow
// unless the length itself is out of range. The rescale is exact, leaving
// results in the normal range bit-identical to the direct formula.
func ewNorm(a ...float64) float64 {
	e := ewScaleExp(a...)
	var sum float64
	for _, v := range a {
		s := math.Ldexp(v, -e)
		sum += s * s
	}

	return math.Ldexp(math.Sqrt(sum), e)
}

// ewUnit returns a fresh slice holding a / |a|, dividing the rescaled
// components so a length beyond MaxFloat64 still normalizes.
// An all-zero input yields NaN components.
func ewUnit(a ...float64) []float64 {
	e := ewScaleExp(a...)
	out := make([]float64, len(a))
	var sum float64
	for i, v := range a {
		out[i] = math.Ldexp(v, -e)
		sum += out[i] * out[i]
	}
	mag := math.Sqrt(sum)
	for i := range out {
		out[i] /= mag
	}

	return out
}

// ewMap returns a fresh slice with out[i] = f(a[i]).
func ewMap(a []float64, f func(v float64) float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = f(v)
	}

	return out
}

// ewZip returns a fresh slice of length n with out[i] = a[i] + sign*b[i],
// sign ∈ {+1, -1}. Requires n <= len(a) and n <= len(b).
func ewZip(a, b []float64, n int, sign float64) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] + sign*b[i]
	}

	return out
}

// ewCompare orders a and b lexicographically, first component most
// significant, then by length (a proper prefix is less).
// ok=false means the order is undecidable because a NaN was reached before
// any strict difference.
func ewCompare(a, b []float64) (order int, ok bool) {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1, true
		case a[i] > b[i]:
			return 1, true
		case a[i] == b[i]:
			continue
		default: // at least one NaN
			return 0, false
		}
	}
	switch {
	case len(a) < len(b):
		return -1, true
	case len(a) > len(b):
		return 1, true
	}

	return 0, true
}

// ewApproxEqual reports |a[i]-b[i]| <= eps for every i; lengths must match.
// Equal infinities match; NaN components never compare equal.
func ewApproxEqual(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if !(d <= eps) { // false for NaN differences
			return false
		}
	}

	return true
}

// formatComponents renders vals as "<openTok>v0, v1, ...<closeTok>" using %g.
func formatComponents(openTok, closeTok string, vals ...float64) string {
	var b strings.Builder
	b.WriteString(openTok)
	for i, v := range vals {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprintf("%g", v))
	}
	b.WriteString(closeTok)

	return b.String()
}
