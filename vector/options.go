// SPDX-License-Identifier: MIT

// Package vector: functional configuration for the variable-length vector.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Every flag changes behavior and is covered by tests.
//   - Options are carried by each VecN and inherited by results derived from
//     it (Clone, Add, Sub, Mul, Div, Normalize).
//
// Notes:
//   - The length policy decides what happens when two VecN of different
//     lengths meet in Dot/Add/Sub. Strict (default) reports
//     ErrDimensionMismatch; truncate pairs components up to the shorter length.
//     The receiver's policy wins.
//   - The numeric policy is orthogonal: validateNaNInf makes Set reject NaN
//     and ±Inf. It is OFF by default so VecN accepts the same values as the
//     fixed vectors.
package vector

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTruncate selects the dimension-mismatch policy.
	// false ⇒ strict: mismatched lengths return ErrDimensionMismatch.
	DefaultTruncate = false

	// DefaultValidateNaNInf toggles finite-only validation in Set.
	DefaultValidateNaNInf = false

	// DefaultEpsilon is the absolute tolerance used by approximate comparisons
	// (ApproxEqual, IsUnit) when no explicit tolerance is given.
	DefaultEpsilon = 1e-9
)

const panicEpsilonInvalid = "vector: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	truncate       bool    // DefaultTruncate
	validateNaNInf bool    // DefaultValidateNaNInf
	eps            float64 // DefaultEpsilon
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		truncate:       DefaultTruncate,
		validateNaNInf: DefaultValidateNaNInf,
		eps:            DefaultEpsilon,
	}
}

// gatherOptions resolves opts on top of the defaults, in order; later options
// override earlier ones. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithTruncate makes Dot/Add/Sub pair components up to the shorter length
// instead of failing on mismatched lengths.
func WithTruncate() Option {
	return func(o *Options) { o.truncate = true }
}

// WithStrictLength restores the default strict length policy.
func WithStrictLength() Option {
	return func(o *Options) { o.truncate = false }
}

// WithValidateNaNInf makes Set reject NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf accepts any float64 in Set (default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithEpsilon sets the tolerance used by VecN.ApproxEqual and VecN.IsUnit.
// Panics if eps is negative, NaN or ±Inf (programmer error).
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}
