// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for VecN and random fixed vectors.
//   • Keep random data finite and bounded so tolerances stay meaningful.

package vector_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vecmath/vector"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance used by identities that round.
const tol = 1e-9

// propertyRuns is the number of random samples per property.
const propertyRuns = 500

// MustVecN builds a *VecN from vals or fails the test.
func MustVecN(t testing.TB, vals []float64, opts ...vector.Option) *vector.VecN {
	t.Helper()
	v, err := vector.VecNFromSlice(vals, opts...)
	require.NoError(t, err)

	return v
}

// newRand returns a deterministic source so failures are reproducible.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randComponent draws a value in [-100, 100).
func randComponent(r *rand.Rand) float64 {
	return r.Float64()*200 - 100
}

func randVec2(r *rand.Rand) vector.Vec2 {
	return vector.NewVec2(randComponent(r), randComponent(r))
}

func randVec3(r *rand.Rand) vector.Vec3 {
	return vector.NewVec3(randComponent(r), randComponent(r), randComponent(r))
}

func randVec4(r *rand.Rand) vector.Vec4 {
	return vector.NewVec4(randComponent(r), randComponent(r), randComponent(r), randComponent(r))
}

// randNonZeroScalar draws s with 0.5 <= |s| < 10.
func randNonZeroScalar(r *rand.Rand) float64 {
	s := 0.5 + r.Float64()*9.5
	if r.Intn(2) == 0 {
		return -s
	}

	return s
}
