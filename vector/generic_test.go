// SPDX-License-Identifier: MIT
// Package vector_test contains tests for the generic helpers.
package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vecmath/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizeChecked covers success and the degenerate cases for every
// fixed type.
func TestNormalizeChecked(t *testing.T) {
	n2, err := vector.NormalizeChecked(vector.NewVec2(3, 4))
	require.NoError(t, err)
	require.Equal(t, vector.NewVec2(0.6, 0.8), n2)

	n3, err := vector.NormalizeChecked(vector.NewVec3(0, 0, 2))
	require.NoError(t, err)
	require.Equal(t, vector.NewVec3(0, 0, 1), n3)

	z2, err := vector.NormalizeChecked(vector.Vec2{})
	require.ErrorIs(t, err, vector.ErrDegenerateVector)
	require.Equal(t, vector.Vec2{}, z2)

	_, err = vector.NormalizeChecked(vector.Vec3{})
	require.ErrorIs(t, err, vector.ErrDegenerateVector)

	_, err = vector.NormalizeChecked(vector.NewVec4(math.NaN(), 0, 0, 0))
	require.ErrorIs(t, err, vector.ErrDegenerateVector)
}

// TestNormalizeChecked_ExtremeMagnitudes checks that finite non-zero vectors
// near the ends of the float64 range keep a non-zero magnitude and normalize
// to unit length.
func TestNormalizeChecked_ExtremeMagnitudes(t *testing.T) {
	t.Parallel()

	t.Run("Vec2 tiny", func(t *testing.T) {
		v := vector.NewVec2(1e-200, 0)
		require.Equal(t, 1e-200, v.Magnitude())
		n, err := vector.NormalizeChecked(v)
		require.NoError(t, err)
		require.Equal(t, vector.NewVec2(1, 0), n)
	})
	t.Run("Vec2 subnormal", func(t *testing.T) {
		v := vector.NewVec2(0, -math.SmallestNonzeroFloat64)
		require.Equal(t, math.SmallestNonzeroFloat64, v.Magnitude())
		n, err := vector.NormalizeChecked(v)
		require.NoError(t, err)
		require.Equal(t, vector.NewVec2(0, -1), n)
	})
	t.Run("Vec3 huge", func(t *testing.T) {
		v := vector.NewVec3(1e200, 0, 0)
		require.Equal(t, 1e200, v.Magnitude())
		n, err := vector.NormalizeChecked(v)
		require.NoError(t, err)
		require.Equal(t, vector.NewVec3(1, 0, 0), n)
	})
	t.Run("Vec3 beyond range", func(t *testing.T) {
		v := vector.NewVec3(math.MaxFloat64, math.MaxFloat64, math.MaxFloat64)
		require.True(t, math.IsInf(v.Magnitude(), 1))
		n, err := vector.NormalizeChecked(v)
		require.NoError(t, err)
		require.True(t, vector.IsUnit(n, tol))
	})
	t.Run("Vec4 mixed scale", func(t *testing.T) {
		v := vector.NewVec4(3e-300, 4e-300, 0, 0)
		assert.InEpsilon(t, 5e-300, v.Magnitude(), 1e-15)
		n, err := vector.NormalizeChecked(v)
		require.NoError(t, err)
		require.True(t, n.ApproxEqual(vector.NewVec4(0.6, 0.8, 0, 0), tol))
	})
	t.Run("Vec3 inf component", func(t *testing.T) {
		_, err := vector.NormalizeChecked(vector.NewVec3(math.Inf(1), 1, 0))
		require.ErrorIs(t, err, vector.ErrDegenerateVector)
	})
}

// TestIsUnit checks tolerance around 1.
func TestIsUnit(t *testing.T) {
	require.True(t, vector.IsUnit(vector.NewVec2(0.6, 0.8), tol))
	require.True(t, vector.IsUnit(vector.NewVec3(1, 2, 3).Normalize(), tol))
	require.False(t, vector.IsUnit(vector.NewVec4(1, 1, 0, 0), tol))
	require.False(t, vector.IsUnit(vector.Vec2{}.Normalize(), tol))
}

// TestCosineSimilarity covers orthogonal, parallel, opposite and degenerate.
func TestCosineSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    vector.Vec2
		want    float64
		wantErr error
	}{
		{"orthogonal", vector.NewVec2(1, 0), vector.NewVec2(0, 1), 0, nil},
		{"parallel", vector.NewVec2(1, 0), vector.NewVec2(3, 0), 1, nil},
		{"opposite", vector.NewVec2(0, 2), vector.NewVec2(0, -5), -1, nil},
		{"zero operand", vector.Vec2{}, vector.NewVec2(1, 1), 0, vector.ErrDegenerateVector},
		{"huge operands", vector.NewVec2(1e200, 1e200), vector.NewVec2(2e200, 0), math.Sqrt2 / 2, nil},
		{"tiny operands", vector.NewVec2(0, 1e-200), vector.NewVec2(0, 3e-200), 1, nil},
		{"inf operand", vector.NewVec2(math.Inf(1), 0), vector.NewVec2(1, 0), 0, vector.ErrDegenerateVector},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := vector.CosineSimilarity(tc.a, tc.b)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, tol)
		})
	}
}

// TestDistanceLerpProject checks the Arithmetic-based helpers.
func TestDistanceLerpProject(t *testing.T) {
	require.Equal(t, 5.0, vector.Distance(vector.Vec2{}, vector.NewVec2(3, 4)))
	require.Equal(t, 7.0, vector.Distance(vector.NewVec3(1, 1, 1), vector.NewVec3(3, 4, 7)))

	a := vector.NewVec3(0, 0, 0)
	b := vector.NewVec3(2, 4, 6)
	require.Equal(t, a, vector.Lerp(a, b, 0))
	require.Equal(t, b, vector.Lerp(a, b, 1))
	require.Equal(t, vector.NewVec3(1, 2, 3), vector.Lerp(a, b, 0.5))

	require.Equal(t, vector.NewVec2(2, 0), vector.Project(vector.NewVec2(2, 3), vector.NewVec2(5, 0)))
	require.Equal(t, vector.NewVec4(0, 0, 0, 1), vector.Project(vector.NewVec4(0, 0, 0, 1), vector.NewVec4(0, 0, 0, 2)))

	p := vector.Project(vector.NewVec2(1, 1), vector.Vec2{})
	require.True(t, math.IsNaN(p.X) && math.IsNaN(p.Y))
}

// TestApproxEqual_AcrossKinds compares a fixed vector with a VecN.
func TestApproxEqual_AcrossKinds(t *testing.T) {
	n := MustVecN(t, []float64{1, 2, 3})

	require.True(t, vector.ApproxEqual(vector.NewVec3(1, 2, 3), n, tol))
	require.False(t, vector.ApproxEqual(vector.NewVec2(1, 2), n, tol))
	require.False(t, vector.ApproxEqual(vector.NewVec3(1, 2, 3.1), n, tol))
}
