// SPDX-License-Identifier: MIT

// Package vector: the shared operation contracts.
// This file contains ONLY interfaces and compile-time conformance checks.
// Concrete types live in vec2.go, vec3.go, vec4.go and vecn.go.
package vector

import "fmt"

// Vector is the operation set every fixed-dimension vector implements.
// V is the implementing type itself, so Normalize returns the same concrete
// type and Dot only accepts operands of the same dimension.
//
// Numeric contract:
//   - Dot(a, b) = Σ a_i*b_i.
//   - Magnitude() = sqrt(Dot(a, a)); never negative, NaN if any component is
//     NaN, +Inf if any component is ±Inf.
//   - Normalize() divides every component by Magnitude(); a zero vector
//     yields NaN components (0/0). Use NormalizeChecked to get an error.
type Vector[V any] interface {
	Dot(other V) float64
	Magnitude() float64
	Normalize() V
}

// Arithmetic extends Vector with the componentwise operators.
// Division by a zero scalar follows IEEE-754 (±Inf or NaN), never an error.
type Arithmetic[V any] interface {
	Vector[V]
	Add(other V) V
	Sub(other V) V
	Mul(s float64) V
	Div(s float64) V
}

// Components is implemented by every vector kind, including VecN.
// Slice returns a fresh copy in declared component order.
type Components interface {
	Dim() int
	Slice() []float64
}

// Compile-time assertions for contract & fmt.Stringer conformance.
var (
	_ Arithmetic[Vec2] = Vec2{}
	_ Arithmetic[Vec3] = Vec3{}
	_ Arithmetic[Vec4] = Vec4{}

	_ Components = Vec2{}
	_ Components = Vec3{}
	_ Components = Vec4{}
	_ Components = (*VecN)(nil)

	_ fmt.Stringer = Vec2{}
	_ fmt.Stringer = Vec3{}
	_ fmt.Stringer = Vec4{}
	_ fmt.Stringer = (*VecN)(nil)
)
