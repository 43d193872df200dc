// SPDX-License-Identifier: MIT

// Package vector - conversions between vectors and plain representations.
//
// Every fixed vector has three canonical bijections, all in declared
// component order (X, Y[, Z[, W]]):
//   - array:  v.Array() / VecKFromArray
//   - tuple:  v.Tuple() / VecKFromTuple (a tuple is a multi-value return)
//   - slice:  v.Slice() / VecKFromSlice (length-checked, the only fallible one)
//
// ToVecN lifts any Components value into a growable-buffer VecN.
// All conversions copy; results never alias their input.
package vector

import "fmt"

const ctxFromSliceFixed = "Vec%dFromSlice(len %d)"

// fixedSliceErrorf reports a wrong-length slice for a k-component vector.
func fixedSliceErrorf(k, got int) error {
	return fmt.Errorf(ctxFromSliceFixed+": %w", k, got, ErrDimensionMismatch)
}

// ---------- Vec2 ----------

// Array returns [X, Y].
func (v Vec2) Array() [2]float64 { return [2]float64{v.X, v.Y} }

// Tuple returns (X, Y).
func (v Vec2) Tuple() (x, y float64) { return v.X, v.Y }

// Slice returns []float64{X, Y}.
func (v Vec2) Slice() []float64 { return []float64{v.X, v.Y} }

// Vec2FromArray is the inverse of Vec2.Array.
func Vec2FromArray(a [2]float64) Vec2 { return Vec2{X: a[0], Y: a[1]} }

// Vec2FromTuple is the inverse of Vec2.Tuple.
func Vec2FromTuple(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Vec2FromSlice builds a Vec2 from exactly two values.
// Returns ErrDimensionMismatch when len(s) != 2.
func Vec2FromSlice(s []float64) (Vec2, error) {
	if len(s) != 2 {
		return Vec2{}, fixedSliceErrorf(2, len(s))
	}

	return Vec2{X: s[0], Y: s[1]}, nil
}

// ---------- Vec3 ----------

// Array returns [X, Y, Z].
func (v Vec3) Array() [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// Tuple returns (X, Y, Z).
func (v Vec3) Tuple() (x, y, z float64) { return v.X, v.Y, v.Z }

// Slice returns []float64{X, Y, Z}.
func (v Vec3) Slice() []float64 { return []float64{v.X, v.Y, v.Z} }

// Vec3FromArray is the inverse of Vec3.Array.
func Vec3FromArray(a [3]float64) Vec3 { return Vec3{X: a[0], Y: a[1], Z: a[2]} }

// Vec3FromTuple is the inverse of Vec3.Tuple.
func Vec3FromTuple(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Vec3FromSlice builds a Vec3 from exactly three values.
// Returns ErrDimensionMismatch when len(s) != 3.
func Vec3FromSlice(s []float64) (Vec3, error) {
	if len(s) != 3 {
		return Vec3{}, fixedSliceErrorf(3, len(s))
	}

	return Vec3{X: s[0], Y: s[1], Z: s[2]}, nil
}

// ---------- Vec4 ----------

// Array returns [X, Y, Z, W].
func (v Vec4) Array() [4]float64 { return [4]float64{v.X, v.Y, v.Z, v.W} }

// Tuple returns (X, Y, Z, W).
func (v Vec4) Tuple() (x, y, z, w float64) { return v.X, v.Y, v.Z, v.W }

// Slice returns []float64{X, Y, Z, W}.
func (v Vec4) Slice() []float64 { return []float64{v.X, v.Y, v.Z, v.W} }

// Vec4FromArray is the inverse of Vec4.Array.
func Vec4FromArray(a [4]float64) Vec4 { return Vec4{X: a[0], Y: a[1], Z: a[2], W: a[3]} }

// Vec4FromTuple is the inverse of Vec4.Tuple.
func Vec4FromTuple(x, y, z, w float64) Vec4 { return Vec4{X: x, Y: y, Z: z, W: w} }

// Vec4FromSlice builds a Vec4 from exactly four values.
// Returns ErrDimensionMismatch when len(s) != 4.
func Vec4FromSlice(s []float64) (Vec4, error) {
	if len(s) != 4 {
		return Vec4{}, fixedSliceErrorf(4, len(s))
	}

	return Vec4{X: s[0], Y: s[1], Z: s[2], W: s[3]}, nil
}

// ---------- growable buffer ----------

// ToVecN copies the components of c into a new VecN configured by opts.
// Errors come only from the numeric policy (ErrNaNInf under
// WithValidateNaNInf).
func ToVecN(c Components, opts ...Option) (*VecN, error) {
	return VecNFromSlice(c.Slice(), opts...)
}
