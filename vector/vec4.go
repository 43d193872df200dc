// SPDX-License-Identifier: MIT

package vector

// Vec4 is a 4D vector of float64 components.
// There is no cross product in four dimensions.
type Vec4 struct {
	X float64
	Y float64
	Z float64
	W float64
}

// NewVec4 returns the vector (x, y, z, w).
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Dim returns 4.
func (v Vec4) Dim() int { return 4 }

// Dot returns v · u.
func (v Vec4) Dot(u Vec4) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z + v.W*u.W
}

// Magnitude returns the Euclidean length.
func (v Vec4) Magnitude() float64 {
	return ewNorm(v.X, v.Y, v.Z, v.W)
}

// Normalize returns v scaled to unit length; the zero vector yields NaNs.
func (v Vec4) Normalize() Vec4 {
	u := ewUnit(v.X, v.Y, v.Z, v.W)
	return Vec4{
		X: u[0],
		Y: u[1],
		Z: u[2],
		W: u[3],
	}
}

// Add returns v + u.
func (v Vec4) Add(u Vec4) Vec4 {
	return Vec4{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z, W: v.W + u.W}
}

// Sub returns v - u.
func (v Vec4) Sub(u Vec4) Vec4 {
	return Vec4{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z, W: v.W - u.W}
}

// Mul returns v scaled by s.
func (v Vec4) Mul(s float64) Vec4 {
	return Vec4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Div divides every component by s (IEEE-754 on s == 0).
func (v Vec4) Div(s float64) Vec4 {
	return Vec4{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}
}

// Neg returns -v.
func (v Vec4) Neg() Vec4 {
	return Vec4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Compare orders v and u lexicographically (X first).
// ok is false when a NaN makes the order undecidable.
func (v Vec4) Compare(u Vec4) (order int, ok bool) {
	return ewCompare(v.Slice(), u.Slice())
}

// Less reports whether v orders strictly before u.
func (v Vec4) Less(u Vec4) bool {
	c, ok := v.Compare(u)
	return ok && c < 0
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec4) ApproxEqual(u Vec4, eps float64) bool {
	return ewApproxEqual(v.Slice(), u.Slice(), eps)
}

// String formats v as "(x, y, z, w)".
func (v Vec4) String() string {
	return formatComponents(_fmtTupleOpen, _fmtTupleClose, v.X, v.Y, v.Z, v.W)
}
