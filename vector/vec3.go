// SPDX-License-Identifier: MIT

package vector

// Vec3 is a 3D vector of float64 components.
// The zero value is the zero vector.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// NewVec3 returns the vector (x, y, z).
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Dim returns 3.
func (v Vec3) Dim() int { return 3 }

// Dot returns v · w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Magnitude returns the Euclidean length sqrt(x² + y² + z²).
func (v Vec3) Magnitude() float64 {
	return ewNorm(v.X, v.Y, v.Z)
}

// Normalize returns v scaled to unit length.
// The zero vector yields (NaN, NaN, NaN).
func (v Vec3) Normalize() Vec3 {
	u := ewUnit(v.X, v.Y, v.Z)
	return Vec3{
		X: u[0],
		Y: u[1],
		Z: u[2],
	}
}

// Cross returns v × w, perpendicular to both operands (right-handed).
// Cross is anticommutative and returns the zero vector for parallel inputs.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{
		X: v.X + w.X,
		Y: v.Y + w.Y,
		Z: v.Z + w.Z,
	}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{
		X: v.X - w.X,
		Y: v.Y - w.Y,
		Z: v.Z - w.Z,
	}
}

// Mul returns v scaled by s.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{
		X: v.X * s,
		Y: v.Y * s,
		Z: v.Z * s,
	}
}

// Div returns v divided by s. s == 0 follows IEEE-754.
func (v Vec3) Div(s float64) Vec3 {
	return Vec3{
		X: v.X / s,
		Y: v.Y / s,
		Z: v.Z / s,
	}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Compare orders v and w lexicographically (X, then Y, then Z).
// ok is false when a NaN makes the order undecidable.
func (v Vec3) Compare(w Vec3) (order int, ok bool) {
	return ewCompare([]float64{v.X, v.Y, v.Z}, []float64{w.X, w.Y, w.Z})
}

// Less reports whether v orders strictly before w.
func (v Vec3) Less(w Vec3) bool {
	c, ok := v.Compare(w)
	return ok && c < 0
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec3) ApproxEqual(w Vec3, eps float64) bool {
	return ewApproxEqual([]float64{v.X, v.Y, v.Z}, []float64{w.X, w.Y, w.Z}, eps)
}

// String formats v as "(x, y, z)".
func (v Vec3) String() string {
	return formatComponents(_fmtTupleOpen, _fmtTupleClose, v.X, v.Y, v.Z)
}
