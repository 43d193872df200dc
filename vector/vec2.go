// SPDX-License-Identifier: MIT

package vector

// Vec2 is a 2D vector of float64 components.
// The zero value is the zero vector. Vec2 is a plain value: copies never
// alias, and == compares componentwise under IEEE-754 (NaN != NaN).
type Vec2 struct {
	X float64
	Y float64
}

// NewVec2 returns the vector (x, y).
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Dim returns 2.
func (v Vec2) Dim() int { return 2 }

// Dot returns v · w.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Magnitude returns the Euclidean length sqrt(x² + y²).
func (v Vec2) Magnitude() float64 {
	return ewNorm(v.X, v.Y)
}

// Normalize returns v scaled to unit length.
// The zero vector yields (NaN, NaN).
func (v Vec2) Normalize() Vec2 {
	u := ewUnit(v.X, v.Y)
	return Vec2{
		X: u[0],
		Y: u[1],
	}
}

// Cross returns the 2D pseudo cross product, the determinant
//
//	| v.X  v.Y |
//	| w.X  w.Y |
//
// It is positive when w is counter-clockwise from v, negative when clockwise
// and zero when the two are parallel.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Perp returns v rotated 90° counter-clockwise, so v.Cross(v.Perp()) >= 0.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{
		X: v.X + w.X,
		Y: v.Y + w.Y,
	}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{
		X: v.X - w.X,
		Y: v.Y - w.Y,
	}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{
		X: v.X * s,
		Y: v.Y * s,
	}
}

// Div returns v divided by s. s == 0 follows IEEE-754.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{
		X: v.X / s,
		Y: v.Y / s,
	}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Compare orders v and w lexicographically (X first). ok is false when a NaN
// makes the order undecidable.
func (v Vec2) Compare(w Vec2) (order int, ok bool) {
	return ewCompare([]float64{v.X, v.Y}, []float64{w.X, w.Y})
}

// Less reports whether v orders strictly before w.
func (v Vec2) Less(w Vec2) bool {
	c, ok := v.Compare(w)
	return ok && c < 0
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec2) ApproxEqual(w Vec2, eps float64) bool {
	return ewApproxEqual([]float64{v.X, v.Y}, []float64{w.X, w.Y}, eps)
}

// String formats v as "(x, y)".
func (v Vec2) String() string {
	return formatComponents(_fmtTupleOpen, _fmtTupleClose, v.X, v.Y)
}
