// Package vector provides lightweight Euclidean vector math in pure Go.
//
// 🚀 What is inside?
//
//	Fixed-dimension value types and one variable-length type:
//	  • Vec2 — x, y; 2D pseudo cross product (signed parallelogram area)
//	  • Vec3 — x, y, z; right-handed cross product
//	  • Vec4 — x, y, z, w; no cross product
//	  • VecN — n components over a []float64, bounds-checked Get/Set
//
// ✨ Shared contract:
//
//	Every fixed type implements Arithmetic[V] (Dot, Magnitude, Normalize,
//	Add, Sub, Mul, Div), so generic helpers such as Distance, Lerp, Project,
//	CosineSimilarity and NormalizeChecked work on all of them. VecN carries
//	the same operations with error returns where its run-time length matters.
//
// ⚙️ Numeric policy:
//
//   - NaN and ±Inf are never rejected by fixed vectors; they propagate per
//     IEEE-754. Normalizing a zero vector yields NaN components; use
//     NormalizeChecked to get ErrDegenerateVector instead.
//   - Division by a zero scalar yields ±Inf or NaN, not an error.
//   - VecN is strict about lengths by default (ErrDimensionMismatch); build it
//     WithTruncate to pair components up to the shorter operand.
//
// Usage:
//
//	a := vector.NewVec3(1, 2, 3)
//	b := vector.NewVec3(4, 5, 6)
//	n := a.Cross(b).Normalize()
//
//	v, _ := vector.VecNFromSlice([]float64{1, 2, 3})
//	w, _ := vector.VecNFromSlice([]float64{4, 5, 6})
//	d, err := v.Dot(w) // 32, nil
//
// Conversions: every fixed vector maps to/from an array ([k]float64), a tuple
// (multi-value return) and a slice, in X, Y, Z, W order. See conversions.go.
//
// Concurrency: all values are plain data and safe to share by copy. Only
// VecN.Set mutates; concurrent writers must synchronize externally.
package vector
