// Package vecmath is a small, dependency-light toolkit for Euclidean vector
// math: the kind graphics, physics and simulation code reaches for without
// pulling in a full linear-algebra framework.
//
// 🚀 What is vecmath?
//
//	Value types with named components and a shared operation contract:
//		• Vec2, Vec3, Vec4 — dot, magnitude, normalize, add/sub/mul/div
//		• Cross products — 2D pseudo-scalar and 3D vector form
//		• VecN — run-time length, bounds-checked Get/Set, strict length policy
//		• Conversions — arrays, tuples (multi-value returns), slices, VecN
//
// ✨ Why choose vecmath?
//
//   - Predictable numerics – IEEE-754 all the way; NaN/Inf propagate, never panic
//   - Explicit where it matters – sentinel errors for bad indices and
//     mismatched lengths on VecN, checked normalize on demand
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything lives in one subpackage:
//
//	vector/   — Vec2, Vec3, Vec4, VecN, generic helpers, options & errors
//	examples/ — runnable demos (projectile kinematics, surface normals)
//
//	go get github.com/katalvlaran/vecmath/vector
package vecmath
