// SPDX-License-Identifier: MIT

package vector

// Test-Bridge (White-Box) for private kernels and the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED ew* kernels and the resolved Options to vector_test
//     ONLY; the _test.go suffix keeps them out of production builds.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with Options; drift shows up in
//     options_test.go.

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Truncate       bool
	ValidateNaNInf bool
	Eps            float64
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Truncate:       o.truncate,
		ValidateNaNInf: o.validateNaNInf,
		Eps:            o.eps,
	}
}

// GatherOptions_TestOnly resolves opts on top of the defaults.
func GatherOptions_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// VecNOptions_TestOnly returns the policy carried by v.
func VecNOptions_TestOnly(v *VecN) OptionsSnapshot {
	return snapshotOf(v.opts)
}

// EwDot_TestOnly passes through to ewDot.
func EwDot_TestOnly(a, b []float64, n int) float64 { return ewDot(a, b, n) }

// EwNorm_TestOnly passes through to ewNorm.
func EwNorm_TestOnly(a ...float64) float64 { return ewNorm(a...) }

// EwUnit_TestOnly passes through to ewUnit.
func EwUnit_TestOnly(a ...float64) []float64 { return ewUnit(a...) }

// EwZip_TestOnly passes through to ewZip.
func EwZip_TestOnly(a, b []float64, n int, sign float64) []float64 {
	return ewZip(a, b, n, sign)
}

// EwCompare_TestOnly passes through to ewCompare.
func EwCompare_TestOnly(a, b []float64) (int, bool) { return ewCompare(a, b) }

// EwApproxEqual_TestOnly passes through to ewApproxEqual.
func EwApproxEqual_TestOnly(a, b []float64, eps float64) bool {
	return ewApproxEqual(a, b, eps)
}
