// SPDX-License-Identifier: MIT

package affine

// Test bridge (white-box) for affine_test.
//
// Exposes the unexported number formatter and a read-only snapshot of the
// resolved Options. Lives in a _test.go file so none of it ships.

// FormatCoefficient_TestOnly exposes formatCoefficient.
var FormatCoefficient_TestOnly = formatCoefficient

// OptionsSnapshot is a read-only view of Options. Keep in sync with Options.
type OptionsSnapshot struct {
	Eps            float64
	ValidateFinite bool
	Coeffs         Matrix
}

// GatherOptionsSnapshot_TestOnly resolves opts and returns a snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ValidateFinite: o.validateFinite, Coeffs: o.coeffs}
}
