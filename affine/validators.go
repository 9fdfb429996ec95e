// SPDX-License-Identifier: MIT
// Package: affine
//
// Purpose:
//   - Single source of truth for the numeric checks Invert and the
//     constructors share.
//   - Return sentinels tagged with the validator name so call sites can wrap
//     uniformly with affineErrorf.

package affine

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// ValidateFinite ensures all six coefficients of m are finite.
//
// Errors: ErrInvalidCoefficient naming the first offending field.
// Complexity: O(1).
func ValidateFinite(m Matrix) error {
	fields := [...]struct {
		name string
		v    float64
	}{
		{"a", m.A}, {"b", m.B}, {"c", m.C},
		{"d", m.D}, {"tx", m.Tx}, {"ty", m.Ty},
	}
	for _, f := range fields {
		if isNonFinite(f.v) {
			return validatorErrorf("ValidateFinite: "+f.name, ErrInvalidCoefficient)
		}
	}

	return nil
}

// ValidateInvertible ensures det is usable as a divisor under tolerance eps.
// A NaN determinant is treated as singular.
//
// Errors: ErrSingularMatrix.
// Complexity: O(1).
func ValidateInvertible(det, eps float64) error {
	if math.IsNaN(det) || math.Abs(det) <= eps {
		return validatorErrorf("ValidateInvertible", ErrSingularMatrix)
	}

	return nil
}
