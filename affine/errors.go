// SPDX-License-Identifier: MIT
// Package affine: sentinel error set.
// This file defines ONLY package-level sentinel errors. Operations return these
// sentinels wrapped with an operation tag (see affineErrorf); tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.
// Panics are reserved for programmer errors in Option constructors.

package affine

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "affine: ..." to allow easy grepping across
// logs. Operations wrap with affineErrorf(op, err) so the text reads
// "Invert: ValidateInvertible: affine: singular matrix" while errors.Is
// still matches.

var (
	// ErrSingularMatrix is returned by Invert when the determinant is zero
	// (or within the configured epsilon of zero) or is NaN.
	ErrSingularMatrix = errors.New("affine: singular matrix")

	// ErrInvalidCoefficient signals a NaN or ±Inf coefficient where the
	// numeric policy requires finite values (see WithValidateFinite).
	ErrInvalidCoefficient = errors.New("affine: NaN or Inf coefficient")
)

// Operation name constants for unified error wrapping.
const (
	opNew    = "New"
	opInvert = "Invert"
)

// affineErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func affineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
