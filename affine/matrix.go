// SPDX-License-Identifier: MIT
// Package affine: the Matrix value type, constructors and predicates.
//
// Purpose:
//   - Define Matrix (six coefficients) and Point.
//   - Provide constructors with identity defaults.
//
// Layout:
//
//	| A  C  Tx |
//	| B  D  Ty |
//	| 0  0  1  |
//
// Concurrency:
//   - No internal locking. Every mutator writes fields in place; callers that
//     share a *Matrix across goroutines must guard it or Clone per goroutine.

package affine

import "math"

// Matrix is a 2D affine transform: a linear part (A, B, C, D) plus a
// translation (Tx, Ty). A point (x, y) maps to
// (A*x + C*y + Tx, B*x + D*y + Ty).
//
// The zero value is the all-zero (singular) matrix; use NewIdentity for the
// identity transform.
type Matrix struct {
	A, B, C, D, Tx, Ty float64
}

// Point is a position or a displacement in the plane.
type Point struct {
	X, Y float64
}

// New returns a matrix with the given coefficients. No validation is
// performed; singular and non-finite values are accepted.
func New(a, b, c, d, tx, ty float64) *Matrix {
	return &Matrix{A: a, B: b, C: c, D: d, Tx: tx, Ty: ty}
}

// NewIdentity returns the identity transform.
func NewIdentity() *Matrix {
	return &Matrix{A: DefaultA, B: DefaultB, C: DefaultC, D: DefaultD, Tx: DefaultTx, Ty: DefaultTy}
}

// NewFromOptions builds a matrix where every coefficient is independently
// optional: coefficients not set through WithA..WithTy or WithCoefficients
// take their identity defaults.
//
// Errors:
//   - ErrInvalidCoefficient (wrapped with "New") when WithValidateFinite(true)
//     is given and a coefficient is NaN or ±Inf.
func NewFromOptions(opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if o.validateFinite {
		if err := ValidateFinite(o.coeffs); err != nil {
			return nil, affineErrorf(opNew, err)
		}
	}
	m := o.coeffs

	return &m, nil
}

// Clone returns an independent copy of m.
func (m *Matrix) Clone() *Matrix {
	c := *m

	return &c
}

// Identity resets m to the identity transform and returns m.
func (m *Matrix) Identity() *Matrix {
	m.A, m.B, m.C, m.D, m.Tx, m.Ty = DefaultA, DefaultB, DefaultC, DefaultD, DefaultTx, DefaultTy

	return m
}

// Determinant returns a*d - c*b.
func (m *Matrix) Determinant() float64 {
	return m.A*m.D - m.C*m.B
}

// IsInvertible reports whether Invert with the same options would succeed.
func (m *Matrix) IsInvertible(opts ...Option) bool {
	return m.checkInvertible(gatherOptions(opts...)) == nil
}

// IsIdentity reports whether m is exactly the identity transform.
func (m *Matrix) IsIdentity() bool {
	return *m == Matrix{A: 1, D: 1}
}

// IsFinite reports whether all six coefficients are finite.
func (m *Matrix) IsFinite() bool {
	return ValidateFinite(*m) == nil
}

// Equal reports whether every coefficient of m is within eps of the
// corresponding coefficient of o. NaN never compares equal.
func (m *Matrix) Equal(o Matrix, eps float64) bool {
	return near(m.A, o.A, eps) && near(m.B, o.B, eps) &&
		near(m.C, o.C, eps) && near(m.D, o.D, eps) &&
		near(m.Tx, o.Tx, eps) && near(m.Ty, o.Ty, eps)
}

func near(x, y, eps float64) bool {
	if x == y { // covers equal infinities
		return true
	}

	return math.Abs(x-y) <= eps
}
