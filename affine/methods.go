// SPDX-License-Identifier: MIT
// Package affine: in-place transform composition.
//
// Every mutator snapshots the coefficients it reads into locals before the
// first write, so no formula ever observes a partially updated receiver.
// This also makes m.Concat(*m) well defined.

package affine

import "math"

// Concat composes m with o in place so that applying the result is
// equivalent to applying m first and then o. o is not modified.
//
// Implementation:
//   - Stage 1: snapshot m's six coefficients and o's six coefficients.
//   - Stage 2: write
//     a = a'a + c'b,  b = b'a + d'b,
//     c = a'c + c'd,  d = b'c + d'd,
//     tx = a'tx + c'ty + tx',  ty = b'tx + d'ty + ty'
//     where primed values are o's.
//
// Returns m to allow chaining.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix) Concat(o Matrix) *Matrix {
	a, b, c, d, tx, ty := m.A, m.B, m.C, m.D, m.Tx, m.Ty

	m.A = o.A*a + o.C*b
	m.B = o.B*a + o.D*b
	m.C = o.A*c + o.C*d
	m.D = o.B*c + o.D*d
	m.Tx = o.A*tx + o.C*ty + o.Tx
	m.Ty = o.B*tx + o.D*ty + o.Ty

	return m
}

// Invert replaces m with its inverse.
//
// Implementation:
//   - Stage 1: under WithValidateFinite(true), reject non-finite coefficients.
//   - Stage 2: det = a*d - c*b; reject when |det| <= eps or det is NaN.
//   - Stage 3: a' = d/det, b' = -b/det, c' = -c/det, d' = a/det from the
//     original a..d; then tx' = -(a'*tx + c'*ty), ty' = -(b'*tx + d'*ty)
//     from the new linear part and the original translation.
//
// Errors:
//   - ErrSingularMatrix (wrapped with "Invert").
//   - ErrInvalidCoefficient (wrapped with "Invert"), only when enabled.
//
// On error m is left untouched: all checks run before the first write.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix) Invert(opts ...Option) error {
	if err := m.checkInvertible(gatherOptions(opts...)); err != nil {
		return affineErrorf(opInvert, err)
	}

	a, b, c, d, tx, ty := m.A, m.B, m.C, m.D, m.Tx, m.Ty
	det := a*d - c*b

	m.A = d / det
	m.B = -b / det
	m.C = -c / det
	m.D = a / det
	m.Tx = -(m.A*tx + m.C*ty)
	m.Ty = -(m.B*tx + m.D*ty)

	return nil
}

// checkInvertible applies the Invert preconditions under the resolved options.
func (m *Matrix) checkInvertible(o Options) error {
	if o.validateFinite {
		if err := ValidateFinite(*m); err != nil {
			return err
		}
	}

	return ValidateInvertible(m.Determinant(), o.eps)
}

// Rotate composes a rotation by angle radians onto m. Positive angles turn
// the positive x axis towards the positive y axis. An angle of exactly zero
// leaves m bit-identical.
func (m *Matrix) Rotate(angle float64) *Matrix {
	if angle == 0 {
		return m
	}

	cos, sin := math.Cos(angle), math.Sin(angle)
	a, b, c, d, tx, ty := m.A, m.B, m.C, m.D, m.Tx, m.Ty

	m.A = a*cos - b*sin
	m.B = a*sin + b*cos
	m.C = c*cos - d*sin
	m.D = c*sin + d*cos
	m.Tx = tx*cos - ty*sin
	m.Ty = tx*sin + ty*cos

	return m
}

// Scale composes a scaling by sx along x and sy along y onto m, including
// the translation. Each axis is skipped when its factor is exactly 1.
func (m *Matrix) Scale(sx, sy float64) *Matrix {
	if sx != 1 {
		m.A *= sx
		m.C *= sx
		m.Tx *= sx
	}
	if sy != 1 {
		m.B *= sy
		m.D *= sy
		m.Ty *= sy
	}

	return m
}

// Translate moves m by (dx, dy).
func (m *Matrix) Translate(dx, dy float64) *Matrix {
	m.Tx += dx
	m.Ty += dy

	return m
}

// CreateBox resets m and builds the transform for a box scaled by (sx, sy),
// rotated by angle radians and positioned at (tx, ty). It is equivalent to
// Identity, Rotate, Scale and Translate applied in that order.
func (m *Matrix) CreateBox(sx, sy, angle, tx, ty float64) *Matrix {
	return m.Identity().Rotate(angle).Scale(sx, sy).Translate(tx, ty)
}
