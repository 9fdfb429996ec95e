// SPDX-License-Identifier: MIT

package affine

import "golang.org/x/image/math/f64"

// Aff3 returns m in the row-major layout of golang.org/x/image/math/f64:
// {A, C, Tx, B, D, Ty}. The result can be passed as the src-to-dst matrix of
// an x/image/draw Transformer.
func (m *Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{
		m.A, m.C, m.Tx,
		m.B, m.D, m.Ty,
	}
}

// FromAff3 is the inverse of Matrix.Aff3.
func FromAff3(t f64.Aff3) *Matrix {
	return &Matrix{
		A: t[0], C: t[1], Tx: t[2],
		B: t[3], D: t[4], Ty: t[5],
	}
}
