// SPDX-License-Identifier: MIT

package affine

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// TransformPoint returns p mapped through m, translation included.
func (m *Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.Tx,
		Y: m.B*p.X + m.D*p.Y + m.Ty,
	}
}

// DeltaTransformPoint returns p mapped through the linear part of m only.
// Use it for directions and displacements, which translation must not move.
func (m *Matrix) DeltaTransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y,
		Y: m.B*p.X + m.D*p.Y,
	}
}

// TransformFixed is TransformPoint for 26.6 fixed-point coordinates, the
// form font rasterizers work in. Results are rounded to the nearest 1/64.
func (m *Matrix) TransformFixed(p fixed.Point26_6) fixed.Point26_6 {
	q := m.TransformPoint(Point{X: fromInt26_6(p.X), Y: fromInt26_6(p.Y)})

	return fixed.Point26_6{X: toInt26_6(q.X), Y: toInt26_6(q.Y)}
}

func fromInt26_6(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func toInt26_6(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
