// Package affine provides a 2D affine transform value type for mapping
// points and shapes between coordinate spaces.
//
// A Matrix holds six coefficients:
//
//	| A  C  Tx |
//	| B  D  Ty |
//	| 0  0  1  |
//
// and maps (x, y) to (A*x + C*y + Tx, B*x + D*y + Ty).
//
// ✨ Operations:
//   - Concat, Invert, Identity, Rotate, Scale, Translate, CreateBox mutate
//     the receiver in place and (except Invert) return it for chaining.
//   - Clone, TransformPoint, DeltaTransformPoint, TransformFixed and String
//     derive new values and leave the receiver alone.
//
// ⚙️ Usage:
//
//	m := affine.NewIdentity().Scale(2, 3).Translate(5, 7)
//	p := m.TransformPoint(affine.Point{X: 1, Y: 1}) // (7, 10)
//
//	inv := m.Clone()
//	if err := inv.Invert(); err != nil {
//		// errors.Is(err, affine.ErrSingularMatrix)
//	}
//
// Errors:
//
//	Invert is the only operation that can fail. It returns ErrSingularMatrix
//	when the determinant is zero (or within WithEpsilon of zero) and leaves
//	the receiver unchanged. Non-finite coefficients propagate through the
//	arithmetic unless WithValidateFinite(true) is passed.
//
// Interop:
//
//	Aff3/FromAff3 convert to golang.org/x/image/math/f64.Aff3, the matrix
//	type x/image/draw Transformers consume; TransformFixed maps
//	golang.org/x/image/math/fixed points.
//
// Concurrency:
//
//	A Matrix is a plain value with no locking. Guard shared instances or
//	Clone per goroutine.
package affine
