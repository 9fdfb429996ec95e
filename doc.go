// Package affine2d is a small toolkit for 2D affine transforms: the
// linear-plus-translation maps used to move shapes between coordinate
// spaces (local → world, page → device, glyph → raster).
//
// 🚀 What is in here?
//
//	affine/          - the Matrix value type: Concat, Invert, Rotate, Scale,
//	                   Translate, TransformPoint, DeltaTransformPoint, String
//	cmd/affinectl/   - a debug CLI that applies a chain of steps and prints
//	                   every intermediate matrix
//
// ✨ Why affine2d?
//
//   - Value semantics: six float64 fields, no hidden state, Clone is a copy
//   - Explicit failure: Invert reports ErrSingularMatrix instead of filling
//     the matrix with NaN, and leaves it untouched
//   - Interop: converts to golang.org/x/image/math/f64.Aff3 for
//     x/image/draw, maps golang.org/x/image/math/fixed points
//
// Quick example:
//
//	m := affine.NewIdentity().Scale(2, 3).Translate(5, 7)
//	fmt.Println(m)                                   // (a=2, b=0, c=0, d=3, tx=5, ty=7)
//	fmt.Println(m.TransformPoint(affine.Point{X: 1, Y: 1})) // (7, 10)
//
//	go get github.com/katalvlaran/affine2d/affine
package affine2d
