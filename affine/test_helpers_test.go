// SPDX-License-Identifier: MIT
// Package affine_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures and tolerance-aware assertions.

package affine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/affine2d/affine"
)

// tol is the tolerance for results that go through division or trig.
const tol = 1e-9

// requireMatrix asserts every coefficient of got is within eps of want.
func requireMatrix(t *testing.T, want, got affine.Matrix, eps float64) {
	t.Helper()
	require.InDelta(t, want.A, got.A, eps, "a")
	require.InDelta(t, want.B, got.B, eps, "b")
	require.InDelta(t, want.C, got.C, eps, "c")
	require.InDelta(t, want.D, got.D, eps, "d")
	require.InDelta(t, want.Tx, got.Tx, eps, "tx")
	require.InDelta(t, want.Ty, got.Ty, eps, "ty")
}

// requirePoint asserts got is within eps of want on both axes.
func requirePoint(t *testing.T, want, got affine.Point, eps float64) {
	t.Helper()
	require.InDelta(t, want.X, got.X, eps, "x")
	require.InDelta(t, want.Y, got.Y, eps, "y")
}

// generic returns a well-conditioned, non-symmetric invertible matrix with
// every coefficient distinct and non-zero.
func generic() *affine.Matrix {
	return affine.New(2, 0.5, -1, 3, 4, -7)
}

// fixtures covers identity, pure scale, shear, rotation-like and a full mix.
func fixtures() map[string]*affine.Matrix {
	return map[string]*affine.Matrix{
		"identity": affine.NewIdentity(),
		"scale":    affine.New(3, 0, 0, -2, 0, 0),
		"shear":    affine.New(1, 0, 0.75, 1, 0, 0),
		"rotation": affine.NewIdentity().Rotate(0.6).Translate(1, 2),
		"generic":  generic(),
	}
}
