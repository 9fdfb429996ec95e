// SPDX-License-Identifier: MIT

package affine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/affine2d/affine"
)

func TestDefaultOptions_Documented(t *testing.T) {
	o := affine.GatherOptionsSnapshot_TestOnly()
	require.Equal(t, affine.DefaultEpsilon, o.Eps)
	require.Equal(t, affine.DefaultValidateFinite, o.ValidateFinite)
	require.Equal(t, affine.Matrix{
		A: affine.DefaultA, B: affine.DefaultB,
		C: affine.DefaultC, D: affine.DefaultD,
		Tx: affine.DefaultTx, Ty: affine.DefaultTy,
	}, o.Coeffs)
}

func TestOptions_LastWins(t *testing.T) {
	o := affine.GatherOptionsSnapshot_TestOnly(
		affine.WithEpsilon(1e-3), affine.WithEpsilon(1e-6),
		affine.WithValidateFinite(true), affine.WithValidateFinite(false),
		affine.WithA(5), affine.WithA(7),
	)
	require.Equal(t, 1e-6, o.Eps)
	require.False(t, o.ValidateFinite)
	require.Equal(t, 7.0, o.Coeffs.A)
}

func TestOptions_NilSetterIgnored(t *testing.T) {
	o := affine.GatherOptionsSnapshot_TestOnly(nil, affine.WithTy(2), nil)
	require.Equal(t, 2.0, o.Coeffs.Ty)
}

func TestWithEpsilon_PanicsOnNonsense(t *testing.T) {
	for _, eps := range []float64{-1e-9, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { _ = affine.WithEpsilon(eps) })
	}
	require.NotPanics(t, func() { _ = affine.WithEpsilon(0) })
}
