// SPDX-License-Identifier: MIT

package affine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/affine2d/affine"
)

func TestValidateFinite(t *testing.T) {
	require.NoError(t, affine.ValidateFinite(*generic()))

	err := affine.ValidateFinite(affine.Matrix{A: 1, D: math.NaN()})
	require.ErrorIs(t, err, affine.ErrInvalidCoefficient)
	require.Contains(t, err.Error(), "ValidateFinite: d")
}

func TestValidateInvertible(t *testing.T) {
	require.NoError(t, affine.ValidateInvertible(1e-300, 0))
	require.ErrorIs(t, affine.ValidateInvertible(0, 0), affine.ErrSingularMatrix)
	require.ErrorIs(t, affine.ValidateInvertible(-1e-10, 1e-9), affine.ErrSingularMatrix)
	require.ErrorIs(t, affine.ValidateInvertible(math.NaN(), 0), affine.ErrSingularMatrix)
	require.NoError(t, affine.ValidateInvertible(math.Inf(1), 0))
}
