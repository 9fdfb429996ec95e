// SPDX-License-Identifier: MIT

package affine_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/katalvlaran/affine2d/affine"
)

func TestAff3_Layout(t *testing.T) {
	m := affine.New(1, 2, 3, 4, 5, 6)
	require.Equal(t, f64.Aff3{1, 3, 5, 2, 4, 6}, m.Aff3())
	require.Equal(t, *m, *affine.FromAff3(m.Aff3()))
}

// TestAff3_DrawTransformer checks that Aff3 follows the src-to-dst
// convention x/image/draw expects: pixels land where TransformPoint says.
func TestAff3_DrawTransformer(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}

	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, red)
	src.SetRGBA(1, 0, blue)

	m := affine.NewIdentity().Translate(3, 2)
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	draw.NearestNeighbor.Transform(dst, m.Aff3(), src, src.Bounds(), draw.Src, nil)

	at := m.TransformPoint(affine.Point{X: 0, Y: 0})
	require.Equal(t, red, dst.RGBAAt(int(at.X), int(at.Y)))
	require.Equal(t, blue, dst.RGBAAt(int(at.X)+1, int(at.Y)))
	require.Equal(t, color.RGBA{}, dst.RGBAAt(0, 0))
}
