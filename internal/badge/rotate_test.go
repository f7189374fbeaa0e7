package badge

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpansionSideCoversDiagonal(t *testing.T) {
	for _, tc := range []struct{ w, h int }{
		{200, 50}, {120, 80}, {300, 40}, {1, 1},
	} {
		side := expansionSide(tc.w, tc.h)
		diag := math.Hypot(float64(tc.w), float64(tc.h))
		require.GreaterOrEqual(t, float64(side), diag)
		require.Less(t, float64(side), diag+1)
	}
}

func TestRotatePreservesBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 101, 101))
	dst := rotateAboutCenter(src, -10)
	require.Equal(t, src.Bounds(), dst.Bounds())
}

// drawCenteredBox fills an opaque boxW x boxH rectangle in the middle of a
// fresh transparent side x side buffer, mirroring the label layout.
func drawCenteredBox(side, boxW, boxH int) *image.NRGBA {
	buf := image.NewNRGBA(image.Rect(0, 0, side, side))
	origin := image.Pt(side/2-boxW/2, side/2-boxH/2)
	draw.Draw(buf, image.Rectangle{origin, origin.Add(image.Pt(boxW, boxH))},
		image.NewUniform(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		image.Point{}, draw.Src)
	return buf
}

// inkSum totals the alpha of every pixel, a proxy for how much content the
// image holds.
func inkSum(img *image.NRGBA) uint64 {
	var sum uint64
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sum += uint64(img.NRGBAAt(x, y).A)
		}
	}
	return sum
}

// TestRotationDoesNotClipBox verifies the expansion buffer really is big
// enough: rotating the box inside it keeps the same amount of content as
// rotating inside a buffer with generous extra margin. A clipped corner
// would lose a visible chunk of ink.
func TestRotationDoesNotClipBox(t *testing.T) {
	boxes := []struct{ w, h int }{{200, 50}, {120, 80}, {300, 40}}
	angles := []float64{-90, -45, -10, 0, 10, 45, 90}

	for _, box := range boxes {
		side := expansionSide(box.w, box.h)
		tight := drawCenteredBox(side, box.w, box.h)
		roomy := drawCenteredBox(side+32, box.w, box.h)

		for _, angle := range angles {
			gotInk := inkSum(rotateAboutCenter(tight, angle))
			wantInk := inkSum(rotateAboutCenter(roomy, angle))

			// Allow subpixel differences from resampling at the
			// buffer boundary; clipping a corner would cost far
			// more than a few pixels' worth of alpha.
			require.InDelta(t, float64(wantInk), float64(gotInk), 5*255,
				"box %dx%d rotated %.0f° lost content at the buffer edge", box.w, box.h, angle)
		}
	}
}

func TestRotateKeepsOutsideTransparent(t *testing.T) {
	side := 101
	buf := drawCenteredBox(side, 21, 21)

	rot := rotateAboutCenter(buf, -10)
	require.Equal(t, uint8(0), rot.NRGBAAt(0, 0).A)
	require.Equal(t, uint8(0), rot.NRGBAAt(side-1, side-1).A)
	// The center stays covered under rotation about the center.
	require.Equal(t, uint8(0xff), rot.NRGBAAt(side/2, side/2).A)
}
