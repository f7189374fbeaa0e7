package badge

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// expansionSide returns the side of the square buffer the label box is
// rotated inside: the ceiling of the box diagonal, so no rotation angle can
// push a corner outside the buffer.
func expansionSide(boxW, boxH int) int {
	return int(math.Ceil(math.Hypot(float64(boxW), float64(boxH))))
}

// rotateAboutCenter returns src rotated counter-clockwise by deg degrees
// around its own center. The output has the same bounds as the input;
// pixels with no source coverage stay fully transparent. Resampling is
// Catmull-Rom, so edges come out smooth rather than stair-stepped.
func rotateAboutCenter(src image.Image, deg float64) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)

	cx := float64(b.Min.X+b.Max.X) / 2
	cy := float64(b.Min.Y+b.Max.Y) / 2
	sin, cos := math.Sincos(deg * math.Pi / 180)

	// Source-to-destination affine: translate the center to the origin,
	// rotate, translate back. The sign of sin is flipped in the second
	// row because raster Y grows downward.
	m := f64.Aff3{
		cos, sin, cx - cx*cos - cy*sin,
		-sin, cos, cy + cx*sin - cy*cos,
	}
	xdraw.CatmullRom.Transform(dst, m, src, b, xdraw.Src, nil)
	return dst
}
