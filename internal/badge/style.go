package badge

import "image/color"

// Style holds the presentation constants of a badge. These are fixed
// choices carried over from the original artwork, not derived values.
type Style struct {
	// LogoWidth is the width the logo is resized to; height follows the
	// source aspect ratio.
	LogoWidth int
	// FontSize is the text point size at 72 DPI.
	FontSize float64
	// OuterPadding is the margin between the canvas edges and content.
	OuterPadding int
	// BoxPaddingX / BoxPaddingY pad the measured text block inside the
	// label box.
	BoxPaddingX int
	BoxPaddingY int
	// BoxOverlap is how far the label box rides up over the logo's
	// bottom edge.
	BoxOverlap int
	// ShadowOffset shifts the drop shadow down-and-right from the box.
	ShadowOffset int
	// BorderWidth is the stroke width of the box border.
	BorderWidth int
	// RotationDeg tilts the label box, counter-clockwise positive.
	RotationDeg float64

	Background  color.NRGBA
	BoxColor    color.NRGBA
	BorderColor color.NRGBA
	TextColor   color.NRGBA
	ShadowColor color.NRGBA
}

// DefaultStyle returns the stock badge look: white canvas, white box with a
// 2px black border and a semi-transparent shadow, tilted by 10 degrees.
func DefaultStyle() Style {
	return Style{
		LogoWidth:    200,
		FontSize:     20,
		OuterPadding: 15,
		BoxPaddingX:  10,
		BoxPaddingY:  5,
		BoxOverlap:   10,
		ShadowOffset: 5,
		BorderWidth:  2,
		RotationDeg:  -10,
		Background:   color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		BoxColor:     color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		BorderColor:  color.NRGBA{A: 0xff},
		TextColor:    color.NRGBA{A: 0xff},
		ShadowColor:  color.NRGBA{A: 0x80},
	}
}
