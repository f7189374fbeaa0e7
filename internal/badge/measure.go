package badge

import "golang.org/x/image/font"

// lineMetrics is the tight bounding box of one rendered line.
type lineMetrics struct {
	// width is the bounding-box max X from the drawing origin.
	width int
	// height spans the topmost to bottommost ink.
	height int
	// ascent is the distance from the top of the ink to the baseline,
	// used to convert a top position into a baseline for drawing.
	ascent int
}

// measureLine computes the metrics of s under face. An empty string yields
// all-zero metrics, which the layout treats as a degenerate but valid line.
func measureLine(face font.Face, s string) lineMetrics {
	bounds, _ := font.BoundString(face, s)
	if bounds.Max.X <= bounds.Min.X || bounds.Max.Y <= bounds.Min.Y {
		return lineMetrics{}
	}
	return lineMetrics{
		width:  bounds.Max.X.Ceil(),
		height: (bounds.Max.Y - bounds.Min.Y).Ceil(),
		ascent: (-bounds.Min.Y).Ceil(),
	}
}
