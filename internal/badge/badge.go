// Package badge renders the deployment badge: a logo stacked over a tilted,
// drop-shadowed label box holding two lines of text, sized to fit its
// content and encoded as PNG.
package badge

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"math"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Config configures a Composer. Zero-value Style and Logger fall back to
// DefaultStyle and slog.Default.
type Config struct {
	// LogoPath is the PNG logo placed at the top of the badge.
	LogoPath string
	// FontPath is a TrueType font file; the embedded Go Regular font is
	// used when it cannot be loaded.
	FontPath string
	Style    Style
	Logger   *slog.Logger
}

// Composer renders badges. It is safe for concurrent use: the logo and font
// are loaded once and never mutated, and every call allocates its own
// working buffers.
type Composer struct {
	logoPath string
	fontPath string
	style    Style
	log      *slog.Logger

	loadOnce sync.Once
	logo     *image.NRGBA // resized to style.LogoWidth
	font     *opentype.Font
	loadErr  error
}

// New creates a Composer. Assets are loaded lazily on the first Compose.
func New(cfg Config) *Composer {
	if cfg.Style == (Style{}) {
		cfg.Style = DefaultStyle()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Composer{
		logoPath: cfg.LogoPath,
		fontPath: cfg.FontPath,
		style:    cfg.Style,
		log:      cfg.Logger,
	}
}

// load reads and prepares the two assets exactly once. A failed logo load
// is cached too: retrying a missing deployment asset is pointless.
func (c *Composer) load() error {
	c.loadOnce.Do(func() {
		c.logo, c.loadErr = loadLogo(c.logoPath, c.style.LogoWidth)
		if c.loadErr != nil {
			return
		}
		c.font = c.loadFont()
	})
	return c.loadErr
}

// loadLogo opens the logo and resizes it to targetW wide, preserving the
// source aspect ratio.
func loadLogo(path string, targetW int) (*image.NRGBA, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: logo %s: %v", ErrAssetNotFound, path, err)
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: logo %s has zero dimensions", ErrRenderFailure, path)
	}
	h := int(math.Round(float64(targetW) * float64(b.Dy()) / float64(b.Dx())))
	return imaging.Resize(src, targetW, h, imaging.Lanczos), nil
}

// Compose renders a badge with the two text lines and returns the PNG
// bytes. It returns ErrAssetNotFound when the logo is missing and
// ErrRenderFailure for anything else that goes wrong.
func (c *Composer) Compose(title, subtitle string) ([]byte, error) {
	if err := c.load(); err != nil {
		return nil, err
	}

	face, err := c.newFace()
	if err != nil {
		return nil, fmt.Errorf("%w: create font face: %v", ErrRenderFailure, err)
	}
	defer face.Close()

	st := c.style

	// Measure each line on its own; the block is the widest line by the
	// stacked heights, no extra inter-line gap.
	m1 := measureLine(face, title)
	m2 := measureLine(face, subtitle)
	textW := max(m1.width, m2.width)
	textH := m1.height + m2.height

	boxW := textW + 2*st.BoxPaddingX
	boxH := textH + 2*st.BoxPaddingY

	logoW := c.logo.Bounds().Dx()
	logoH := c.logo.Bounds().Dy()

	// Shrink-to-fit canvas: wide enough for whichever of logo and box is
	// wider, tall enough to stack both.
	canvasW := max(boxW+2*st.OuterPadding, logoW+2*st.OuterPadding)
	canvasH := logoH + boxH + 2*st.OuterPadding
	canvas := imaging.New(canvasW, canvasH, st.Background)

	// Logo centered at the top.
	logoY := st.OuterPadding
	canvas = imaging.Overlay(canvas, c.logo, image.Pt((canvasW-logoW)/2, logoY), 1.0)

	// Label layer: drawn flat inside the expansion buffer, rotated about
	// the buffer center, then pasted so the box center compensates for
	// the expansion.
	label := c.renderLabel(face, title, subtitle, m1, m2, boxW, boxH)
	rotated := rotateAboutCenter(label, st.RotationDeg)

	side := label.Bounds().Dx()
	boxX := (canvasW - boxW) / 2
	boxY := logoY + logoH - st.BoxOverlap
	pasteX := boxX - (side/2 - boxW/2)
	pasteY := boxY - (side/2 - boxH/2)
	canvas = imaging.Overlay(canvas, rotated, image.Pt(pasteX, pasteY), 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, alphaImage{canvas}); err != nil {
		return nil, fmt.Errorf("%w: encode png: %v", ErrRenderFailure, err)
	}
	return buf.Bytes(), nil
}

// alphaImage hides the wrapped image's Opaque method so the PNG encoder
// skips its opaque fast path and always writes an RGBA color type, even
// when every composited pixel happens to be solid.
type alphaImage struct{ image.Image }

func (alphaImage) Opaque() bool { return false }

// ComposeBase64 renders a badge and returns it base64-encoded for direct
// embedding in an <img src="data:image/png;base64,..."> tag.
func (c *Composer) ComposeBase64(title, subtitle string) (string, error) {
	png, err := c.Compose(title, subtitle)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

// renderLabel draws the unrotated label into a transparent square buffer
// sized by expansionSide: shadow first, then the bordered box, then both
// text lines, each centered on its own measured width.
func (c *Composer) renderLabel(face font.Face, title, subtitle string, m1, m2 lineMetrics, boxW, boxH int) *image.NRGBA {
	st := c.style
	side := expansionSide(boxW, boxH)
	dc := gg.NewContext(side, side)

	ox := float64(side/2 - boxW/2)
	oy := float64(side/2 - boxH/2)

	dc.SetColor(st.ShadowColor)
	dc.DrawRectangle(ox+float64(st.ShadowOffset), oy+float64(st.ShadowOffset), float64(boxW), float64(boxH))
	dc.Fill()

	dc.SetColor(st.BoxColor)
	dc.DrawRectangle(ox, oy, float64(boxW), float64(boxH))
	dc.FillPreserve()
	dc.SetColor(st.BorderColor)
	dc.SetLineWidth(float64(st.BorderWidth))
	dc.Stroke()

	dc.SetFontFace(face)
	dc.SetColor(st.TextColor)
	topY := oy + float64(st.BoxPaddingY)
	dc.DrawString(title, ox+float64((boxW-m1.width)/2), topY+float64(m1.ascent))
	dc.DrawString(subtitle, ox+float64((boxW-m2.width)/2), topY+float64(m1.height+m2.ascent))

	return imaging.Clone(dc.Image())
}
