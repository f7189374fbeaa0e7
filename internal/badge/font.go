package badge

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontDPI is the resolution text is rendered at. 72 makes point size equal
// pixel size.
const fontDPI = 72

// loadFont parses the TrueType font at path, falling back to the embedded
// Go Regular font when the file is missing or malformed. It never fails:
// a usable font is always returned so text measurement can proceed.
func (c *Composer) loadFont() *opentype.Font {
	data := goregular.TTF
	if b, err := os.ReadFile(c.fontPath); err != nil {
		c.log.Warn("custom font unavailable, using embedded fallback",
			"path", c.fontPath, "err", err)
	} else {
		data = b
	}

	f, err := opentype.Parse(data)
	if err != nil {
		c.log.Warn("custom font unparsable, using embedded fallback",
			"path", c.fontPath, "err", err)
		f, _ = opentype.Parse(goregular.TTF)
	}
	return f
}

// newFace creates a fresh face at the style's point size. Faces keep
// internal scratch buffers and are not safe for concurrent use, so each
// Compose call gets its own.
func (c *Composer) newFace() (font.Face, error) {
	return opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    c.style.FontSize,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
}
