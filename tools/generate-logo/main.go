// Command generate-logo renders a placeholder logo PNG for environments
// that do not ship the real brand asset. The output is a rounded purple
// tile with a wordmark, written to the path the service reads it from.
//
// Usage: go run ./tools/generate-logo [-out resources/heroku_logo.png] [-text heroku]
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func main() {
	out := flag.String("out", filepath.Join("resources", "heroku_logo.png"), "output PNG path")
	text := flag.String("text", "heroku", "wordmark text")
	width := flag.Int("width", 400, "image width")
	height := flag.Int("height", 200, "image height")
	flag.Parse()

	if err := render(*out, *text, *width, *height); err != nil {
		log.Fatal(err)
	}
	log.Println("wrote", *out)
}

func render(out, text string, w, h int) error {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(h) / 4,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return err
	}
	defer face.Close()

	dc := gg.NewContext(w, h)

	// Rounded tile on a transparent background.
	margin := float64(h) / 12
	dc.SetRGB255(0x43, 0x07, 0x98)
	dc.DrawRoundedRectangle(margin, margin, float64(w)-2*margin, float64(h)-2*margin, margin)
	dc.Fill()

	dc.SetFontFace(face)
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(text, float64(w)/2, float64(h)/2, 0.5, 0.5)

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	return dc.SavePNG(out)
}
