package badge

import (
	"bytes"
	"fmt"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// QRCodePNG returns PNG bytes of a QR code for the given text, typically a
// share link back to the badge. The output is decode-checked so callers can
// serve it as-is.
func QRCodePNG(text string, size int) ([]byte, error) {
	pngBytes, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("%w: qr encode: %v", ErrRenderFailure, err)
	}
	// Deliberate decode-check: the bytes go straight to clients, so
	// validate they form a real PNG before returning them.
	if _, err := png.Decode(bytes.NewReader(pngBytes)); err != nil {
		return nil, fmt.Errorf("%w: qr validate: %v", ErrRenderFailure, err)
	}
	return pngBytes, nil
}
