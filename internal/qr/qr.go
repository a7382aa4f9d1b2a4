package qr

import (
	"errors"
	"fmt"
	"os"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// modulePixels is the rendered size of one QR module
const modulePixels = 30

// ErrEmptyContent is returned when there is nothing to encode
var ErrEmptyContent = errors.New("qr: no content to encode")

// Encode renders content as a PNG QR code with low error correction
func Encode(content string) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	code, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}
	// A negative size is taken as pixels per module
	png, err := code.PNG(-modulePixels)
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}
	return png, nil
}

// WriteFile encodes content and writes the PNG to path, optionally with
// the content printed under the code
func WriteFile(content, path string, captioned bool) error {
	encode := Encode
	if captioned {
		encode = EncodeCaptioned
	}
	png, err := encode(content)
	if err != nil {
		return err
	}
	return os.WriteFile(path, png, 0o644)
}
