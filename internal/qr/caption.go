package qr

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	glyphWidth   = 7  // basicfont.Face7x13 advance
	lineHeight   = 15 // glyph height plus leading
	captionPad   = 10
	maxCaptionLn = 6
)

// EncodeCaptioned renders content as a QR code with the content printed
// underneath, wrapped to the code's width.
func EncodeCaptioned(content string) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	code, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}
	symbol := code.Image(-modulePixels)
	width := symbol.Bounds().Dx()

	lines := wrapText(content, width-2*captionPad)
	height := symbol.Bounds().Dy() + len(lines)*lineHeight + captionPad

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(img, symbol.Bounds(), symbol, image.Point{}, draw.Src)

	y := symbol.Bounds().Dy() + basicfont.Face7x13.Ascent
	for _, line := range lines {
		x := (width - len(line)*glyphWidth) / 2
		drawString(img, x, y, line)
		y += lineHeight
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}
	return buf.Bytes(), nil
}

// wrapText breaks text into lines of at most maxWidth pixels
func wrapText(text string, maxWidth int) []string {
	maxChars := maxWidth / glyphWidth
	if maxChars < 1 {
		maxChars = 1
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if len(candidate) > maxChars && current != "" {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}

	if len(lines) > maxCaptionLn {
		lines = lines[:maxCaptionLn]
		lines[maxCaptionLn-1] += "..."
	}
	return lines
}

func drawString(img *image.RGBA, x, y int, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}
