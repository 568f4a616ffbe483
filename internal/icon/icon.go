// Package icon renders fallback bar-item icons for items that have no
// configured image: a colored tile with the label's initials.
package icon

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// palette holds the tile background colors. A label always maps to the
// same color so icons stay stable across renders.
var palette = []color.RGBA{
	{R: 0x2d, G: 0x6c, B: 0xdf, A: 0xff}, // blue
	{R: 0x2f, G: 0x9e, B: 0x44, A: 0xff}, // green
	{R: 0xe8, G: 0x59, B: 0x0c, A: 0xff}, // orange
	{R: 0x9c, G: 0x36, B: 0xb5, A: 0xff}, // purple
	{R: 0xc9, G: 0x2a, B: 0x2a, A: 0xff}, // red
	{R: 0x0b, G: 0x72, B: 0x85, A: 0xff}, // teal
}

var textColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Render draws a size x size tile for label and encodes it as PNG.
func Render(label string, size int) ([]byte, error) {
	if size < 16 || size > 1024 {
		return nil, fmt.Errorf("icon size %d out of range (16..1024)", size)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundFor(label)), image.Point{}, draw.Src)
	drawCenteredText(img, Initials(label), size/2, size/2)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Initials reduces a label to at most two uppercase initials. Words are
// runs of letters and digits, so "on-screen" contributes O and S. A label
// with no word characters yields "?".
func Initials(label string) string {
	var out []rune
	inWord := false
	for _, r := range label {
		isWordChar := unicode.IsLetter(r) || unicode.IsDigit(r)
		if isWordChar && !inWord {
			out = append(out, unicode.ToUpper(r))
			if len(out) == 2 {
				break
			}
		}
		inWord = isWordChar
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

// backgroundFor hashes the label into the palette.
func backgroundFor(label string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(label))
	return palette[h.Sum32()%uint32(len(palette))]
}

// drawCenteredText draws text centered at (x, y) using the fixed
// 7x13 bitmap face.
func drawCenteredText(img *image.RGBA, text string, x, y int) {
	textWidth := len(text) * 7
	point := fixed.Point26_6{
		X: fixed.Int26_6((x - textWidth/2) * 64),
		Y: fixed.Int26_6((y + 13/2) * 64),
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  point,
	}
	d.DrawString(text)
}
