package plume

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	ogWidth  = 1200
	ogHeight = 630
	// Cards are drawn small with a bitmap face and scaled up. The scale
	// factor keeps the 7x13 face readable at share-preview sizes.
	ogScale      = 4
	ogTitleChars = 34 // wrap width in characters at the small canvas size
	ogMaxLines   = 5
)

var (
	ogBackground = color.RGBA{R: 0x28, G: 0x2c, B: 0x35, A: 0xff}
	ogForeground = color.RGBA{R: 0xff, G: 0xfa, B: 0xf2, A: 0xff}
	ogAccent     = color.RGBA{R: 0xff, G: 0xa7, B: 0xc4, A: 0xff}
)

// RenderOGCard draws a 1200x630 Open Graph preview card: the title wrapped
// over a flat background with the subtitle underneath, encoded as PNG.
func RenderOGCard(title, subtitle string) ([]byte, error) {
	small := image.NewRGBA(image.Rect(0, 0, ogWidth/ogScale, ogHeight/ogScale))
	draw.Draw(small, small.Bounds(), image.NewUniform(ogBackground), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	lineHeight := face.Height + 4

	lines := wrapText(title, ogTitleChars)
	if len(lines) > ogMaxLines {
		lines = lines[:ogMaxLines]
		lines[ogMaxLines-1] += "…"
	}

	drawer := font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(ogForeground),
		Face: face,
	}
	y := 40
	for _, line := range lines {
		drawer.Dot = fixed.P(20, y)
		drawer.DrawString(line)
		y += lineHeight
	}

	drawer.Src = image.NewUniform(ogAccent)
	drawer.Dot = fixed.P(20, (ogHeight/ogScale)-16)
	drawer.DrawString(subtitle)

	dst := image.NewRGBA(image.Rect(0, 0, ogWidth, ogHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), small, small.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode og card: %w", err)
	}
	return buf.Bytes(), nil
}

// wrapText greedily wraps s into lines of at most width characters.
// A single word longer than width gets its own line, unbroken.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
