package icons

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"codeberg.org/miketth/numcaps/pkg/numcaps"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Size is the edge length of the tray icons in pixels at 96 DPI.
const Size = 16

var ErrUnknownIcon = errors.New("unknown icon")

type style struct {
	glyph  string
	filled bool
}

var (
	colorOn   = color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}
	colorOff  = color.RGBA{R: 0x75, G: 0x75, B: 0x75, A: 0xff}
	colorText = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

var styles = map[numcaps.IconID]style{
	numcaps.IconNumOn:   {glyph: "1", filled: true},
	numcaps.IconNumOff:  {glyph: "1"},
	numcaps.IconCapsOn:  {glyph: "A", filled: true},
	numcaps.IconCapsOff: {glyph: "A"},
}

// Render draws the tray glyph for id: a filled badge when the key is on,
// an outlined one when it is off.
func Render(id numcaps.IconID) (*image.RGBA, error) {
	s, ok := styles[id]
	if !ok {
		return nil, fmt.Errorf("icon %d: %w", id, ErrUnknownIcon)
	}

	img := image.NewRGBA(image.Rect(0, 0, Size, Size))

	fg := image.NewUniform(colorOff)
	if s.filled {
		draw.Draw(img, img.Bounds(), image.NewUniform(colorOn), image.Point{}, draw.Src)
		fg = image.NewUniform(colorText)
	} else {
		outline(img, colorOff)
	}

	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: fg, Face: face}

	width := d.MeasureString(s.glyph).Ceil()
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	d.Dot = fixed.P((Size-width)/2, (Size-height)/2+metrics.Ascent.Ceil())
	d.DrawString(s.glyph)

	return img, nil
}

func outline(img *image.RGBA, c color.Color) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		img.Set(x, b.Min.Y, c)
		img.Set(x, b.Max.Y-1, c)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		img.Set(b.Min.X, y, c)
		img.Set(b.Max.X-1, y, c)
	}
}
