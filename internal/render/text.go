package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// GlyphWidth/Height are the atlas cell dimensions in pixels.
	GlyphWidth  = 8
	GlyphHeight = 16

	asciiFirst = 32
	asciiLast  = 126
	atlasCols  = 16
)

// TextAtlas holds a pre-rendered ASCII glyph atlas for HUD text.
// Glyphs are rendered once at startup with basicfont.Face7x13.
type TextAtlas struct {
	image  *ebiten.Image
	glyphs [asciiLast - asciiFirst + 1]*ebiten.Image
}

// NewTextAtlas renders the printable ASCII range into an atlas.
func NewTextAtlas() *TextAtlas {
	count := asciiLast - asciiFirst + 1
	rows := (count + atlasCols - 1) / atlasCols
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*GlyphWidth, rows*GlyphHeight))
	face := basicfont.Face7x13

	for i := 0; i < count; i++ {
		cx := (i % atlasCols) * GlyphWidth
		cy := (i / atlasCols) * GlyphHeight
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.White),
			Face: face,
			Dot:  fixed.P(cx, cy+12), // baseline near cell bottom
		}
		d.DrawString(string(rune(asciiFirst + i)))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &TextAtlas{image: eimg}
	for i := 0; i < count; i++ {
		x := (i % atlasCols) * GlyphWidth
		y := (i / atlasCols) * GlyphHeight
		rect := image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
		a.glyphs[i] = eimg.SubImage(rect).(*ebiten.Image)
	}
	return a
}

// DrawString renders s at pixel position (x, y) in the given color.
// Non-ASCII runes render as '?'.
func (a *TextAtlas) DrawString(dst *ebiten.Image, x, y float64, s string, clr color.RGBA) {
	offset := 0.0
	for _, r := range s {
		if r < asciiFirst || r > asciiLast {
			r = '?'
		}
		g := a.glyphs[r-asciiFirst]
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(x+offset, y)
		op.ColorScale.ScaleWithColor(clr)
		dst.DrawImage(g, &op)
		offset += GlyphWidth
	}
}

// StringWidth returns the pixel width of s when drawn with DrawString.
func (a *TextAtlas) StringWidth(s string) float64 {
	n := 0
	for range s {
		n++
	}
	return float64(n * GlyphWidth)
}
