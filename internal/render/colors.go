package render

import "image/color"

// HUD and scene colors.
var (
	ColorSpace     = color.RGBA{0x05, 0x07, 0x12, 0xff} // near-black backdrop
	ColorHUD       = color.RGBA{0xaa, 0xc8, 0xe0, 0xff} // default HUD text
	ColorHUDDim    = color.RGBA{0x55, 0x66, 0x77, 0xff} // secondary HUD text
	ColorWarn      = color.RGBA{0xff, 0x55, 0x55, 0xff} // collision banner
	ColorBarrier   = color.RGBA{0x66, 0x33, 0x44, 0xff} // barrier ring
	ColorBarrierHi = color.RGBA{0xff, 0x44, 0x55, 0xff} // barrier ring while colliding
	ColorShip      = color.RGBA{0xe8, 0xf0, 0xff, 0xff}
	ColorShipFlash = color.RGBA{0xff, 0x66, 0x66, 0xff}
	ColorProgress  = color.RGBA{0x88, 0xdd, 0xff, 0xff} // hold-to-autopilot fill
)

// PointColors maps catalog point types to marker colors.
var PointColors = map[string]color.RGBA{
	"planet":   {0x7f, 0xc8, 0x8f, 0xff},
	"station":  {0x88, 0xaa, 0xff, 0xff},
	"nebula":   {0xd9, 0x8f, 0xff, 0xff},
	"asteroid": {0xc0, 0xb0, 0x90, 0xff},
}

// withAlpha scales a color's alpha, premultiplying the channels.
func withAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
