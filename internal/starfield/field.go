// Package starfield generates an effectively infinite, depth-layered star
// field from spatial hashing alone. No star is ever stored: every frame the
// visible region is partitioned into grid cells and each cell's stars are
// re-derived from deterministic hashes, so the field stays perfectly stable
// as the camera pans yet costs no memory.
package starfield

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// Layer is a parallax depth tier.
type Layer uint8

const (
	LayerBackground Layer = iota
	LayerMiddle
	LayerForeground

	LayerCount = 3
)

// Field geometry.
const (
	CellSize = 50.0  // grid cell edge in field pixels
	Margin   = 200.0 // extra border around the viewport, so stars enter smoothly
)

// layerParams holds per-layer parallax speed and star density.
// Deeper layers move slower and carry more, dimmer stars.
var layerParams = [LayerCount]struct {
	Speed   float64 // fraction of camera motion applied to this layer
	Density int     // star count per cell is hashed into [0, Density)
}{
	{Speed: 0.08, Density: 8},
	{Speed: 0.25, Density: 4},
	{Speed: 0.5, Density: 2},
}

// Speed returns the parallax speed of a layer.
func (l Layer) Speed() float64 { return layerParams[l].Speed }

// Density returns the per-cell density bound of a layer.
func (l Layer) Density() int { return layerParams[l].Density }

// palette is the fixed color pool for tinted foreground stars.
var palette = []color.RGBA{
	{R: 0x9f, G: 0xc5, B: 0xff, A: 0xff}, // pale blue
	{R: 0xff, G: 0xdd, B: 0x99, A: 0xff}, // warm yellow
	{R: 0xff, G: 0xb3, B: 0xc6, A: 0xff}, // soft pink
	{R: 0xa8, G: 0xff, B: 0xe2, A: 0xff}, // mint
	{R: 0xd9, G: 0xb3, B: 0xff, A: 0xff}, // lavender
}

// Star is one fully derived star for the current frame. X/Y are screen
// coordinates with parallax and drift already applied.
type Star struct {
	X, Y    float64
	Size    float64
	Opacity float64 // 0..1, blink already folded in
	Color   color.RGBA
	Halo    bool // tinted foreground stars get a radial-gradient halo
}

// Visible derives every star inside the viewport (plus margin) for all three
// layers. offsetX/Y is the camera offset in pixels; t is wall-clock seconds
// driving blink and drift.
func Visible(offsetX, offsetY float64, viewportW, viewportH int, t float64) []Star {
	if viewportW <= 0 || viewportH <= 0 {
		return nil
	}

	var out []Star
	for l := Layer(0); l < LayerCount; l++ {
		out = appendLayer(out, l, offsetX, offsetY, viewportW, viewportH, t)
	}
	return out
}

// appendLayer derives one layer's visible stars. The layer is translated by
// offset*speed on screen, so the visible field region is the viewport
// translated the opposite way.
func appendLayer(out []Star, l Layer, offsetX, offsetY float64, viewportW, viewportH int, t float64) []Star {
	speed := layerParams[l].Speed
	shiftX := offsetX * speed
	shiftY := offsetY * speed

	minX := -Margin - shiftX
	minY := -Margin - shiftY
	maxX := float64(viewportW) + Margin - shiftX
	maxY := float64(viewportH) + Margin - shiftY

	for cy := int(math.Floor(minY / CellSize)); cy <= int(math.Floor(maxY/CellSize)); cy++ {
		for cx := int(math.Floor(minX / CellSize)); cx <= int(math.Floor(maxX/CellSize)); cx++ {
			n := CellStarCount(cx, cy, l)
			for i := 0; i < n; i++ {
				s := CellStar(cx, cy, l, i, t)
				s.X += shiftX
				s.Y += shiftY
				out = append(out, s)
			}
		}
	}
	return out
}

// CellStarCount hashes a cell into its star count, in [0, layer density).
func CellStarCount(cellX, cellY int, l Layer) int {
	seed := cellSeed(cellX, cellY, l, -1)
	rng := rand.New(rand.NewPCG(seed, seed>>16|5))
	return rng.IntN(layerParams[l].Density)
}

// CellStar derives star index i of a cell at time t, in field coordinates.
// Identical (cell, layer, index, t) always yields the identical star; that is
// what lets the field be regenerated every frame with no star table.
func CellStar(cellX, cellY int, l Layer, i int, t float64) Star {
	seed := cellSeed(cellX, cellY, l, i)
	rng := rand.New(rand.NewPCG(seed, seed>>16|9))

	baseX := float64(cellX)*CellSize + rng.Float64()*CellSize
	baseY := float64(cellY)*CellSize + rng.Float64()*CellSize

	var size, baseOpacity float64
	switch l {
	case LayerBackground:
		size = 0.5 + rng.Float64()*1.0
		baseOpacity = 0.25 + rng.Float64()*0.45
	case LayerMiddle:
		size = 1.0 + rng.Float64()*1.5
		baseOpacity = 0.35 + rng.Float64()*0.5
	default:
		size = 1.5 + rng.Float64()*2.0
		baseOpacity = 0.5 + rng.Float64()*0.5
	}

	star := Star{Size: size, Color: color.RGBA{0xff, 0xff, 0xff, 0xff}}

	// Only foreground stars may be tinted, and then they get a halo.
	if l == LayerForeground && rng.Float64() < 0.2 {
		star.Color = palette[rng.IntN(len(palette))]
		star.Halo = true
	}

	// Sinusoidal blink: random speed, phase and depth.
	blinkSpeed := 0.5 + rng.Float64()*2.0
	blinkPhase := rng.Float64() * 2 * math.Pi
	blinkAmp := rng.Float64() * 0.6
	blink := 1 - blinkAmp*(0.5+0.5*math.Sin(t*blinkSpeed+blinkPhase))
	star.Opacity = baseOpacity * blink

	// Floating drift: two independent sinusoids, a few pixels at most.
	driftAmpX := rng.Float64() * 3.0
	driftSpeedX := 0.1 + rng.Float64()*0.4
	driftPhaseX := rng.Float64() * 2 * math.Pi
	driftAmpY := rng.Float64() * 3.0
	driftSpeedY := 0.1 + rng.Float64()*0.4
	driftPhaseY := rng.Float64() * 2 * math.Pi

	star.X = baseX + driftAmpX*math.Sin(t*driftSpeedX+driftPhaseX)
	star.Y = baseY + driftAmpY*math.Sin(t*driftSpeedY+driftPhaseY)

	return star
}

// cellSeed mixes cell coordinates, layer and star index into one hash seed.
// index -1 is reserved for the per-cell star count.
func cellSeed(cellX, cellY int, l Layer, index int) uint64 {
	h := uint64(int64(cellX))*0x9e3779b97f4a7c15 ^
		uint64(int64(cellY))*0xc2b2ae3d27d4eb4f ^
		uint64(l)*0x165667b19e3779f9 ^
		uint64(int64(index))*0x27d4eb2f165667c5
	// Final avalanche so neighboring cells don't correlate.
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	return h
}
