package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/stardrift/stardrift/internal/catalog"
	"github.com/stardrift/stardrift/internal/sim"
	"github.com/stardrift/stardrift/internal/starfield"
)

const (
	shipSize     = 28 // ship sprite edge in pixels
	pointRadius  = 6
	barrierWidth = 2
)

// Scene draws one frame of the simulation: starfield, barrier, catalog
// points, ship and HUD. It owns only GPU-side resources; all state it renders
// comes from the Sim each call.
type Scene struct {
	atlas *TextAtlas
	ship  *ebiten.Image
}

// NewScene builds the text atlas and the ship sprite.
func NewScene() *Scene {
	return &Scene{
		atlas: NewTextAtlas(),
		ship:  buildShipSprite(),
	}
}

// buildShipSprite rasterizes an upward-pointing ship triangle into an image.
// Rotation happens at draw time via GeoM, so one sprite serves every heading.
func buildShipSprite() *ebiten.Image {
	img := image.NewNRGBA(image.Rect(0, 0, shipSize, shipSize))
	w := color.NRGBA{0xff, 0xff, 0xff, 0xff}

	// Triangle: apex at top center, base corners near the bottom edge,
	// with a notch cut into the base so it reads as a ship, not an arrow.
	apexX := shipSize / 2
	for y := 2; y < shipSize-2; y++ {
		progress := float64(y-2) / float64(shipSize-4)
		half := int(progress * float64(shipSize/2-2))
		for x := apexX - half; x <= apexX+half; x++ {
			// Base notch
			if y > shipSize-8 {
				dx := x - apexX
				if dx > -3 && dx < 3 {
					continue
				}
			}
			img.SetNRGBA(x, y, w)
		}
	}
	return ebiten.NewImageFromImage(img)
}

// Draw renders the full scene. t is wall-clock seconds for star animation.
func (sc *Scene) Draw(screen *ebiten.Image, s *sim.Sim, cat *catalog.Catalog, t float64) {
	screen.Fill(ColorSpace)

	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	cx := float64(w) / 2
	cy := float64(h) / 2

	sc.drawStars(screen, s, w, h, t)
	sc.drawBarrier(screen, s, cx, cy)
	sc.drawPoints(screen, s, cat)
	sc.drawShip(screen, s, cx, cy)
	sc.drawHUD(screen, s, cat, w, h)
}

func (sc *Scene) drawStars(screen *ebiten.Image, s *sim.Sim, w, h int, t float64) {
	for _, st := range starfield.Visible(s.Camera.X, s.Camera.Y, w, h, t) {
		x := float32(st.X)
		y := float32(st.Y)
		r := float32(st.Size)
		if st.Halo {
			vector.DrawFilledCircle(screen, x, y, r*3, withAlpha(st.Color, st.Opacity*0.10), true)
			vector.DrawFilledCircle(screen, x, y, r*2, withAlpha(st.Color, st.Opacity*0.22), true)
		}
		vector.DrawFilledCircle(screen, x, y, r, withAlpha(st.Color, st.Opacity), true)
	}
}

// drawBarrier strokes the barrier circle. The barrier is centered on the
// world origin in camera space; the ship sits at the camera offset, so on
// screen the origin appears at center minus offset.
func (sc *Scene) drawBarrier(screen *ebiten.Image, s *sim.Sim, cx, cy float64) {
	clr := ColorBarrier
	if s.Colliding() {
		clr = ColorBarrierHi
	}
	vector.StrokeCircle(screen,
		float32(cx-s.Camera.X), float32(cy-s.Camera.Y),
		float32(sim.BarrierRadius), barrierWidth, clr, true)
}

func (sc *Scene) drawPoints(screen *ebiten.Image, s *sim.Sim, cat *catalog.Catalog) {
	for _, p := range cat.Points() {
		pos := s.PointScreenPos(p)
		clr, ok := PointColors[string(p.Type)]
		if !ok {
			clr = ColorHUD
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), pointRadius, clr, true)

		if p.ID == s.NearestID {
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), pointRadius+5, 1, clr, true)
			sc.atlas.DrawString(screen, pos.X-sc.atlas.StringWidth(p.Name)/2, pos.Y+12, p.Name, clr)
		}
	}
}

func (sc *Scene) drawShip(screen *ebiten.Image, s *sim.Sim, cx, cy float64) {
	clr := ColorShip
	if s.Colliding() {
		clr = ColorShipFlash
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-shipSize/2, -shipSize/2)
	op.GeoM.Rotate(s.Rotation.Current * math.Pi / 180)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(sc.ship, &op)
}

func (sc *Scene) drawHUD(screen *ebiten.Image, s *sim.Sim, cat *catalog.Catalog, w, h int) {
	// Collision banner, centered near the top.
	if msg := s.Notices.Current(); msg != "" {
		x := (float64(w) - sc.atlas.StringWidth(msg)) / 2
		sc.atlas.DrawString(screen, x, 24, msg, ColorWarn)
	}

	// Proximity readout, bottom left.
	if s.NearestID != "" {
		if p, ok := cat.ByID(s.NearestID); ok {
			sc.atlas.DrawString(screen, 12, float64(h)-24, "Near: "+p.Name, ColorHUD)
		}
	}

	// Mode, bottom right.
	mode := s.Mode.String()
	sc.atlas.DrawString(screen, float64(w)-sc.atlas.StringWidth(mode)-12, float64(h)-24, mode, ColorHUDDim)

	// Hold-to-autopilot progress bar above the ship.
	if p := s.HoldProgress(); p > 0 {
		barW := 60.0
		x := float64(w)/2 - barW/2
		y := float64(h)/2 - 40
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(barW), 4, ColorHUDDim, false)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(barW*p), 4, ColorProgress, false)
	}
	if s.Mode == sim.ModeAutopilot {
		sc.atlas.DrawString(screen, float64(w)/2-sc.atlas.StringWidth("AUTOPILOT")/2, float64(h)/2-48, "AUTOPILOT", ColorProgress)
	}
}
