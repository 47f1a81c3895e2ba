package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/stardrift/stardrift/assets"
	"github.com/stardrift/stardrift/internal/audio"
	"github.com/stardrift/stardrift/internal/catalog"
	"github.com/stardrift/stardrift/internal/config"
	"github.com/stardrift/stardrift/internal/render"
	"github.com/stardrift/stardrift/internal/sim"
	"github.com/stardrift/stardrift/internal/store"
)

const title = "Stardrift"

// Game is the Ebitengine game struct. It owns rendering and raw input; all
// simulation state lives in sim, which only ever sees a pointer event stream.
type Game struct {
	scene *render.Scene
	sim   *sim.Sim
	cat   *catalog.Catalog
	start time.Time

	w, h int

	pressed        bool
	lastCX, lastCY int
}

// NewGame wires the host ports and creates the simulation.
func NewGame(cfg *config.Config) *Game {
	data, err := assets.Points.ReadFile("points/points.json")
	if err != nil {
		log.Fatalf("load point catalog: %v", err)
	}
	cat, err := catalog.Load(data)
	if err != nil {
		log.Fatalf("parse point catalog: %v", err)
	}

	var st sim.Store
	fileStore, err := store.OpenFile(cfg.SavePath)
	if err != nil {
		log.Printf("save file unavailable, position will not persist: %v", err)
		st = store.NewMemory()
	} else {
		st = fileStore
	}

	player := audio.NewPlayer(cfg.AudioEnabled)

	s := sim.New(sim.Ports{
		Catalog:  cat,
		Store:    st,
		StoreKey: cfg.PositionKey,
		Audio:    player,
		OnPointClick: func(id string, p catalog.Point) {
			log.Printf("point activated: %s (%s): %s", p.Name, p.Type, p.Description)
		},
	})

	return &Game{
		scene: render.NewScene(),
		sim:   s,
		cat:   cat,
		start: time.Now(),
		w:     cfg.WindowW,
		h:     cfg.WindowH,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
	}

	cx, cy := ebiten.CursorPosition()

	var events []sim.PointerEvent
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressed = true
		g.lastCX, g.lastCY = cx, cy
		events = append(events, sim.PointerEvent{
			Kind: sim.PointerPress,
			X:    float64(cx), Y: float64(cy),
		})
	}
	if g.pressed && (cx != g.lastCX || cy != g.lastCY) {
		events = append(events, sim.PointerEvent{
			Kind: sim.PointerMove,
			DX:   float64(cx - g.lastCX), DY: float64(cy - g.lastCY),
			X: float64(cx), Y: float64(cy),
		})
		g.lastCX, g.lastCY = cx, cy
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.pressed = false
		events = append(events, sim.PointerEvent{
			Kind: sim.PointerRelease,
			X:    float64(cx), Y: float64(cy),
		})
	}

	g.sim.Tick(sim.Frame{
		Events:   events,
		CursorX:  float64(cx),
		CursorY:  float64(cy),
		SurfaceW: g.w,
		SurfaceH: g.h,
	})

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	t := time.Since(g.start).Seconds()
	g.scene.Draw(screen, g.sim, g.cat, t)
}

// Layout tracks the outside size so the simulation always sees the real
// surface dimensions, including a momentarily zero-sized window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	cfg := config.Load()

	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(cfg)); err != nil {
		log.Fatal(err)
	}
}
