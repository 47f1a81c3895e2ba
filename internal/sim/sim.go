package sim

import (
	"encoding/json"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/stardrift/stardrift/internal/catalog"
)

// Low-frequency task intervals (at 60 TPS) and remaining tuning.
const (
	proximityInterval = 30  // nearest-point scan every 500ms
	persistInterval   = 120 // position flush every 2s, only while idle

	dragMoveThreshold = 1.0    // pixels of motion that count as a real drag
	cameraWrapLimit   = 5000.0 // camera hygiene bound, world position untouched
	resetTicks        = 30     // camera return animation on reset (500ms)

	// ProximityRange is the world-unit radius of the nearest-point scan.
	ProximityRange = 8.0

	// PointScale converts world units to screen pixels when projecting
	// catalog points around the ship. 100 world units span the barrier
	// diameter exactly.
	PointScale = 12.0

	// pointClickRadius is how close (pixels) a click must land to a
	// projected point to activate it.
	pointClickRadius = 24.0
)

// Store is the opaque key-value persistence port. All failures are recovered
// locally; the simulation never surfaces them.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// AudioPort is the fire-and-forget sound side effect.
type AudioPort interface {
	PlayCollisionSound()
}

// Ports are the external collaborators wired in by the host. Any of them may
// be nil; the simulation degrades to doing nothing for that concern.
type Ports struct {
	Catalog      *catalog.Catalog
	Store        Store
	StoreKey     string
	Audio        AudioPort
	OnPointClick func(id string, p catalog.Point)
}

// Sim owns all simulation state and is the single writer of it. One Tick call
// per frame drives every controller; within one tick at most one movement
// source commits a position change, always barrier-checked first, and the
// rotation smoother and starfield observe the post-commit state.
type Sim struct {
	ECS      *ecs.World
	Mode     Mode
	Ticks    uint64
	Camera   Vec // unbounded pixel pan, proportional to world deltas
	Rotation RotationSmoother
	Notices  Notifier

	// NearestID is the id of the closest catalog point within range,
	// refreshed by the proximity scan. Empty when nothing is near.
	NearestID string

	ship   ecs.Entity
	posMap *ecs.Map[Position]
	velMap *ecs.Map[Velocity]

	pilot        autopilot
	cameraTween  Tween
	collideFlash Flag
	flashToken   uint64
	noticeToken  uint64

	surfaceW, surfaceH int

	holdStart     uint64
	pressConsumed bool

	ports Ports
}

// savedPosition is the persisted JSON shape under the fixed store key.
type savedPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// New creates a simulation. The start position comes from the persistence
// port; a missing or malformed value falls back to the world center.
func New(ports Ports) *Sim {
	w := ecs.NewWorld(16)
	posMap := ecs.NewMap[Position](w)
	velMap := ecs.NewMap[Velocity](w)

	start := loadPosition(ports.Store, ports.StoreKey)
	ship := ecs.NewMap2[Position, Velocity](w).NewEntity(&start, &Velocity{})

	return &Sim{
		ECS:    w,
		Mode:   ModeIdle,
		ship:   ship,
		posMap: posMap,
		velMap: velMap,
		ports:  ports,
	}
}

// loadPosition reads the saved position once at startup. Never fails: any
// problem yields the default center position.
func loadPosition(store Store, key string) Position {
	def := Position{X: DefaultX, Y: DefaultY}
	if store == nil || key == "" {
		return def
	}
	raw, err := store.Get(key)
	if err != nil || raw == "" {
		return def
	}
	var sp savedPosition
	if err := json.Unmarshal([]byte(raw), &sp); err != nil {
		return def
	}
	return Position{
		X: Wrap(sp.X, WorldMin, WorldMax),
		Y: Wrap(sp.Y, WorldMin, WorldMax),
	}
}

// ShipPos returns the canonical wrapped world position.
func (s *Sim) ShipPos() Position {
	return *s.posMap.Get(s.ship)
}

// ShipVelocity returns the current coasting velocity.
func (s *Sim) ShipVelocity() Velocity {
	return *s.velMap.Get(s.ship)
}

// Colliding reports whether the transient collision flash is active.
func (s *Sim) Colliding() bool { return s.collideFlash.On() }

// Tick advances the simulation one frame. f carries the pointer event stream
// and the current surface size; a zero-sized surface is tolerated (movement
// is simply vetoed by the barrier check until it comes back).
func (s *Sim) Tick(f Frame) {
	s.Ticks++
	s.surfaceW, s.surfaceH = f.SurfaceW, f.SurfaceH
	s.pilot.cursor = Vec{X: f.CursorX, Y: f.CursorY}

	modeAtStart := s.Mode

	for _, ev := range f.Events {
		s.handlePointer(ev)
	}

	// Hold gesture completion, checked per tick so progress stays readable.
	if s.Mode == ModeHolding && s.Ticks-s.holdStart >= holdTicks {
		s.engageAutopilot()
	}

	// At most one per-tick movement source, and only if its mode was already
	// driving when the tick began. Drag movement was already applied per move
	// event above; a mode entered mid-tick takes its first step next tick, so
	// the release that starts deceleration applies no friction of its own.
	switch s.Mode {
	case ModeDecelerating:
		if modeAtStart == ModeDecelerating {
			s.tickMomentum()
		}
	case ModeAutopilot:
		if modeAtStart == ModeAutopilot {
			s.tickAutopilot()
		}
	}

	if v, ok := s.cameraTween.Step(); ok {
		s.Camera = v
	}

	s.Rotation.Step()

	// Numeric hygiene on the camera accumulator only. The world position
	// is canonical and is never derived back from this value.
	s.Camera.X = Wrap(s.Camera.X, -cameraWrapLimit, cameraWrapLimit)
	s.Camera.Y = Wrap(s.Camera.Y, -cameraWrapLimit, cameraWrapLimit)

	s.collideFlash.Expire(s.Ticks)
	s.Notices.Expire(s.Ticks)

	if s.Ticks%proximityInterval == 0 {
		s.scanProximity()
	}
	if s.Ticks%persistInterval == 0 {
		s.persistIfIdle()
	}
}

// handlePointer runs one event through the mode state machine.
func (s *Sim) handlePointer(ev PointerEvent) {
	switch ev.Kind {
	case PointerPress:
		s.cameraTween.Cancel()

		if s.Mode == ModeAutopilot {
			// A click while autopiloting toggles it off, nothing more.
			s.disengageAutopilot()
			s.pressConsumed = true
			return
		}

		// Grab the ship: any coasting stops, the hold timer starts.
		vel := s.velMap.Get(s.ship)
		vel.X = 0
		vel.Y = 0
		s.Mode = ModeHolding
		s.holdStart = s.Ticks
		s.pressConsumed = false

	case PointerMove:
		if s.Mode != ModeHolding && s.Mode != ModeDragging {
			return
		}
		delta := Vec{X: ev.DX, Y: ev.DY}
		if s.Mode == ModeHolding {
			if delta.Len() <= dragMoveThreshold {
				return
			}
			// Real movement cancels the hold-to-autopilot countdown.
			s.Mode = ModeDragging
		}
		s.applyDrag(delta)

	case PointerRelease:
		if s.pressConsumed {
			s.pressConsumed = false
			return
		}
		switch s.Mode {
		case ModeHolding:
			// Press and release without movement: a plain click.
			s.Mode = ModeIdle
			s.activatePointAt(Vec{X: ev.X, Y: ev.Y})
		case ModeDragging:
			if s.ShipVelocity().belowEpsilon() {
				s.Mode = ModeIdle
			} else {
				s.Mode = ModeDecelerating
			}
			s.persist()
		}
	}
}

// applyDrag commits one drag movement and refreshes velocity and heading.
// Velocity is recomputed from this event alone, not accumulated.
func (s *Sim) applyDrag(delta Vec) {
	if !s.tryMove(delta, dragWorldDivisor) {
		return
	}

	vel := s.velMap.Get(s.ship)
	*vel = velocityFromDrag(delta)

	// The ship travels opposite to the camera advance.
	s.Rotation.Target = math.Atan2(-delta.Y, -delta.X)*180/math.Pi + 90
}

// tryMove proposes a camera-space delta. The resulting camera point is tested
// against the barrier before anything is committed; on a hit the whole
// candidate is discarded and the repulsion impulse substituted. On a clean
// pass camera and world position move together, camera by the raw delta and
// world by the negated delta scaled down by the divisor.
func (s *Sim) tryMove(camDelta Vec, worldDivisor float64) bool {
	candidate := s.Camera.Add(camDelta)

	col := CheckBarrier(candidate, s.surfaceW, s.surfaceH)
	if col.Hit {
		s.repulse(col)
		return false
	}

	s.cameraTween.Cancel()
	s.Camera = candidate

	pos := s.posMap.Get(s.ship)
	pos.X = Wrap(pos.X-camDelta.X/worldDivisor, WorldMin, WorldMax)
	pos.Y = Wrap(pos.Y-camDelta.Y/worldDivisor, WorldMin, WorldMax)
	return true
}

// PointScreenPos projects a catalog point to surface coordinates, taking the
// shortest wrapped path around the torus. The ship sits at the surface center.
func (s *Sim) PointScreenPos(p catalog.Point) Vec {
	pos := s.ShipPos()
	size := WorldMax - WorldMin
	return Vec{
		X: float64(s.surfaceW)/2 + toroidalDelta(p.X, pos.X, size)*PointScale,
		Y: float64(s.surfaceH)/2 + toroidalDelta(p.Y, pos.Y, size)*PointScale,
	}
}

// activatePointAt fires the point-click callback if the click landed on a
// projected catalog point.
func (s *Sim) activatePointAt(click Vec) {
	if s.ports.Catalog == nil || s.ports.OnPointClick == nil {
		return
	}
	for _, p := range s.ports.Catalog.Points() {
		if s.PointScreenPos(p).Sub(click).Len() <= pointClickRadius {
			s.ports.OnPointClick(p.ID, p)
			return
		}
	}
}

// scanProximity finds the nearest catalog point within range. Ties resolve to
// the first point in catalog order.
func (s *Sim) scanProximity() {
	s.NearestID = ""
	if s.ports.Catalog == nil {
		return
	}
	pos := s.ShipPos()
	best := ProximityRange
	for _, p := range s.ports.Catalog.Points() {
		d := ToroidalDistance(pos, Position{X: p.X, Y: p.Y})
		if d < best {
			best = d
			s.NearestID = p.ID
		}
	}
}

// persistIfIdle flushes the position on the slow timer, but only while no
// input source is actively moving the ship.
func (s *Sim) persistIfIdle() {
	if s.Mode != ModeIdle && s.Mode != ModeDecelerating {
		return
	}
	s.persist()
}

// persist writes the current position through the store port. Write failures
// are ignored; the next flush retries anyway.
func (s *Sim) persist() {
	if s.ports.Store == nil || s.ports.StoreKey == "" {
		return
	}
	pos := s.ShipPos()
	raw, err := json.Marshal(savedPosition{X: pos.X, Y: pos.Y})
	if err != nil {
		return
	}
	_ = s.ports.Store.Set(s.ports.StoreKey, string(raw))
}

// Reset returns the simulation to its initial state: ship at world center,
// no velocity, idle, saved position removed, collision feedback dismissed,
// camera and heading animated back to zero.
func (s *Sim) Reset() {
	pos := s.posMap.Get(s.ship)
	pos.X = Wrap(DefaultX, WorldMin, WorldMax)
	pos.Y = Wrap(DefaultY, WorldMin, WorldMax)

	vel := s.velMap.Get(s.ship)
	vel.X = 0
	vel.Y = 0

	s.Mode = ModeIdle
	s.Rotation.Target = 0
	s.cameraTween.Start(s.Camera, Vec{}, resetTicks)

	// Dismiss by token: only the feedback this sim raised itself goes away.
	s.collideFlash.ClearIf(s.flashToken)
	s.Notices.DismissIf(s.noticeToken)

	if s.ports.Store != nil && s.ports.StoreKey != "" {
		_ = s.ports.Store.Remove(s.ports.StoreKey)
	}
}
