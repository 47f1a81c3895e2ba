package sim

// Momentum tuning. Velocity is in pixel units per tick; friction applies
// every tick regardless of dt so decay is deterministic at 60 TPS.
const (
	DragVelocityScale = 0.08  // raw pointer delta → velocity
	DragVelocityMax   = 1.5   // per-axis velocity cap
	Friction          = 0.995 // velocity multiplier per tick while coasting
	VelocityEpsilon   = 1e-3  // below this per axis, velocity snaps to zero

	momentumDamping      = 1.5  // velocity → camera-pixel delta per tick
	momentumWorldDivisor = 20.0 // camera delta → world delta while coasting
	dragWorldDivisor     = 12.0 // camera delta → world delta for drag and autopilot
)

// Velocity is the ship's coasting velocity, an ECS component. Its magnitude
// is monotonically non-increasing under friction absent new drag input.
type Velocity struct {
	X, Y float64
}

// velocityFromDrag converts one raw pointer delta into velocity. The value is
// recomputed from each move event, not accumulated across them.
func velocityFromDrag(delta Vec) Velocity {
	return Velocity{
		X: clamp(delta.X*DragVelocityScale, -DragVelocityMax, DragVelocityMax),
		Y: clamp(delta.Y*DragVelocityScale, -DragVelocityMax, DragVelocityMax),
	}
}

// belowEpsilon reports whether both axes are under the stop threshold.
func (v Velocity) belowEpsilon() bool {
	return absf(v.X) < VelocityEpsilon && absf(v.Y) < VelocityEpsilon
}

// tickMomentum advances one coasting step: decay, propose movement, stop when
// spent. Runs only while Decelerating. A collision veto inside tryMove already
// zeroes velocity and exits the mode, so only the clean stop is handled here.
func (s *Sim) tickMomentum() {
	vel := s.velMap.Get(s.ship)
	vel.X *= Friction
	vel.Y *= Friction

	if vel.belowEpsilon() {
		vel.X = 0
		vel.Y = 0
		s.Mode = ModeIdle
		return
	}

	camDelta := Vec{vel.X * momentumDamping, vel.Y * momentumDamping}
	s.tryMove(camDelta, momentumWorldDivisor)
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
