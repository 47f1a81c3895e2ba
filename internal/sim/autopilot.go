package sim

import "math"

// Autopilot tuning.
const (
	AutopilotSpeed = 1.8 // camera pixels per tick toward the pointer
	holdTicks      = 150 // 2500ms press-and-hold to engage, at 60 TPS
)

// autopilot steers continuously toward the pointer while engaged. The
// direction is refreshed from every pointer move, so the ship chases the
// cursor rather than a snapshot of it.
type autopilot struct {
	cursor Vec // last known cursor position on the surface
}

// HoldProgress returns how far the press-and-hold gesture has advanced,
// in [0,1]. Zero unless the hold sub-state is active. The hold is checked
// every tick rather than by a single deferred timer so this can drive a
// continuously updating progress ring.
func (s *Sim) HoldProgress() float64 {
	if s.Mode != ModeHolding {
		return 0
	}
	p := float64(s.Ticks-s.holdStart) / float64(holdTicks)
	if p > 1 {
		p = 1
	}
	return p
}

// engageAutopilot switches control to the autopilot. Reached only from a
// completed hold.
func (s *Sim) engageAutopilot() {
	s.Mode = ModeAutopilot
	vel := s.velMap.Get(s.ship)
	vel.X = 0
	vel.Y = 0
}

// disengageAutopilot returns control to idle with no further movement.
func (s *Sim) disengageAutopilot() {
	if s.Mode == ModeAutopilot {
		s.Mode = ModeIdle
	}
}

// tickAutopilot advances one steering step. The candidate movement goes
// through the same barrier gate as every other source; a hit disengages
// and runs the repulsion inside tryMove.
func (s *Sim) tickAutopilot() {
	center := Vec{float64(s.surfaceW) / 2, float64(s.surfaceH) / 2}
	dir := s.pilot.cursor.Sub(center).Normalized()
	if dir == (Vec{}) {
		return
	}

	// Camera advances toward the pointer; the world scrolls the other way.
	camDelta := dir.Scale(AutopilotSpeed)
	if !s.tryMove(camDelta, dragWorldDivisor) {
		s.disengageAutopilot()
		return
	}

	s.Rotation.Target = math.Atan2(-dir.Y, -dir.X)*180/math.Pi + 90
}
