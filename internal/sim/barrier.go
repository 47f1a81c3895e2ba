package sim

import "math"

// Barrier geometry. The barrier is a circle around the world origin in camera
// space; only the thin annulus registers as a hit, so a point far outside the
// ring is free space.
const (
	BarrierRadius = 1200.0 // contact point lands on this circle
	barrierInner  = 1190.0 // annulus lower bound, exclusive
	barrierOuter  = 1220.0 // annulus upper bound, inclusive

	repulseDistance   = 15.0 // camera recoil in pixels
	repulseTicks      = 18   // recoil tween length (300ms at 60 TPS)
	collideFlashTicks = 12   // transient collide tint (200ms)
	collideNoticeTick = 240  // collision banner lifetime (4s)
)

// Collision is the result of a barrier test.
type Collision struct {
	Hit      bool
	HasPoint bool
	Point    Vec // screen-space contact point, valid only when HasPoint
}

// CheckBarrier tests a proposed camera offset against the barrier annulus.
// surfaceW/H are the render surface dimensions; the contact point is placed
// relative to the surface center.
//
// When the surface is unavailable (zero-sized) a hit is still reported, with
// no contact point. That blocks movement without providing a repulsion
// vector. Upstream behaved this way and downstream copes with it, so the
// polarity is kept as-is rather than silently flipped.
func CheckBarrier(candidate Vec, surfaceW, surfaceH int) Collision {
	if surfaceW <= 0 || surfaceH <= 0 {
		return Collision{Hit: true}
	}

	dist := candidate.Len()
	if dist <= barrierInner || dist > barrierOuter {
		return Collision{}
	}

	theta := math.Atan2(candidate.Y, candidate.X)
	center := Vec{float64(surfaceW) / 2, float64(surfaceH) / 2}
	point := Vec{
		X: center.X + math.Cos(theta)*BarrierRadius,
		Y: center.Y + math.Sin(theta)*BarrierRadius,
	}
	return Collision{Hit: true, HasPoint: true, Point: point}
}

// repulse applies the collision response: kill all momentum, exit whatever
// mode was driving, then push the camera back along the contact normal.
// The world position correction is applied immediately while the camera
// recoil is animated over the tween.
func (s *Sim) repulse(col Collision) {
	vel := s.velMap.Get(s.ship)
	vel.X = 0
	vel.Y = 0
	if s.Mode == ModeDecelerating || s.Mode == ModeAutopilot {
		s.Mode = ModeIdle
	}

	if !col.HasPoint {
		return
	}

	center := Vec{float64(s.surfaceW) / 2, float64(s.surfaceH) / 2}
	dir := col.Point.Sub(center).Normalized()
	if dir == (Vec{}) {
		return
	}

	s.cameraTween.Start(s.Camera, s.Camera.Sub(dir.Scale(repulseDistance)), repulseTicks)

	pos := s.posMap.Get(s.ship)
	pos.X = Wrap(pos.X+dir.X*repulseDistance/dragWorldDivisor, WorldMin, WorldMax)
	pos.Y = Wrap(pos.Y+dir.Y*repulseDistance/dragWorldDivisor, WorldMin, WorldMax)

	s.flashToken = s.collideFlash.Set(s.Ticks + collideFlashTicks)
	s.noticeToken = s.Notices.Post("Barrier impact. Course arrested.", s.Ticks+collideNoticeTick)
	if s.ports.Audio != nil {
		s.ports.Audio.PlayCollisionSound()
	}
}
