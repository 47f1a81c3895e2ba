package sim

import "math"

// rotationEase is the per-tick convergence factor toward the target heading.
const rotationEase = 0.15

// RotationSmoother eases the ship's heading toward whatever the last movement
// source set as target. It runs every tick, independent of mode, always along
// the shortest arc.
type RotationSmoother struct {
	Current float64 // degrees
	Target  float64 // degrees
}

// Step advances the heading one tick.
func (r *RotationSmoother) Step() {
	cur := normalizeDeg(r.Current)
	tgt := normalizeDeg(r.Target)

	diff := tgt - cur
	if diff > 180 {
		diff -= 360
	} else if diff < -180 {
		diff += 360
	}

	r.Current = cur + diff*rotationEase
}

// normalizeDeg maps an angle into [0, 360).
func normalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
