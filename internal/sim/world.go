package sim

import "math"

// World domain. Each axis wraps at WorldMax, so opposite edges are adjacent
// and the map has no border the ship can reach.
const (
	WorldMin = 0.0
	WorldMax = 100.0

	// DefaultX/Y is where the ship starts when no saved position exists.
	DefaultX = 50.0
	DefaultY = 50.0
)

// Position is the ship's canonical wrapped world position in percent-of-world
// units. It is an ECS component; always assign through Wrap, never directly.
type Position struct {
	X, Y float64
}

// Wrap maps v into [min, max). Uses modulo arithmetic so arbitrarily large
// inputs terminate in constant time. A degenerate range returns min.
func Wrap(v, min, max float64) float64 {
	size := max - min
	if size <= 0 {
		return min
	}
	r := math.Mod(v-min, size)
	if r < 0 {
		r += size
	}
	return min + r
}

// ToroidalDistance returns the shortest distance between two world points,
// taking wrap-around into account on both axes. Never exceeds the plain
// Euclidean distance.
func ToroidalDistance(a, b Position) float64 {
	dx := axisDistance(a.X, b.X, WorldMax-WorldMin)
	dy := axisDistance(a.Y, b.Y, WorldMax-WorldMin)
	return math.Hypot(dx, dy)
}

// axisDistance is the shorter of the direct and the wrapped span on one axis.
func axisDistance(a, b, size float64) float64 {
	d := math.Abs(a - b)
	if size-d < d {
		return size - d
	}
	return d
}

// toroidalDelta computes the shortest signed delta from 'from' to 'to' on a
// wrapping axis. Used to project catalog points around the ship.
func toroidalDelta(to, from, size float64) float64 {
	d := to - from
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}
