package sim

// Tween interpolates a Vec from one value to another over a fixed number of
// ticks with ease-out pacing. The scheduler steps it; values themselves carry
// no animation machinery.
type Tween struct {
	from, to Vec
	length   int
	elapsed  int
	active   bool
}

// Start begins a new interpolation, replacing any in-flight one.
func (t *Tween) Start(from, to Vec, ticks int) {
	if ticks <= 0 {
		ticks = 1
	}
	t.from = from
	t.to = to
	t.length = ticks
	t.elapsed = 0
	t.active = true
}

// Cancel stops the tween where it is. The owner keeps its current value.
func (t *Tween) Cancel() { t.active = false }

// Active reports whether the tween is still running.
func (t *Tween) Active() bool { return t.active }

// Step advances one tick and returns the interpolated value. The second
// return is false once the tween has finished (the final value is returned
// exactly once with done=true semantics: ok stays true on the finishing step).
func (t *Tween) Step() (Vec, bool) {
	if !t.active {
		return Vec{}, false
	}
	t.elapsed++
	if t.elapsed >= t.length {
		t.active = false
		return t.to, true
	}
	p := float64(t.elapsed) / float64(t.length)
	e := easeOut(p)
	return Vec{
		X: t.from.X + (t.to.X-t.from.X)*e,
		Y: t.from.Y + (t.to.Y-t.from.Y)*e,
	}, true
}

// easeOut is a cubic ease-out curve: fast start, gentle settle.
func easeOut(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}
