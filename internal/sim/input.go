package sim

// PointerKind identifies a pointer event.
type PointerKind uint8

const (
	PointerPress PointerKind = iota
	PointerMove
	PointerRelease
)

// PointerEvent is one host pointer event. The host wires real mouse or touch
// input to this stream; the core never talks to the input device itself.
// DX/DY are the motion since the previous event, X/Y the surface position.
type PointerEvent struct {
	Kind   PointerKind
	DX, DY float64
	X, Y   float64
}

// Frame is everything the host feeds the simulation for one tick: the pointer
// event stream since the last tick, the current cursor position, and the
// render surface size (which may be zero while the surface is absent).
type Frame struct {
	Events             []PointerEvent
	CursorX, CursorY   float64
	SurfaceW, SurfaceH int
}
