package sim

// Mode is the exclusive control state of the ship. Exactly one of Dragging,
// Decelerating and Autopilot may drive position updates on any tick; rotation
// smoothing and the starfield run regardless of mode.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeHolding // press-and-hold sub-state of Dragging, counting toward autopilot
	ModeDecelerating
	ModeAutopilot
)

// String returns a label for HUD and log output.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "dragging"
	case ModeHolding:
		return "holding"
	case ModeDecelerating:
		return "decelerating"
	case ModeAutopilot:
		return "autopilot"
	default:
		return "unknown"
	}
}