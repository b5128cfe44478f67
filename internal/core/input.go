package core

// Action is a session-level command, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Enter - leave the title screen
	ActionPause          // P, Esc - pause/unpause
	ActionRestart        // R - full reset after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Controls is the per-step control structure produced by an input adapter.
// Look deltas are already scaled by the adapter; the simulation applies its
// own sensitivity on top.
type Controls struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Jump     bool
	LookX    float32
	LookY    float32
}

// Moving reports whether any directional flag is set.
func (c Controls) Moving() bool {
	return c.Forward || c.Backward || c.Left || c.Right
}
