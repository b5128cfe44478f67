package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tsunami-run/internal/core"
)

// lookStep is the look impulse of a single h/l/k/j press, before the
// player's look sensitivity is applied.
const lookStep = 5

// KeyMap holds the key bindings of the game screen. It implements
// help.KeyMap so the help line stays in sync with the bindings.
type KeyMap struct {
	Forward    key.Binding
	Backward   key.Binding
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	LookLeft   key.Binding
	LookRight  key.Binding
	LookUp     key.Binding
	LookDown   key.Binding
	Start      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Forward:    key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/↑", "forward")),
		Backward:   key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/↓", "back")),
		Left:       key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/←", "left")),
		Right:      key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/→", "right")),
		Jump:       key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "jump")),
		LookLeft:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "turn left")),
		LookRight:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "turn right")),
		LookUp:     key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "look up")),
		LookDown:   key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "look down")),
		Start:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Pause:      key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.Left, k.Right, k.Jump, k.Pause, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Backward, k.Left, k.Right, k.Jump},
		{k.LookLeft, k.LookRight, k.LookUp, k.LookDown},
		{k.Start, k.Pause, k.Restart},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// MapCommand translates a key to a session-level action.
func (k KeyMap) MapCommand(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// ControlState turns discrete key presses into continuous controls.
// Terminals report presses but never releases, so a movement key counts as
// held for a short window after each press; auto-repeat keeps it alive.
type ControlState struct {
	hold float32

	forward, backward, left, right float32 // Remaining hold, seconds
	jump                           bool    // Pending press, reported once
	lookX, lookY                   float32 // Pending look impulses
}

// NewControlState creates a state with the given hold window in seconds.
func NewControlState(hold float32) *ControlState {
	return &ControlState{hold: hold}
}

// Press records a key press. It returns false for keys that are not
// movement or look controls.
func (c *ControlState) Press(k KeyMap, msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, k.Forward):
		c.forward, c.backward = c.hold, 0
	case key.Matches(msg, k.Backward):
		c.backward, c.forward = c.hold, 0
	case key.Matches(msg, k.Left):
		c.left, c.right = c.hold, 0
	case key.Matches(msg, k.Right):
		c.right, c.left = c.hold, 0
	case key.Matches(msg, k.Jump):
		c.jump = true
	case key.Matches(msg, k.LookLeft):
		c.lookX -= lookStep
	case key.Matches(msg, k.LookRight):
		c.lookX += lookStep
	case key.Matches(msg, k.LookUp):
		c.lookY -= lookStep
	case key.Matches(msg, k.LookDown):
		c.lookY += lookStep
	default:
		return false
	}
	return true
}

// Controls returns the controls for a frame of length dt and ages the held
// keys. Jump and look impulses are reported once.
func (c *ControlState) Controls(dt float32) core.Controls {
	out := core.Controls{
		Forward:  c.forward > 0,
		Backward: c.backward > 0,
		Left:     c.left > 0,
		Right:    c.right > 0,
		Jump:     c.jump,
		LookX:    c.lookX,
		LookY:    c.lookY,
	}

	c.forward = decay(c.forward, dt)
	c.backward = decay(c.backward, dt)
	c.left = decay(c.left, dt)
	c.right = decay(c.right, dt)
	c.jump = false
	c.lookX, c.lookY = 0, 0
	return out
}

// Reset releases every key.
func (c *ControlState) Reset() {
	*c = ControlState{hold: c.hold}
}

func decay(v, dt float32) float32 {
	if v -= dt; v < 0 {
		return 0
	}
	return v
}
