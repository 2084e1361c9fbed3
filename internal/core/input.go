package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionFire           // Space - fire one projectile (already edge-filtered by the platform)
	ActionLeft           // A, Left arrow - steer left
	ActionRight          // D, Right arrow - steer right
	ActionUp             // W, Up arrow - steer up
	ActionDown           // S, Down arrow - steer down
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart the session
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFire:
		return "Fire"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes pointer/touch event phases.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// String returns a human-readable name for the pointer phase.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "Down"
	case PointerMove:
		return "Move"
	case PointerUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// PointerEvent is a mouse or touch event already translated into field
// coordinates by the platform. ID separates concurrent touches; the mouse
// always uses ID 0.
type PointerEvent struct {
	ID   int
	Kind PointerKind
	X, Y float64
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer holds pointer/touch events in arrival order.
	Pointer []PointerEvent

	// Elapsed is the real time since the previous tick.
	// Zero means one nominal frame.
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddPointer appends a pointer event to this frame.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointer = append(f.Pointer, ev)
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
	f.Elapsed = 0
}
