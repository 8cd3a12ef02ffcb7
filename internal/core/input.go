package core

// Action represents a semantic control, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, K, Up arrow - move ship up
	ActionDown         // S, J, Down arrow - move ship down
	ActionLeft         // A, H, Left arrow - move ship left
	ActionRight        // D, L, Right arrow - move ship right
	ActionFire         // Space - launch a shot
	ActionQuit         // Q, Esc, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two scheduler ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Controls is the directional sample handed to routines once per tick.
// It is ephemeral: a new value is computed for every scheduler pass.
type Controls struct {
	RowDelta int
	ColDelta int
	Fire     bool
}

// Controls folds the frame's actions into a directional sample.
// Opposite directions pressed in the same frame cancel out.
func (f InputFrame) Controls() Controls {
	var c Controls
	if f.Has(ActionUp) {
		c.RowDelta--
	}
	if f.Has(ActionDown) {
		c.RowDelta++
	}
	if f.Has(ActionLeft) {
		c.ColDelta--
	}
	if f.Has(ActionRight) {
		c.ColDelta++
	}
	c.Fire = f.Has(ActionFire)
	return c
}

// Delta returns the directional part of the controls scaled by speed.
func (c Controls) Delta(speed float64) Position {
	return Position{Row: float64(c.RowDelta) * speed, Col: float64(c.ColDelta) * speed}
}
