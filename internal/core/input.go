package core

// Action represents a semantic game action, abstracted from physical input.
// This allows games to work with high-level intents rather than raw keys.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left arrow - held while moving left
	ActionRight            // D, Right arrow - held while moving right
	ActionLaunch           // Space, click - start, launch the ball, continue to next level
	ActionPause            // P, Escape - pause/unpause
	ActionRestart          // R - reset and start again
	ActionNextLevel        // N - continue after a cleared level
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionLaunch:
		return "Launch"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionNextLevel:
		return "NextLevel"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
// Held directions are present in every frame they are held; other actions
// are present only in the frame they were triggered.
type InputFrame struct {
	Actions map[Action]bool

	// Pointer is the pointer x in surface pixels, valid when HasPointer is set.
	Pointer    float64
	HasPointer bool
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

// SetPointer records a pointer position for this frame.
func (f *InputFrame) SetPointer(x float64) {
	f.Pointer = x
	f.HasPointer = true
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
	f.Pointer = 0
	f.HasPointer = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	clone.HasPointer = f.HasPointer
	return clone
}
