package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionMoveLeft             // A, Left arrow - shift piece one column left
	ActionMoveRight            // D, Right arrow - shift piece one column right
	ActionRotateCW             // W, Up arrow, X - rotate clockwise
	ActionRotateCCW            // Z - rotate counter-clockwise
	ActionSoftDropStart        // S, Down pressed - start accelerated descent
	ActionSoftDropEnd          // S, Down released - end accelerated descent
	ActionHardDrop             // Space - drop and lock immediately
	ActionHold                 // C - swap current piece with hold slot
	ActionConfirm              // Enter - confirm selection in menu
	ActionBack                 // B, Escape - go back to menu
	ActionRestart              // R key - restart game after game over
	ActionQuit                 // Q, Ctrl+C - exit game/session
	ActionPause                // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionSoftDropStart:
		return "SoftDropStart"
	case ActionSoftDropEnd:
		return "SoftDropEnd"
	case ActionHardDrop:
		return "HardDrop"
	case ActionHold:
		return "Hold"
	case ActionConfirm:
		return "Confirm"
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

// InputFrame represents the input delivered to a single simulation step.
// Actions are kept in arrival order: when a rotate is followed by a hard drop
// within the same frame, the simulation must resolve the rotate first, so a
// set is not enough.
type InputFrame struct {
	// Actions holds the actions triggered this frame, oldest first.
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an action to the frame, preserving arrival order.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Empty returns true if no actions were triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}
