package core

// Action is a semantic input, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move cursor up
	ActionDown           // S, J, Down arrow - move cursor down
	ActionLeft           // A, H, Left arrow - move cursor left
	ActionRight          // D, L, Right arrow - move cursor right
	ActionConfirm        // Enter, Space - click at the cursor
	ActionSlot1          // 1 - pick the first toolbar slot
	ActionSlot2          // 2 - pick the second toolbar slot
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
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
	case ActionConfirm:
		return "Confirm"
	case ActionSlot1:
		return "Slot1"
	case ActionSlot2:
		return "Slot2"
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

// Click is a pointer press in screen cell coordinates.
type Click struct {
	X, Y int
}

// InputFrame collects everything the player did between two ticks.
// Clicks keep arrival order; they are applied before the tick advances.
type InputFrame struct {
	Actions map[Action]bool
	Clicks  []Click
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

// Click queues a pointer press at (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y})
}

// Empty reports whether nothing was recorded.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Clicks) == 0
}

// Clear resets all actions and clicks for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}
