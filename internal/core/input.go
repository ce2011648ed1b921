package core

// Action represents a semantic scene action, abstracted from physical key presses.
type Action int

const (
	ActionNone            Action = iota
	ActionPause                  // P, Space - pause/unpause the simulation
	ActionNextWeather            // N, Tab - switch to the next weather
	ActionToggleLightning        // L - start/stop thunderstorm lightning
	ActionRestart                // R - reseed and rebuild the current weather
	ActionBack                   // B, Escape - go back to the menu
	ActionQuit                   // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionNextWeather:
		return "NextWeather"
	case ActionToggleLightning:
		return "ToggleLightning"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the actions triggered during one simulation tick.
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
