// Package game provides the main loop that drives the viewport.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode: the map is drawn and arrow keys pan.
	StateExplore State = iota
	// StateMenu is the pause menu; the map is hidden until it closes.
	StateMenu
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateMenu:
		return "menu"
	default:
		return "unknown"
	}
}
