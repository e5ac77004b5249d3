package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/shardshell/internal/view"
)

// Action is what an input intent asks the loop to do.
type Action int

const (
	ActionNone Action = iota
	ActionPan
	ActionMenu
	ActionQuit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionPan:
		return "pan"
	case ActionMenu:
		return "menu"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent is a decoded key press. DX and DY are in sub-cell units and only
// set for ActionPan.
type Intent struct {
	Action Action
	DX, DY int
}

func pan(dx, dy, step int) Intent {
	return Intent{Action: ActionPan, DX: dx * step, DY: dy * step}
}

// ExploreIntent decodes a key press while the map is shown. Arrows and
// h/j/k/l pan one sub-cell; with Shift (or H/J/K/L) they pan a whole cell.
func ExploreIntent(ev *tcell.EventKey) Intent {
	step := 1
	if ev.Modifiers()&tcell.ModShift != 0 {
		step = view.N
	}

	switch ev.Key() {
	case tcell.KeyCtrlC:
		return Intent{Action: ActionQuit}
	case tcell.KeyF1, tcell.KeyEscape:
		return Intent{Action: ActionMenu}
	case tcell.KeyLeft:
		return pan(-1, 0, step)
	case tcell.KeyRight:
		return pan(1, 0, step)
	case tcell.KeyUp:
		return pan(0, -1, step)
	case tcell.KeyDown:
		return pan(0, 1, step)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			return pan(-1, 0, 1)
		case 'l':
			return pan(1, 0, 1)
		case 'k':
			return pan(0, -1, 1)
		case 'j':
			return pan(0, 1, 1)
		case 'H':
			return pan(-1, 0, view.N)
		case 'L':
			return pan(1, 0, view.N)
		case 'K':
			return pan(0, -1, view.N)
		case 'J':
			return pan(0, 1, view.N)
		}
	}
	return Intent{}
}

// MenuIntent decodes a key press while the menu is open. ActionMenu means
// close the menu.
func MenuIntent(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return Intent{Action: ActionQuit}
	case tcell.KeyF1, tcell.KeyEscape:
		return Intent{Action: ActionMenu}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return Intent{Action: ActionQuit}
		}
	}
	return Intent{}
}
