package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/shardshell/internal/view"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestExploreIntent(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Intent
	}{
		{"left", key(tcell.KeyLeft), Intent{ActionPan, -1, 0}},
		{"right", key(tcell.KeyRight), Intent{ActionPan, 1, 0}},
		{"up", key(tcell.KeyUp), Intent{ActionPan, 0, -1}},
		{"down", key(tcell.KeyDown), Intent{ActionPan, 0, 1}},
		{"shift left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), Intent{ActionPan, -view.N, 0}},
		{"shift down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModShift), Intent{ActionPan, 0, view.N}},
		{"h", runeKey('h'), Intent{ActionPan, -1, 0}},
		{"j", runeKey('j'), Intent{ActionPan, 0, 1}},
		{"K", runeKey('K'), Intent{ActionPan, 0, -view.N}},
		{"L", runeKey('L'), Intent{ActionPan, view.N, 0}},
		{"f1", key(tcell.KeyF1), Intent{Action: ActionMenu}},
		{"escape", key(tcell.KeyEscape), Intent{Action: ActionMenu}},
		{"q does nothing outside the menu", runeKey('q'), Intent{}},
		{"other", key(tcell.KeyTab), Intent{}},
	}

	for _, tt := range tests {
		if got := ExploreIntent(tt.ev); got != tt.want {
			t.Errorf("%s: ExploreIntent() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestMenuIntent(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"q", runeKey('q'), ActionQuit},
		{"Q", runeKey('Q'), ActionQuit},
		{"f1", key(tcell.KeyF1), ActionMenu},
		{"escape", key(tcell.KeyEscape), ActionMenu},
		{"arrows are ignored", key(tcell.KeyLeft), ActionNone},
	}

	for _, tt := range tests {
		if got := MenuIntent(tt.ev).Action; got != tt.want {
			t.Errorf("%s: MenuIntent() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateExplore, "explore"},
		{StateMenu, "menu"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestActionString(t *testing.T) {
	if got := ActionPan.String(); got != "pan" {
		t.Errorf("ActionPan.String() = %q, want %q", got, "pan")
	}
	if got := Action(42).String(); got != "unknown" {
		t.Errorf("Action(42).String() = %q, want %q", got, "unknown")
	}
}
