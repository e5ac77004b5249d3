package world

import (
	"errors"
	"testing"
)

func TestTileAtOutOfBounds(t *testing.T) {
	g := ParseGrid(
		"##",
		"#.",
		"..",
	)

	outside := [][2]int{
		{-1, 0}, {0, -1}, {-1, -1},
		{2, 0}, {0, 3}, {2, 3},
		{100, 100}, {-100, 1},
	}
	for _, p := range outside {
		if got := g.TileAt(p[0], p[1]); got != OutOfBounds {
			t.Errorf("TileAt(%d,%d) = %v, want out_of_bounds", p[0], p[1], got)
		}
	}
}

func TestTileAtRowMajor(t *testing.T) {
	cells := []CellState{
		Solid, Open, Open,
		Open, Open, Solid,
	}
	g, err := NewGrid(3, 2, cells)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}

	for i, want := range cells {
		x, y := i%3, i/3
		if got := g.TileAt(x, y); got != want {
			t.Errorf("TileAt(%d,%d) = %v, want %v", x, y, got, want)
		}
	}

	// Grid owns its cells
	cells[0] = Open
	if got := g.TileAt(0, 0); got != Solid {
		t.Errorf("TileAt(0,0) after caller mutation = %v, want solid", got)
	}
}

func TestNewGridSizeMismatch(t *testing.T) {
	_, err := NewGrid(3, 3, make([]CellState, 8))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("NewGrid() error = %v, want ErrSizeMismatch", err)
	}

	if _, err := NewGrid(-1, 2, nil); err == nil {
		t.Error("NewGrid(-1, 2) should fail")
	}
}

func TestParseGrid(t *testing.T) {
	g := ParseGrid(
		"###",
		"#",
	)

	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", g.Width(), g.Height())
	}
	if got := g.TileAt(2, 1); got != Open {
		t.Errorf("padded cell = %v, want open", got)
	}
	if got := g.Count(Solid); got != 4 {
		t.Errorf("Count(Solid) = %d, want 4", got)
	}
	if got, want := g.String(), "###\n#.."; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCellStateString(t *testing.T) {
	tests := []struct {
		state    CellState
		expected string
	}{
		{Open, "open"},
		{Solid, "solid"},
		{OutOfBounds, "out_of_bounds"},
		{CellState(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("CellState(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}
