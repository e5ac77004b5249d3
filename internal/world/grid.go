package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSizeMismatch is returned when the cell slice does not cover width*height.
var ErrSizeMismatch = errors.New("cell count does not match grid dimensions")

// Grid is an immutable, row-major 2-D array of cell states.
type Grid struct {
	width  int
	height int
	cells  []CellState
}

// NewGrid creates a grid from row-major cells (index = y*width + x).
// The slice is copied; later changes to it do not affect the grid.
func NewGrid(width, height int, cells []CellState) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: got %d cells for %dx%d", ErrSizeMismatch, len(cells), width, height)
	}
	owned := make([]CellState, len(cells))
	copy(owned, cells)
	return &Grid{
		width:  width,
		height: height,
		cells:  owned,
	}, nil
}

// ParseGrid builds a grid from text rows where '#' is solid and any other
// character is open. Short rows are padded with open cells.
func ParseGrid(rows ...string) *Grid {
	width := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}

	cells := make([]CellState, width*len(rows))
	for y, row := range rows {
		for x, ch := range []rune(row) {
			if ch == '#' {
				cells[y*width+x] = Solid
			}
		}
	}

	return &Grid{width: width, height: len(rows), cells: cells}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// TileAt returns the cell at (x, y), or OutOfBounds outside the grid.
func (g *Grid) TileAt(x, y int) CellState {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return OutOfBounds
	}
	return g.cells[y*g.width+x]
}

// Count returns how many cells hold the given state.
func (g *Grid) Count(state CellState) int {
	n := 0
	for _, c := range g.cells {
		if c == state {
			n++
		}
	}
	return n
}

// String renders the grid as text rows, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteRune(g.cells[y*g.width+x].Rune())
		}
		if y < g.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
