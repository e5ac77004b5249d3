// Package world provides the cell grid the renderer draws from, along with
// the sources that build one.
package world

// CellState classifies a single map cell.
type CellState uint8

const (
	// Open is walkable space; it renders as floor.
	Open CellState = iota
	// Solid is wall.
	Solid
	// OutOfBounds is returned for lookups outside the grid. It is never stored.
	OutOfBounds
)

// String returns a human-readable cell state name.
func (c CellState) String() string {
	switch c {
	case Open:
		return "open"
	case Solid:
		return "solid"
	case OutOfBounds:
		return "out_of_bounds"
	default:
		return "unknown"
	}
}

// Rune returns the character used for the cell in text maps.
func (c CellState) Rune() rune {
	switch c {
	case Solid:
		return '#'
	case Open:
		return '.'
	default:
		return ' '
	}
}
