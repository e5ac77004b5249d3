// Package view maps world cells to screen positions at sub-cell scroll
// precision.
package view

import (
	"github.com/samdwyer/shardshell/internal/tile"
)

// N is the glyph block size: one cell spans N columns and N rows, and one
// scroll unit is 1/N of a cell.
const N = tile.BlockSize

// Display is the screen the viewport draws onto.
type Display interface {
	// WriteGlyph puts a glyph at a screen row and column.
	WriteGlyph(row, col int, glyph rune)
	// Extent returns the visible screen size.
	Extent() (rows, cols int)
	HideCursor()
}

// CellRenderer produces the glyph placements for one map cell.
type CellRenderer interface {
	RenderCell(src tile.Source, x, y int) []tile.Placement
}

// Viewport is a scrollable window onto the map. The scroll position is in
// sub-cell units; the size is in whole cells.
type Viewport struct {
	scrollX, scrollY int
	width, height    int

	cells  CellRenderer
	marker rune
}

// NewViewport creates a viewport of width x height cells at scroll (0, 0).
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int, cells CellRenderer, marker rune) *Viewport {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Viewport{
		width:  width,
		height: height,
		cells:  cells,
		marker: marker,
	}
}

// Size returns the viewport size in cells.
func (v *Viewport) Size() (width, height int) {
	return v.width, v.height
}

// Scroll returns the scroll position in sub-cell units.
func (v *Viewport) Scroll() (x, y int) {
	return v.scrollX, v.scrollY
}

// SubCell returns the scroll offset within the current cell, always in [0, N).
func (v *Viewport) SubCell() (x, y int) {
	return floorMod(v.scrollX, N), floorMod(v.scrollY, N)
}

// MoveBy pans the viewport by dx, dy sub-cell units. Panning past the map
// edge is allowed; those cells render as void.
func (v *Viewport) MoveBy(dx, dy int) {
	v.scrollX += dx
	v.scrollY += dy
}

// CenterOn scrolls so the middle of cell (x, y) sits under the centre marker.
func (v *Viewport) CenterOn(x, y int) {
	v.scrollX = x*N + N/2 - v.width*N/2
	v.scrollY = y*N + N/2 - v.height*N/2
}

// CenterCell returns the map cell under the centre marker.
func (v *Viewport) CenterCell() (x, y int) {
	return floorDiv(v.scrollX+v.width*N/2, N), floorDiv(v.scrollY+v.height*N/2, N)
}

// Origin returns the screen position of the viewport's top-left glyph for a
// display of the given size.
func (v *Viewport) Origin(rows, cols int) (row, col int) {
	return rows/2 - v.height*N/2, cols/2 - v.width*N/2
}

// Render draws one frame of src onto d: the visible cells, then the marker
// at the viewport centre. The outermost glyph row and column on each side
// are left untouched; they absorb the partial cells of a sub-cell scroll.
func (v *Viewport) Render(src tile.Source, d Display) {
	subX, subY := v.SubCell()
	cellX, cellY := floorDiv(v.scrollX, N), floorDiv(v.scrollY, N)

	rows, cols := d.Extent()
	originRow, originCol := v.Origin(rows, cols)
	maxCol, maxRow := v.width*N, v.height*N

	for cx := 0; cx <= v.width+1; cx++ {
		for cy := 0; cy <= v.height+1; cy++ {
			for _, p := range v.cells.RenderCell(src, cellX+cx, cellY+cy) {
				col := cx*N + p.DX - subX
				row := cy*N + p.DY - subY
				if col <= 0 || row <= 0 || col >= maxCol || row >= maxRow {
					continue
				}
				d.WriteGlyph(originRow+row, originCol+col, p.Glyph)
			}
		}
	}

	d.WriteGlyph(originRow+maxRow/2, originCol+maxCol/2, v.marker)
	d.HideCursor()
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns a mod b in [0, b) for positive b.
func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
