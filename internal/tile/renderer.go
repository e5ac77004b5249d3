package tile

import (
	"github.com/samdwyer/shardshell/internal/theme"
	"github.com/samdwyer/shardshell/internal/world"
)

// Source is anything that answers cell lookups, including out-of-range ones.
type Source interface {
	TileAt(x, y int) world.CellState
}

// Edge block indexes, in overlay order.
const (
	edgeNorth = iota
	edgeSouth
	edgeEast
	edgeWest
)

// Corner pattern values built from the three neighbour bits of a quadrant.
const (
	patternOuter      = 4 // only the diagonal is open
	patternInner      = 3 // both axis neighbours open
	patternInnerOpen  = 7 // both axis neighbours and the diagonal open
	cornerSubPosition = BlockSize - 1
)

// Renderer selects glyph blocks for cells. It holds only the constant
// templates built from a theme, so one Renderer serves any number of grids.
type Renderer struct {
	glyphs theme.Glyphs
	solid  Block
	floor  Block
	void   Block
	edges  [4]Block
}

// NewRenderer builds the templates for the given theme.
func NewRenderer(glyphs theme.Glyphs) *Renderer {
	r := &Renderer{
		glyphs: glyphs,
		solid:  FillBlock(glyphs.Solid),
		floor:  FillBlock(glyphs.Floor),
		void:   FillBlock(glyphs.Void),
	}
	for i := 0; i < BlockSize; i++ {
		r.edges[edgeNorth][0][i] = glyphs.Horizontal
		r.edges[edgeSouth][BlockSize-1][i] = glyphs.Horizontal
		r.edges[edgeEast][i][BlockSize-1] = glyphs.Vertical
		r.edges[edgeWest][i][0] = glyphs.Vertical
	}
	return r
}

// Glyphs returns the theme the renderer was built with.
func (r *Renderer) Glyphs() theme.Glyphs {
	return r.glyphs
}

// RenderCell returns the placements for the cell at (x, y). Placements are
// ordered so that drawing them in sequence yields the final block.
func (r *Renderer) RenderCell(src Source, x, y int) []Placement {
	switch src.TileAt(x, y) {
	case world.Solid:
		return r.renderSolid(src, x, y)
	case world.Open:
		return r.floor.Placements(make([]Placement, 0, BlockSize*BlockSize))
	default:
		return r.void.Placements(make([]Placement, 0, BlockSize*BlockSize))
	}
}

func (r *Renderer) renderSolid(src Source, x, y int) []Placement {
	out := make([]Placement, 0, BlockSize*BlockSize*2)
	out = r.solid.Placements(out)

	neighbours := [4][2]int{
		edgeNorth: {0, -1},
		edgeSouth: {0, 1},
		edgeEast:  {1, 0},
		edgeWest:  {-1, 0},
	}
	for edge, d := range neighbours {
		if src.TileAt(x+d[0], y+d[1]) == world.Open {
			out = r.edges[edge].Placements(out)
		}
	}

	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			xs, ys := 2*a-1, 2*b-1

			pattern := 0
			if src.TileAt(x+xs, y) == world.Open {
				pattern |= 1
			}
			if src.TileAt(x, y+ys) == world.Open {
				pattern |= 2
			}
			if src.TileAt(x+xs, y+ys) == world.Open {
				pattern |= 4
			}

			var glyph rune
			switch pattern {
			case patternOuter:
				glyph = r.glyphs.Corners[1-b][1-a]
			case patternInner, patternInnerOpen:
				glyph = r.glyphs.Corners[b][a]
			default:
				continue
			}
			out = append(out, Placement{
				DX:    a * cornerSubPosition,
				DY:    b * cornerSubPosition,
				Glyph: glyph,
			})
		}
	}

	return out
}
