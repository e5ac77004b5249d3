// Package mapload builds cell grids from map images and text files.
package mapload

import (
	"fmt"
	"image/color"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/shardshell/internal/world"
)

// DefaultWallColor marks wall pixels when no colors are configured.
const DefaultWallColor = "#FF0000"

// rgb is a pixel color with alpha dropped.
type rgb struct {
	r, g, b uint8
}

// Classifier maps pixel colors to cell states: wall colors become Solid,
// everything else Open.
type Classifier struct {
	walls mapset.Set[rgb]
}

// NewClassifier creates a classifier for the given hex wall colors.
// With no colors it uses DefaultWallColor.
func NewClassifier(wallColors ...string) (*Classifier, error) {
	if len(wallColors) == 0 {
		wallColors = []string{DefaultWallColor}
	}

	walls := mapset.New[rgb]()
	for _, hex := range wallColors {
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("wall color: %w", err)
		}
		walls.Put(rgb{c.R, c.G, c.B})
	}
	return &Classifier{walls: walls}, nil
}

// Classify returns the cell state for a pixel color.
func (c *Classifier) Classify(col color.Color) world.CellState {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	if c.walls.Has(rgb{n.R, n.G, n.B}) {
		return world.Solid
	}
	return world.Open
}

// WallColors returns the number of distinct wall colors.
func (c *Classifier) WallColors() int {
	return c.walls.Size()
}
