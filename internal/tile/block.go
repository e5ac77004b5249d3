// Package tile turns a cell and its eight neighbours into the block of
// glyphs drawn at that cell's screen position.
package tile

// BlockSize is the number of glyph columns and rows drawn per map cell.
const BlockSize = 3

// Transparent marks a block position that leaves existing content untouched.
const Transparent rune = 0

// Block is one cell's glyphs, indexed [dy][dx].
type Block [BlockSize][BlockSize]rune

// Placement is a single glyph at an offset within a cell's block.
type Placement struct {
	DX, DY int
	Glyph  rune
}

// FillBlock returns a block with every position set to glyph.
func FillBlock(glyph rune) Block {
	var b Block
	for y := range b {
		for x := range b[y] {
			b[y][x] = glyph
		}
	}
	return b
}

// Placements appends the block's non-transparent glyphs to dst, column by
// column.
func (b Block) Placements(dst []Placement) []Placement {
	for x := 0; x < BlockSize; x++ {
		for y := 0; y < BlockSize; y++ {
			if b[y][x] != Transparent {
				dst = append(dst, Placement{DX: x, DY: y, Glyph: b[y][x]})
			}
		}
	}
	return dst
}

// Flatten applies placements in order onto an empty block; later placements
// win. Positions never written stay Transparent.
func Flatten(placements []Placement) Block {
	var b Block
	for _, p := range placements {
		b[p.DY][p.DX] = p.Glyph
	}
	return b
}

// String renders the block as rows, with '·' standing in for Transparent.
func (b Block) String() string {
	out := make([]rune, 0, BlockSize*(BlockSize+1))
	for y := range b {
		for _, r := range b[y] {
			if r == Transparent {
				r = '·'
			}
			out = append(out, r)
		}
		if y < BlockSize-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}
