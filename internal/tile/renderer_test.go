package tile

import (
	"testing"

	"github.com/samdwyer/shardshell/internal/theme"
	"github.com/samdwyer/shardshell/internal/world"
)

func newTestRenderer() *Renderer {
	return NewRenderer(theme.Default())
}

// block builds an expected block from three rows of glyphs.
func block(rows ...string) Block {
	var b Block
	for y, row := range rows {
		for x, r := range []rune(row) {
			b[y][x] = r
		}
	}
	return b
}

func isCorner(r rune, g theme.Glyphs) bool {
	for _, row := range g.Corners {
		for _, c := range row {
			if r == c {
				return true
			}
		}
	}
	return false
}

func TestRenderCellSolidBlocks(t *testing.T) {
	r := newTestRenderer()

	tests := []struct {
		name string
		grid []string
		want Block
	}{
		{
			name: "isolated wall",
			grid: []string{"###", "###", "###"},
			want: block("∷∷∷", "∷∷∷", "∷∷∷"),
		},
		{
			name: "open to the north",
			grid: []string{"#.#", "###", "###"},
			want: block("───", "∷∷∷", "∷∷∷"),
		},
		{
			name: "open to the south",
			grid: []string{"###", "###", "#.#"},
			want: block("∷∷∷", "∷∷∷", "───"),
		},
		{
			name: "open to the east and west",
			grid: []string{"###", ".#.", "###"},
			want: block("│∷│", "│∷│", "│∷│"),
		},
		{
			name: "inner corner north-east",
			grid: []string{"#.#", "##.", "###"},
			want: block("──╮", "∷∷│", "∷∷│"),
		},
		{
			name: "outer corner south-west",
			grid: []string{"###", "###", ".##"},
			want: block("∷∷∷", "∷∷∷", "╮∷∷"),
		},
		{
			name: "outer corner north-east",
			grid: []string{"##.", "###", "###"},
			want: block("∷∷╰", "∷∷∷", "∷∷∷"),
		},
		{
			name: "pillar in open space",
			grid: []string{"...", ".#.", "..."},
			want: block("╭─╮", "│∷│", "╰─╯"),
		},
		{
			name: "west side with open diagonal",
			grid: []string{".##", ".##", "###"},
			want: block("│∷∷", "│∷∷", "│∷∷"),
		},
	}

	for _, tt := range tests {
		g := world.ParseGrid(tt.grid...)
		got := Flatten(r.RenderCell(g, 1, 1))
		if got != tt.want {
			t.Errorf("%s: RenderCell() =\n%s\nwant\n%s", tt.name, got, tt.want)
		}
	}
}

func TestRenderCellIsolatedWallHasOnlyFill(t *testing.T) {
	r := newTestRenderer()
	g := world.ParseGrid("###", "###", "###")

	got := r.RenderCell(g, 1, 1)
	if len(got) != BlockSize*BlockSize {
		t.Fatalf("len(RenderCell()) = %d, want %d", len(got), BlockSize*BlockSize)
	}
	for _, p := range got {
		if p.Glyph != '∷' {
			t.Errorf("placement %+v is not the solid glyph", p)
		}
	}
}

func TestRenderCellSingleEdgeHasNoCorners(t *testing.T) {
	r := newTestRenderer()
	g := world.ParseGrid("#.#", "###", "###")

	got := r.RenderCell(g, 1, 1)
	if len(got) != BlockSize*BlockSize+BlockSize {
		t.Errorf("len(RenderCell()) = %d, want fill plus one edge", len(got))
	}
	for _, p := range got {
		if isCorner(p.Glyph, r.Glyphs()) {
			t.Errorf("unexpected corner placement %+v", p)
		}
	}
}

func TestRenderCellInnerCornerQuadrant(t *testing.T) {
	r := newTestRenderer()
	g := world.ParseGrid("#.#", "##.", "###")

	got := r.RenderCell(g, 1, 1)
	last := got[len(got)-1]
	want := Placement{DX: 2, DY: 0, Glyph: r.Glyphs().Corners[0][1]}
	if last != want {
		t.Errorf("last placement = %+v, want %+v", last, want)
	}

	corners := 0
	for _, p := range got {
		if isCorner(p.Glyph, r.Glyphs()) {
			corners++
		}
	}
	if corners != 1 {
		t.Errorf("corner placements = %d, want 1", corners)
	}
}

func TestRenderCellOuterCornerUsesMirroredQuadrant(t *testing.T) {
	r := newTestRenderer()
	g := world.ParseGrid("###", "###", ".##")

	got := r.RenderCell(g, 1, 1)
	last := got[len(got)-1]
	want := Placement{DX: 0, DY: 2, Glyph: r.Glyphs().Corners[0][1]}
	if last != want {
		t.Errorf("last placement = %+v, want %+v", last, want)
	}
}

func TestRenderCellBaseLayerComesFirst(t *testing.T) {
	r := newTestRenderer()
	g := world.ParseGrid("...", ".#.", "...")

	got := r.RenderCell(g, 1, 1)
	for i := 0; i < BlockSize*BlockSize; i++ {
		if got[i].Glyph != '∷' {
			t.Fatalf("placement %d = %+v, want solid fill first", i, got[i])
		}
	}
}

func TestRenderCellOutOfBoundsNeighboursAreNotOpen(t *testing.T) {
	r := newTestRenderer()
	g := world.ParseGrid("#")

	got := Flatten(r.RenderCell(g, 0, 0))
	if want := FillBlock('∷'); got != want {
		t.Errorf("RenderCell() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderCellOpenAndVoid(t *testing.T) {
	r := newTestRenderer()
	g := world.ParseGrid("#.", "##")

	floor := r.RenderCell(g, 1, 0)
	if len(floor) != BlockSize*BlockSize {
		t.Errorf("len(floor) = %d, want full block", len(floor))
	}
	if got, want := Flatten(floor), FillBlock(' '); got != want {
		t.Errorf("floor block =\n%s\nwant\n%s", got, want)
	}

	void := r.RenderCell(g, -3, 7)
	if got, want := Flatten(void), FillBlock('≋'); got != want {
		t.Errorf("void block =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderCellDependsOnlyOnNeighbourhood(t *testing.T) {
	r := newTestRenderer()
	small := world.ParseGrid(
		"#.#",
		"##.",
		"###",
	)
	large := world.ParseGrid(
		"......",
		"..#.#.",
		"..##..",
		"..###.",
		"......",
	)

	a := Flatten(r.RenderCell(small, 1, 1))
	b := Flatten(r.RenderCell(large, 3, 2))
	if a != b {
		t.Errorf("same neighbourhood rendered differently:\n%s\nvs\n%s", a, b)
	}
}

func TestBlockPlacementsSkipTransparent(t *testing.T) {
	var b Block
	b[1][2] = 'x'

	got := b.Placements(nil)
	want := []Placement{{DX: 2, DY: 1, Glyph: 'x'}}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("Placements() = %+v, want %+v", got, want)
	}
}
