package theme

import (
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// DefaultID is the theme used when none is configured.
const DefaultID = "rounded"

// Def defines a glyph theme loaded from JSON. Every glyph is a single
// character that occupies one terminal column.
type Def struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Solid      string       `json:"solid"`      // Wall interior
	Horizontal string       `json:"horizontal"` // North/south wall edge
	Vertical   string       `json:"vertical"`   // East/west wall edge
	Floor      string       `json:"floor"`      // Open cells
	Void       string       `json:"void"`       // Cells outside the map
	Marker     string       `json:"marker"`     // Viewer position
	Corners    [2][2]string `json:"corners"`    // [top|bottom][left|right]
}

// Glyphs is a validated theme resolved to runes.
type Glyphs struct {
	Solid      rune
	Horizontal rune
	Vertical   rune
	Floor      rune
	Void       rune
	Marker     rune
	// Corners is indexed [row][col]: row 0 is the top pair, col 0 the left.
	Corners [2][2]rune
}

// narrow measures glyphs the way a non-CJK terminal does.
var narrow = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Glyphs validates the definition and resolves every field to a rune.
func (d *Def) Glyphs() (Glyphs, error) {
	var g Glyphs
	fields := []struct {
		name string
		src  string
		dst  *rune
	}{
		{"solid", d.Solid, &g.Solid},
		{"horizontal", d.Horizontal, &g.Horizontal},
		{"vertical", d.Vertical, &g.Vertical},
		{"floor", d.Floor, &g.Floor},
		{"void", d.Void, &g.Void},
		{"marker", d.Marker, &g.Marker},
		{"corner top-left", d.Corners[0][0], &g.Corners[0][0]},
		{"corner top-right", d.Corners[0][1], &g.Corners[0][1]},
		{"corner bottom-left", d.Corners[1][0], &g.Corners[1][0]},
		{"corner bottom-right", d.Corners[1][1], &g.Corners[1][1]},
	}

	for _, f := range fields {
		r, err := parseGlyph(f.src)
		if err != nil {
			return Glyphs{}, fmt.Errorf("theme %q: %s glyph: %w", d.ID, f.name, err)
		}
		*f.dst = r
	}
	return g, nil
}

func parseGlyph(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%q must be exactly one character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if w := narrow.RuneWidth(r); w != 1 {
		return 0, fmt.Errorf("%q is %d columns wide, want 1", s, w)
	}
	return r, nil
}

// File represents the structure of themes.json.
type File struct {
	Themes []Def `json:"themes"`
}

// LoadThemes loads theme definitions from the embedded themes.json file.
func LoadThemes() ([]Def, error) {
	file, err := Load[File]("themes.json")
	if err != nil {
		return nil, err
	}
	return file.Themes, nil
}
