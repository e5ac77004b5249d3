package game

import (
	"embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

//go:embed locale/*.po
var localeFS embed.FS

// HasLanguage reports whether translations exist for lang.
func HasLanguage(lang string) bool {
	_, err := localeFS.ReadFile(poPath(lang))
	return err == nil
}

func poPath(lang string) string {
	return fmt.Sprintf("locale/%s.po", lang)
}

// Menu is the pause menu shown over the map.
type Menu struct {
	po *gotext.Po
}

// NewMenu loads the menu translations for lang.
func NewMenu(lang string) (*Menu, error) {
	content, err := localeFS.ReadFile(poPath(lang))
	if err != nil {
		return nil, fmt.Errorf("failed to read translations for %q: %w", lang, err)
	}
	po := gotext.NewPo()
	po.Parse(content)
	return &Menu{po: po}, nil
}

// Lines returns the menu text. x and y are the viewer's map cell.
func (m *Menu) Lines(x, y int) []string {
	return []string{
		m.po.Get("MENU_TITLE"),
		m.po.Get("MENU_QUIT"),
		m.po.Get("MENU_CLOSE"),
		"",
		m.po.Get("MENU_POSITION", x, y),
	}
}
