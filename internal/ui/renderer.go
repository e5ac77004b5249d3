package ui

import (
	"github.com/samdwyer/shardshell/internal/tile"
	"github.com/samdwyer/shardshell/internal/view"
)

// Renderer handles drawing frames to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one map frame through the viewport and flushes it.
func (r *Renderer) Render(src tile.Source, vp *view.Viewport) {
	r.screen.Clear()
	vp.Render(src, r.screen)
	r.screen.Show()
}

// RenderLines clears the screen and draws text lines from the top-left.
func (r *Renderer) RenderLines(lines []string) {
	r.screen.Clear()
	for y, line := range lines {
		r.RenderMessage(line, y)
	}
	r.screen.HideCursor()
	r.screen.Show()
}

// RenderMessage draws a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch)
		x++
	}
}
