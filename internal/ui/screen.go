// Package ui provides terminal rendering using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with a simplified interface. It satisfies
// view.Display.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes an existing tcell screen, such as a
// simulation screen in tests.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	s.SetStyle(style)
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s, style: style}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune) {
	s.screen.SetContent(x, y, r, nil, s.style)
}

// Content returns the rune at the given position.
func (s *Screen) Content(x, y int) rune {
	r, _, _, _ := s.screen.GetContent(x, y)
	return r
}

// WriteGlyph puts a glyph at a screen row and column.
func (s *Screen) WriteGlyph(row, col int, glyph rune) {
	s.SetContent(col, row, glyph)
}

// Extent returns the terminal size as rows and columns.
func (s *Screen) Extent() (rows, cols int) {
	w, h := s.screen.Size()
	return h, w
}

// HideCursor hides the terminal cursor.
func (s *Screen) HideCursor() {
	s.screen.HideCursor()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
