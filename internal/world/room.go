package world

// Room is a rectangular open area carved by the dungeon generator.
type Room struct {
	X, Y          int // Top-left cell
	Width, Height int
}

// Center returns the center cell of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}
