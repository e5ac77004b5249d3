package world

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/shardshell/internal/telemetry"
)

const (
	// Default generated map dimensions
	DefaultWidth  = 80
	DefaultHeight = 48

	// BSP parameters
	minRoomSize = 4  // Minimum room dimension
	maxRoomSize = 12 // Maximum room dimension
	minLeafSize = 8  // Minimum BSP leaf size before stopping split
)

// Dungeon is a generated map together with the rooms carved into it.
type Dungeon struct {
	Grid  *Grid
	Rooms []Room
}

// Start returns the cell the viewer should start on: the first room's
// center, or the middle of the map when no room could be carved.
func (d *Dungeon) Start() (int, int) {
	if len(d.Rooms) > 0 {
		return d.Rooms[0].Center()
	}
	return d.Grid.Width() / 2, d.Grid.Height() / 2
}

// builder carves rooms and corridors into an all-solid cell buffer.
type builder struct {
	width  int
	height int
	cells  []CellState
	rooms  []Room
	rng    *rand.Rand
}

// GenerateDungeon builds a width x height map using the BSP algorithm.
// The same rng seed always yields the same map.
func GenerateDungeon(ctx context.Context, width, height int, rng *rand.Rand) *Dungeon {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	b := &builder{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
		rooms:  make([]Room, 0),
		rng:    rng,
	}
	for i := range b.cells {
		b.cells[i] = Solid
	}

	// Start BSP with the entire map as root, keeping a solid border
	root := &bspNode{
		x:      1,
		y:      1,
		width:  width - 2,
		height: height - 2,
	}

	b.splitNode(root)
	b.createRooms(root)
	b.connectRooms(root)

	grid := &Grid{width: width, height: height, cells: b.cells}

	span.SetAttributes(
		attribute.Int("dungeon.width", width),
		attribute.Int("dungeon.height", height),
		attribute.Int("dungeon.room_count", len(b.rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	log.Debug().
		Int("width", width).
		Int("height", height).
		Int("rooms", len(b.rooms)).
		Msg("generated dungeon")

	return &Dungeon{Grid: grid, Rooms: b.rooms}
}

// bspNode represents a node in the BSP tree.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	room          *Room
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively splits a BSP node.
func (b *builder) splitNode(node *bspNode) {
	if node.width < minLeafSize*2 && node.height < minLeafSize*2 {
		return
	}

	var splitHorizontally bool
	if node.width > node.height && node.width >= minLeafSize*2 {
		splitHorizontally = false // Split vertically (left/right)
	} else if node.height >= minLeafSize*2 {
		splitHorizontally = true // Split horizontally (top/bottom)
	} else if node.width >= minLeafSize*2 {
		splitHorizontally = false
	} else {
		return
	}

	size := node.width
	if splitHorizontally {
		size = node.height
	}
	lo, hi := minLeafSize, size-minLeafSize
	if hi <= lo {
		return
	}
	splitPos := lo + b.rng.Intn(hi-lo+1)

	if splitHorizontally {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPos}
		node.right = &bspNode{x: node.x, y: node.y + splitPos, width: node.width, height: node.height - splitPos}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: splitPos, height: node.height}
		node.right = &bspNode{x: node.x + splitPos, y: node.y, width: node.width - splitPos, height: node.height}
	}

	b.splitNode(node.left)
	b.splitNode(node.right)
}

// createRooms creates rooms in leaf nodes of the BSP tree.
func (b *builder) createRooms(node *bspNode) {
	if node == nil {
		return
	}

	if !node.isLeaf() {
		b.createRooms(node.left)
		b.createRooms(node.right)
		return
	}

	// Leaf too small to hold a room plus its margin
	if node.width < minRoomSize+2 || node.height < minRoomSize+2 {
		return
	}

	roomWidth := minRoomSize + b.rng.Intn(min(maxRoomSize-minRoomSize+1, node.width-minRoomSize-1))
	roomHeight := minRoomSize + b.rng.Intn(min(maxRoomSize-minRoomSize+1, node.height-minRoomSize-1))

	roomX := node.x + 1 + b.rng.Intn(node.width-roomWidth-1)
	roomY := node.y + 1 + b.rng.Intn(node.height-roomHeight-1)

	room := Room{
		X:      roomX,
		Y:      roomY,
		Width:  roomWidth,
		Height: roomHeight,
	}
	node.room = &room
	b.rooms = append(b.rooms, room)

	b.carveRoom(room)
}

// carve opens a single cell, leaving the outer border solid.
func (b *builder) carve(x, y int) {
	if x > 0 && x < b.width-1 && y > 0 && y < b.height-1 {
		b.cells[y*b.width+x] = Open
	}
}

// carveRoom opens all cells within the room.
func (b *builder) carveRoom(room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			b.carve(x, y)
		}
	}
}

// connectRooms connects sibling subtrees with corridors.
func (b *builder) connectRooms(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}

	b.connectRooms(node.left)
	b.connectRooms(node.right)

	leftRoom := b.getRoom(node.left)
	rightRoom := b.getRoom(node.right)

	if leftRoom != nil && rightRoom != nil {
		b.carveCorridor(*leftRoom, *rightRoom)
	}
}

// getRoom returns a room from a subtree (any room will do).
func (b *builder) getRoom(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if room := b.getRoom(node.left); room != nil {
		return room
	}
	return b.getRoom(node.right)
}

// carveCorridor creates an L-shaped corridor between two room centers.
func (b *builder) carveCorridor(room1, room2 Room) {
	x1, y1 := room1.Center()
	x2, y2 := room2.Center()

	if b.rng.Intn(2) == 0 {
		b.carveHorizontalTunnel(x1, x2, y1)
		b.carveVerticalTunnel(y1, y2, x2)
	} else {
		b.carveVerticalTunnel(y1, y2, x1)
		b.carveHorizontalTunnel(x1, x2, y2)
	}
}

func (b *builder) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		b.carve(x, y)
	}
}

func (b *builder) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		b.carve(x, y)
	}
}
