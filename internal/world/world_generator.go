package world

import (
	"math/rand"

	"nextlevel/internal/logger"
	"nextlevel/internal/mathutil"

	"github.com/sirupsen/logrus"
)

// Generation parameters.
const (
	MinRooms        = 5
	MaxRooms        = 8
	RoomMinWidth    = 6
	RoomMaxWidth    = 12
	RoomMinHeight   = 5
	RoomMaxHeight   = 10
	CorridorWidth   = 3
	DecorWallChance = 0.2
)

// Room is a generation-time rectangle in cell coordinates.
type Room struct {
	X, Y, W, H int
}

func (r Room) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports overlap; rooms that only touch do not intersect.
func (r Room) Intersects(other Room) bool {
	return r.X < other.X+other.W && other.X < r.X+r.W &&
		r.Y < other.Y+other.H && other.Y < r.Y+r.H
}

// Generation is the output of Generate.
type Generation struct {
	Grid  *Grid
	Rooms []Room
}

// Door returns the door cell, or false when no room was accepted.
func (g *Generation) Door() (x, y int, ok bool) {
	if len(g.Rooms) == 0 {
		return 0, 0, false
	}
	x, y = g.Rooms[len(g.Rooms)-1].Center()
	return x, y, true
}

// Generate builds a room-and-corridor dungeon of width x height cells.
// The step order is fixed: rooms, corridors, decoration, door.
func Generate(width, height int, rng *rand.Rand) *Generation {
	gen := &Generation{Grid: NewGrid(width, height)}

	gen.placeRooms(rng)
	gen.carveCorridors()
	gen.decorateWalls(rng)
	gen.placeDoor()

	logger.WithComponent("world").WithFields(logrus.Fields{
		"rooms":  len(gen.Rooms),
		"floors": gen.Grid.Count(CellFloor),
	}).Debug("level generated")

	return gen
}

// placeRooms tries a random number of rooms once each; overlapping
// candidates are dropped rather than retried.
func (gen *Generation) placeRooms(rng *rand.Rand) {
	attempts := mathutil.RandRange(rng, MinRooms, MaxRooms)
	for i := 0; i < attempts; i++ {
		w := mathutil.RandRange(rng, RoomMinWidth, RoomMaxWidth)
		h := mathutil.RandRange(rng, RoomMinHeight, RoomMaxHeight)
		maxX := gen.Grid.Width - w - 1
		maxY := gen.Grid.Height - h - 1
		if maxX < 1 || maxY < 1 {
			continue
		}
		room := Room{
			X: mathutil.RandRange(rng, 1, maxX),
			Y: mathutil.RandRange(rng, 1, maxY),
			W: w,
			H: h,
		}

		if gen.overlapsAny(room) {
			continue
		}
		for y := room.Y; y < room.Y+room.H; y++ {
			for x := room.X; x < room.X+room.W; x++ {
				gen.Grid.Set(x, y, CellFloor)
			}
		}
		gen.Rooms = append(gen.Rooms, room)
	}
}

func (gen *Generation) overlapsAny(room Room) bool {
	for _, other := range gen.Rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// carveCorridors joins consecutive rooms with an L: a horizontal band on the
// first room's center row, then a vertical band on the second room's center
// column.
func (gen *Generation) carveCorridors() {
	half := CorridorWidth / 2
	for i := 0; i+1 < len(gen.Rooms); i++ {
		cx1, cy1 := gen.Rooms[i].Center()
		cx2, cy2 := gen.Rooms[i+1].Center()

		for x := mathutil.IntMin(cx1, cx2); x <= mathutil.IntMax(cx1, cx2); x++ {
			for dy := -half; dy <= half; dy++ {
				gen.Grid.Set(x, cy1+dy, CellFloor)
			}
		}
		for y := mathutil.IntMin(cy1, cy2); y <= mathutil.IntMax(cy1, cy2); y++ {
			for dx := -half; dx <= half; dx++ {
				gen.Grid.Set(cx2+dx, y, CellFloor)
			}
		}
	}
}

func (gen *Generation) decorateWalls(rng *rand.Rand) {
	for y := 0; y < gen.Grid.Height; y++ {
		for x := 0; x < gen.Grid.Width; x++ {
			if gen.Grid.Cells[y][x] == CellWall && rng.Float64() < DecorWallChance {
				gen.Grid.Cells[y][x] = CellDecorWall
			}
		}
	}
}

func (gen *Generation) placeDoor() {
	if x, y, ok := gen.Door(); ok {
		gen.Grid.Set(x, y, CellDoor)
	}
}
