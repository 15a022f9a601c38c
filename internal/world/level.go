package world

import "nextlevel/internal/collision"

// Level is a built grid: placed tiles plus the collision view of them.
type Level struct {
	grid     *Grid
	tileSize float64
	tiles    []*Tile
	walls    []*Tile
	door     *Tile
}

// Build places one tile per cell in row-major order. The door tile is
// appended after every other tile.
func Build(grid *Grid, tileSize float64) *Level {
	lvl := &Level{grid: grid, tileSize: tileSize}

	for y, row := range grid.Cells {
		for x, cell := range row {
			tile := &Tile{X: float64(x) * tileSize, Y: float64(y) * tileSize}
			switch cell {
			case CellFloor:
				tile.Kind = TileFloor
			case CellWall:
				tile.Kind, tile.Solid = TileWall, true
			case CellDecorWall:
				tile.Kind, tile.Solid = TileWall2, true
			case CellDoor:
				tile.Kind = TileDoor
				lvl.door = tile
				continue
			}
			lvl.tiles = append(lvl.tiles, tile)
			if tile.Solid {
				lvl.walls = append(lvl.walls, tile)
			}
		}
	}

	if lvl.door != nil {
		lvl.tiles = append(lvl.tiles, lvl.door)
	}
	return lvl
}

func (l *Level) Grid() *Grid { return l.grid }
func (l *Level) TileSize() float64 { return l.tileSize }
func (l *Level) Tiles() []*Tile { return l.tiles }
func (l *Level) Walls() []*Tile { return l.walls }
func (l *Level) Door() *Tile { return l.door }

// SpawnPoints returns the world-space center of every floor cell.
func (l *Level) SpawnPoints() []collision.Point {
	floors := l.grid.Floors()
	points := make([]collision.Point, 0, len(floors))
	for _, c := range floors {
		points = append(points, collision.Point{
			X: float64(c[0])*l.tileSize + l.tileSize/2,
			Y: float64(c[1])*l.tileSize + l.tileSize/2,
		})
	}
	return points
}

// OpenDoor switches the door to its open state. It returns false when the
// level has no door.
func (l *Level) OpenDoor() bool {
	if l.door == nil {
		return false
	}
	l.door.Open = true
	return true
}

// TileBox returns the collision rectangle of a placed tile.
func (l *Level) TileBox(t *Tile) *collision.BoundingBox {
	return collision.NewBoundingBoxFromTopLeft(t.X, t.Y, l.tileSize, l.tileSize)
}

// IsTileBlocking implements collision.TileChecker.
func (l *Level) IsTileBlocking(tileX, tileY int) bool {
	return l.grid.At(tileX, tileY).IsWall()
}

// GetWorldBounds implements collision.TileChecker.
func (l *Level) GetWorldBounds() (width, height int) {
	return l.grid.Width, l.grid.Height
}
