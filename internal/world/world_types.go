package world

// CellKind is the generator's view of one grid cell.
type CellKind int

const (
	CellWall      CellKind = iota // Solid rock - the initial fill
	CellFloor                     // Walkable room or corridor floor
	CellDecorWall                 // Alternate wall art, collides like CellWall
	CellDoor                      // Level exit
)

// Glyph returns the character used by the text codec.
func (k CellKind) Glyph() byte {
	switch k {
	case CellFloor:
		return '.'
	case CellDecorWall:
		return 'X'
	case CellDoor:
		return 'D'
	default:
		return '#'
	}
}

// IsWall reports whether the cell kind blocks movement.
func (k CellKind) IsWall() bool {
	return k == CellWall || k == CellDecorWall
}

func cellKindFromGlyph(g byte) (CellKind, bool) {
	switch g {
	case '#':
		return CellWall, true
	case '.':
		return CellFloor, true
	case 'X':
		return CellDecorWall, true
	case 'D':
		return CellDoor, true
	}
	return CellWall, false
}

// TileKind is the placed, drawable representation of a cell.
type TileKind int

const (
	TileFloor TileKind = iota
	TileWall
	TileWall2
	TileDoor
)

// Tile is a placed level tile. X and Y are the top-left world coordinates.
type Tile struct {
	Kind  TileKind
	X, Y  float64
	Solid bool
	Open  bool // doors only
}

// Sprite returns the asset key a renderer should draw for the tile.
func (t *Tile) Sprite() string {
	switch t.Kind {
	case TileWall:
		return "wall"
	case TileWall2:
		return "wall_2"
	case TileDoor:
		if t.Open {
			return "door"
		}
		return "closed_door"
	default:
		return "floor"
	}
}
