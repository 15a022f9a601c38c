package collision

import "nextlevel/internal/mathutil"

// TileChecker interface for checking if tiles block movement
type TileChecker interface {
	IsTileBlocking(tileX, tileY int) bool
	GetWorldBounds() (width, height int)
}

// CollisionSystem resolves entity movement against the blocking tiles of a
// level. Walls are whole tiles, so visiting the tiles a box overlaps is the
// same as testing the box against every wall rectangle.
type CollisionSystem struct {
	tileChecker TileChecker
	tileSize    float64
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(tileChecker TileChecker, tileSize float64) *CollisionSystem {
	return &CollisionSystem{
		tileChecker: tileChecker,
		tileSize:    tileSize,
	}
}

// UpdateTileChecker updates the tile checker (used when switching levels)
func (cs *CollisionSystem) UpdateTileChecker(tileChecker TileChecker) {
	cs.tileChecker = tileChecker
}

// Blocked reports whether the box overlaps a blocking tile or leaves the map.
func (cs *CollisionSystem) Blocked(box *BoundingBox) bool {
	if cs.tileChecker == nil {
		return false
	}
	width, height := cs.tileChecker.GetWorldBounds()

	minX, minY, maxX, maxY := box.GetBounds()

	startTileX, endTileX := mathutil.TileSpan(minX, maxX, cs.tileSize)
	startTileY, endTileY := mathutil.TileSpan(minY, maxY, cs.tileSize)

	for tileY := startTileY; tileY <= endTileY; tileY++ {
		for tileX := startTileX; tileX <= endTileX; tileX++ {
			if tileX < 0 || tileX >= width || tileY < 0 || tileY >= height {
				return true
			}
			if cs.tileChecker.IsTileBlocking(tileX, tileY) {
				return true
			}
		}
	}

	return false
}

// MoveAndCollide moves box by dx then dy, one axis at a time. An axis whose
// move ends in a blocked position is reverted entirely; there is no partial
// resolution. It returns whether each axis move was kept.
func (cs *CollisionSystem) MoveAndCollide(box *BoundingBox, dx, dy float64) (movedX, movedY bool) {
	if dx != 0 {
		box.X += dx
		if cs.Blocked(box) {
			box.X -= dx
		} else {
			movedX = true
		}
	}

	if dy != 0 {
		box.Y += dy
		if cs.Blocked(box) {
			box.Y -= dy
		} else {
			movedY = true
		}
	}

	return movedX, movedY
}
