package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTileChecker implements TileChecker for testing
type mockTileChecker struct {
	width, height int
	blockingTiles map[[2]int]bool
}

func newMockTileChecker(width, height int) *mockTileChecker {
	return &mockTileChecker{
		width:         width,
		height:        height,
		blockingTiles: make(map[[2]int]bool),
	}
}

func (m *mockTileChecker) IsTileBlocking(tileX, tileY int) bool {
	return m.blockingTiles[[2]int{tileX, tileY}]
}

func (m *mockTileChecker) GetWorldBounds() (width, height int) {
	return m.width, m.height
}

func (m *mockTileChecker) setBlocking(tileX, tileY int) {
	m.blockingTiles[[2]int{tileX, tileY}] = true
}

func TestIntersectsIsStrict(t *testing.T) {
	a := NewBoundingBoxFromTopLeft(0, 0, 16, 16)
	touching := NewBoundingBoxFromTopLeft(16, 0, 16, 16)
	overlapping := NewBoundingBoxFromTopLeft(15, 15, 16, 16)
	far := NewBoundingBoxFromTopLeft(40, 40, 16, 16)

	assert.False(t, a.Intersects(touching), "shared edge is not a collision")
	assert.True(t, a.Intersects(overlapping))
	assert.True(t, overlapping.Intersects(a))
	assert.False(t, a.Intersects(far))
}

func TestFromTopLeft(t *testing.T) {
	b := NewBoundingBoxFromTopLeft(32, 48, 16, 16)
	minX, minY, maxX, maxY := b.GetBounds()
	assert.Equal(t, 32.0, minX)
	assert.Equal(t, 48.0, minY)
	assert.Equal(t, 48.0, maxX)
	assert.Equal(t, 64.0, maxY)
	assert.True(t, b.Contains(Point{X: 40, Y: 56}))
	assert.False(t, b.Contains(Point{X: 48, Y: 56}))
}

func TestAdjacent(t *testing.T) {
	player := NewBoundingBox(100, 100, 16, 16)

	tests := []struct {
		dir          Direction
		wantX, wantY float64
	}{
		{DirUp, 100, 84},
		{DirDown, 100, 116},
		{DirLeft, 84, 100},
		{DirRight, 116, 100},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			hb := player.Adjacent(tt.dir, 16, 16, 16)
			assert.Equal(t, tt.wantX, hb.X)
			assert.Equal(t, tt.wantY, hb.Y)
			assert.False(t, hb.Intersects(player), "hitbox sits beyond the body")
		})
	}
}

func TestBlocked(t *testing.T) {
	checker := newMockTileChecker(10, 10)
	checker.setBlocking(3, 1)
	cs := NewCollisionSystem(checker, 16)

	// Flush against the wall's left edge: no overlap.
	assert.False(t, cs.Blocked(NewBoundingBoxFromTopLeft(32, 16, 16, 16)))
	// One unit into the wall.
	assert.True(t, cs.Blocked(NewBoundingBoxFromTopLeft(33, 16, 16, 16)))
	// Outside the map counts as blocked.
	assert.True(t, cs.Blocked(NewBoundingBoxFromTopLeft(-1, 16, 16, 16)))
	assert.True(t, cs.Blocked(NewBoundingBoxFromTopLeft(16, 150, 16, 16)))
}

func TestMoveAndCollide_HeadOnRevertsAxis(t *testing.T) {
	checker := newMockTileChecker(10, 10)
	checker.setBlocking(3, 1)
	cs := NewCollisionSystem(checker, 16)

	box := NewBoundingBox(40, 24, 16, 16) // cell (2,1), wall to the right
	movedX, movedY := cs.MoveAndCollide(box, 2, 0)

	assert.False(t, movedX)
	assert.False(t, movedY)
	assert.Equal(t, 40.0, box.X, "X reverted to pre-move coordinate")
	assert.Equal(t, 24.0, box.Y, "Y unaffected")
}

func TestMoveAndCollide_SlidesAlongWall(t *testing.T) {
	checker := newMockTileChecker(10, 10)
	checker.setBlocking(3, 1)
	checker.setBlocking(3, 2)
	cs := NewCollisionSystem(checker, 16)

	box := NewBoundingBox(40, 24, 16, 16)
	movedX, movedY := cs.MoveAndCollide(box, 1.5, 1.5)

	assert.False(t, movedX)
	assert.True(t, movedY)
	assert.Equal(t, 40.0, box.X)
	assert.Equal(t, 25.5, box.Y)
}

func TestMoveAndCollide_FreeMove(t *testing.T) {
	cs := NewCollisionSystem(newMockTileChecker(10, 10), 16)
	box := NewBoundingBox(40, 40, 16, 16)

	movedX, movedY := cs.MoveAndCollide(box, -2, 3)
	require.True(t, movedX)
	require.True(t, movedY)
	assert.Equal(t, 38.0, box.X)
	assert.Equal(t, 43.0, box.Y)
}

func TestMoveAndCollide_NilChecker(t *testing.T) {
	cs := NewCollisionSystem(nil, 16)
	box := NewBoundingBox(0, 0, 16, 16)
	cs.MoveAndCollide(box, 5, 5)
	assert.Equal(t, 5.0, box.X)
	assert.Equal(t, 5.0, box.Y)
}
