package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testMapWidth  = 50
	testMapHeight = 37
)

func TestGenerateProperties(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		gen := Generate(testMapWidth, testMapHeight, rand.New(rand.NewSource(seed)))
		grid := gen.Grid

		require.Equal(t, testMapWidth, grid.Width)
		require.Equal(t, testMapHeight, grid.Height)
		require.Len(t, grid.Cells, testMapHeight)
		for _, row := range grid.Cells {
			require.Len(t, row, testMapWidth)
		}

		assert.LessOrEqual(t, len(gen.Rooms), MaxRooms)
		for i, r := range gen.Rooms {
			assert.GreaterOrEqual(t, r.X, 1)
			assert.GreaterOrEqual(t, r.Y, 1)
			assert.LessOrEqual(t, r.X+r.W, testMapWidth-1)
			assert.LessOrEqual(t, r.Y+r.H, testMapHeight-1)
			for j := i + 1; j < len(gen.Rooms); j++ {
				assert.False(t, r.Intersects(gen.Rooms[j]), "seed %d: rooms %d and %d overlap", seed, i, j)
			}
		}

		if len(gen.Rooms) == 0 {
			assert.Zero(t, grid.Count(CellDoor))
			continue
		}
		assert.Equal(t, 1, grid.Count(CellDoor), "seed %d", seed)
		dx, dy, ok := gen.Door()
		require.True(t, ok)
		assert.Equal(t, CellDoor, grid.At(dx, dy))
		assertConnected(t, grid, seed)
	}
}

func assertConnected(t *testing.T, grid *Grid, seed int64) {
	t.Helper()

	var start [2]int
	found := false
	walkable := 0
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if !grid.At(x, y).IsWall() {
				walkable++
				if !found {
					start, found = [2]int{x, y}, true
				}
			}
		}
	}
	require.True(t, found)

	seen := map[[2]int]bool{start: true}
	queue := [][2]int{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := [2]int{c[0] + d[0], c[1] + d[1]}
			if !seen[n] && grid.InBounds(n[0], n[1]) && !grid.At(n[0], n[1]).IsWall() {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	assert.Equal(t, walkable, len(seen), "seed %d: unreachable floor cells", seed)
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(testMapWidth, testMapHeight, rand.New(rand.NewSource(7)))
	b := Generate(testMapWidth, testMapHeight, rand.New(rand.NewSource(7)))
	assert.Equal(t, a.Grid.Rows(), b.Grid.Rows())
	assert.Equal(t, a.Rooms, b.Rooms)
}

func TestGenerateOuterRingIsWall(t *testing.T) {
	gen := Generate(testMapWidth, testMapHeight, rand.New(rand.NewSource(11)))
	for x := 0; x < testMapWidth; x++ {
		assert.True(t, gen.Grid.At(x, 0).IsWall())
		assert.True(t, gen.Grid.At(x, testMapHeight-1).IsWall())
	}
	for y := 0; y < testMapHeight; y++ {
		assert.True(t, gen.Grid.At(0, y).IsWall())
		assert.True(t, gen.Grid.At(testMapWidth-1, y).IsWall())
	}
}

func TestGenerateTooSmallForRooms(t *testing.T) {
	gen := Generate(6, 6, rand.New(rand.NewSource(1)))

	assert.Empty(t, gen.Rooms)
	assert.Zero(t, gen.Grid.Count(CellFloor))
	assert.Zero(t, gen.Grid.Count(CellDoor))
	_, _, ok := gen.Door()
	assert.False(t, ok)
}

func TestDecorationOnlyReplacesWalls(t *testing.T) {
	gen := Generate(testMapWidth, testMapHeight, rand.New(rand.NewSource(3)))
	walls := gen.Grid.Count(CellWall)
	decor := gen.Grid.Count(CellDecorWall)
	require.Positive(t, walls+decor)

	ratio := float64(decor) / float64(walls+decor)
	assert.InDelta(t, DecorWallChance, ratio, 0.06)
}

func TestCorridorClipsAtBorder(t *testing.T) {
	gen := &Generation{
		Grid: NewGrid(12, 8),
		Rooms: []Room{
			{X: 0, Y: 0, W: 2, H: 2},   // center (1,1): band rows 0..2
			{X: 10, Y: 6, W: 2, H: 2}, // center (11,7): band cols 10..12
		},
	}
	assert.NotPanics(t, gen.carveCorridors)
	assert.Equal(t, CellFloor, gen.Grid.At(11, 0))
	assert.Equal(t, CellFloor, gen.Grid.At(11, 7))
}

func TestRoomIntersects(t *testing.T) {
	r1 := Room{0, 0, 10, 10}
	r2 := Room{5, 5, 10, 10}
	r3 := Room{10, 0, 5, 5} // touching edge
	r4 := Room{20, 20, 5, 5}

	assert.True(t, r1.Intersects(r2))
	assert.False(t, r1.Intersects(r3))
	assert.False(t, r1.Intersects(r4))

	cx, cy := Room{X: 3, Y: 4, W: 7, H: 5}.Center()
	assert.Equal(t, 6, cx)
	assert.Equal(t, 6, cy)
}
