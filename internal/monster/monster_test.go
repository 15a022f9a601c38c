package monster

import (
	"math/rand"
	"testing"

	"nextlevel/internal/collision"
	"nextlevel/internal/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tile = 16.0

func mustVariant(t *testing.T, key string) *Variant {
	t.Helper()
	v, err := Variants.ByKey(key)
	require.NoError(t, err)
	return v
}

func corridorMover(t *testing.T) *collision.CollisionSystem {
	t.Helper()
	grid, err := world.ParseGrid([]string{
		"##########",
		"#........#",
		"##########",
	})
	require.NoError(t, err)
	return collision.NewCollisionSystem(world.Build(grid, tile), tile)
}

func TestNewEnemy(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := NewEnemy(mustVariant(t, "cyclops"), 40, 24, tile, rng)

	assert.Equal(t, 3, e.Health)
	assert.Equal(t, 0.5, e.Speed)
	assert.Equal(t, StatePatrolling, e.State)
	assert.Equal(t, collision.DirRight, e.Facing)
	assert.GreaterOrEqual(t, e.PatrolTimer, FirstPatrolMin)
	assert.Less(t, e.PatrolTimer, FirstPatrolMax)
	assert.Len(t, e.ID, 36)
	assert.Equal(t, "cyclops_walk_1", e.Sprite())
}

func TestEnemyIDsDeterministic(t *testing.T) {
	v := mustVariant(t, "basic")
	a := NewEnemy(v, 0, 0, tile, rand.New(rand.NewSource(9)))
	b := NewEnemy(v, 0, 0, tile, rand.New(rand.NewSource(9)))
	assert.Equal(t, a.ID, b.ID)

	rng := rand.New(rand.NewSource(9))
	c := NewEnemy(v, 0, 0, tile, rng)
	d := NewEnemy(v, 0, 0, tile, rng)
	assert.NotEqual(t, c.ID, d.ID)
}

func TestTakeHitKnockback(t *testing.T) {
	e := NewEnemy(mustVariant(t, "cyclops"), 100, 100, tile, rand.New(rand.NewSource(1)))

	assert.True(t, e.TakeHit(90, 100, nil))
	assert.Equal(t, 2, e.Health)
	assert.InDelta(t, 108.0, e.X(), 1e-9)
	assert.Equal(t, 100.0, e.Y())
	assert.Equal(t, collision.DirRight, e.Facing, "knockback leaves facing alone")

	assert.True(t, e.TakeHit(e.X(), e.Y(), nil), "coincident attacker skips knockback")
	assert.InDelta(t, 108.0, e.X(), 1e-9)

	assert.False(t, e.TakeHit(0, 0, nil))
	assert.False(t, e.IsAlive())
}

func TestTakeHitKnockbackBlockedByWall(t *testing.T) {
	mover := corridorMover(t)
	e := NewEnemy(mustVariant(t, "basic"), 24, 24, tile, rand.New(rand.NewSource(1)))

	e.TakeHit(40, 24, mover)
	assert.Equal(t, 24.0, e.X(), "knockback into the wall is reverted")
}

func TestKnockbackPointsAwayFromAttacker(t *testing.T) {
	e := NewEnemy(mustVariant(t, "cyclops"), 3, 4, tile, rand.New(rand.NewSource(1)))

	e.TakeHit(0, 0, nil)
	assert.InDelta(t, 3+0.6*EnemyKnockback, e.X(), 1e-9)
	assert.InDelta(t, 4+0.8*EnemyKnockback, e.Y(), 1e-9)
}
