package character

import (
	"testing"

	"nextlevel/internal/collision"
	"nextlevel/internal/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tile = 16.0
	step = 1.0 / 60
)

func roomMover(t *testing.T) *collision.CollisionSystem {
	t.Helper()
	grid, err := world.ParseGrid([]string{
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	})
	require.NoError(t, err)
	level := world.Build(grid, tile)
	return collision.NewCollisionSystem(level, tile)
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(40, 40, tile)

	assert.Equal(t, PlayerIdle, p.State)
	assert.Equal(t, collision.DirDown, p.Facing)
	assert.Equal(t, PlayerSpeed, p.Speed)
	assert.Equal(t, tile, p.Box.Width)
	assert.True(t, p.Visible())
	assert.Equal(t, "player_idle_1", p.Sprite())
}

func TestInputPriority(t *testing.T) {
	tests := []struct {
		name   string
		in     Input
		dx, dy float64
		facing collision.Direction
	}{
		{"left beats right", Input{Left: true, Right: true}, -2, 0, collision.DirLeft},
		{"right beats up", Input{Right: true, Up: true}, 2, 0, collision.DirRight},
		{"up beats down", Input{Up: true, Down: true}, 0, -2, collision.DirUp},
		{"down alone", Input{Down: true}, 0, 2, collision.DirDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(40, 40, tile)
			p.Update(step, tt.in, roomMover(t))

			assert.Equal(t, PlayerWalk, p.State)
			assert.InDelta(t, 40+tt.dx, p.X(), 1e-9)
			assert.InDelta(t, 40+tt.dy, p.Y(), 1e-9)
			assert.Equal(t, tt.facing, p.Facing)
		})
	}
}

func TestVerticalKeepsHorizontalFacing(t *testing.T) {
	p := NewPlayer(40, 40, tile)
	p.Facing = collision.DirRight

	p.Update(step, Input{Up: true}, nil)
	assert.Equal(t, collision.DirRight, p.Facing)
	assert.InDelta(t, 38.0, p.Y(), 1e-9)

	p.Update(step, Input{}, nil)
	assert.Equal(t, PlayerIdle, p.State)
}

func TestWallBlocksPlayer(t *testing.T) {
	mover := roomMover(t)
	p := NewPlayer(24, 24, tile)

	p.Update(step, Input{Left: true}, mover)
	assert.Equal(t, 24.0, p.X())
	assert.Equal(t, collision.DirLeft, p.Facing, "facing turns even when blocked")
	assert.Equal(t, "player_walk_left_1", p.Sprite())
}

func TestAttackHitbox(t *testing.T) {
	p := NewPlayer(40, 40, tile)
	p.Facing = collision.DirRight

	hitbox := p.Update(step, Input{Attack: true}, nil)
	require.NotNil(t, hitbox)
	assert.Equal(t, 56.0, hitbox.X)
	assert.Equal(t, 40.0, hitbox.Y)
	assert.Equal(t, tile, hitbox.Width)
	assert.Equal(t, PlayerAttack, p.State)
	assert.Equal(t, AttackCooldown, p.AttackCooldownTimer)

	p.Facing = collision.DirUp
	up := p.Box.Adjacent(p.Facing, tile, tile, tile)
	assert.Equal(t, 24.0, up.Y)
}

func TestAttackLocksMovement(t *testing.T) {
	p := NewPlayer(40, 40, tile)
	require.NotNil(t, p.Update(step, Input{Attack: true}, nil))

	for i := 0; i < 5; i++ {
		assert.Nil(t, p.Update(step, Input{Left: true, Attack: true}, nil))
	}
	assert.Equal(t, 40.0, p.X(), "no movement while attacking")
	assert.Equal(t, PlayerAttack, p.State)

	for i := 0; i < 20; i++ {
		p.Update(step, Input{}, nil)
	}
	assert.Equal(t, PlayerIdle, p.State)
}

func TestAttackCooldown(t *testing.T) {
	p := NewPlayer(40, 40, tile)
	require.NotNil(t, p.Attack())

	p.State = PlayerIdle
	assert.Nil(t, p.Attack(), "cooldown still running")
	assert.Equal(t, PlayerIdle, p.State)

	// Holding attack during cooldown keeps the player in place.
	p.Update(step, Input{Attack: true, Right: true}, nil)
	assert.Equal(t, 40.0, p.X())

	p.AttackCooldownTimer = 0
	assert.NotNil(t, p.Attack())
}

func TestTakeHit(t *testing.T) {
	p := NewPlayer(40, 40, tile)

	require.True(t, p.TakeHit(30, 40, nil))
	assert.InDelta(t, 44.0, p.X(), 1e-9)
	assert.Equal(t, 40.0, p.Y())
	assert.True(t, p.Invincible())
	assert.Equal(t, InvincibleDuration, p.InvincibleTimer)

	assert.False(t, p.TakeHit(30, 40, nil), "invincible players ignore hits")
	assert.InDelta(t, 44.0, p.X(), 1e-9)
}

func TestTakeHitSamePositionNoKnockback(t *testing.T) {
	p := NewPlayer(40, 40, tile)

	require.True(t, p.TakeHit(40, 40, nil))
	assert.Equal(t, 40.0, p.X())
	assert.Equal(t, 40.0, p.Y())
}

func TestInvincibilityExpires(t *testing.T) {
	p := NewPlayer(40, 40, tile)
	p.TakeHit(30, 40, nil)

	for i := 0; i < 61; i++ {
		p.Update(step, Input{}, nil)
	}
	assert.False(t, p.Invincible())
	assert.True(t, p.TakeHit(30, 40, nil))
}

func TestBlink(t *testing.T) {
	p := NewPlayer(40, 40, tile)

	p.InvincibleTimer = 1.0
	assert.False(t, p.Visible())
	p.InvincibleTimer = 0.95
	assert.True(t, p.Visible())
	p.InvincibleTimer = 0.85
	assert.False(t, p.Visible())
	p.InvincibleTimer = 0
	assert.True(t, p.Visible())
}
