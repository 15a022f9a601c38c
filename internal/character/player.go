package character

import (
	"nextlevel/internal/collision"
	"nextlevel/internal/graphics"
	"nextlevel/internal/mathutil"
)

// Player tuning.
const (
	PlayerSpeed        = 2.0
	AttackCooldown     = 0.4
	AttackWindow       = graphics.AnimationInterval * 2
	InvincibleDuration = 1.0
	PlayerKnockback    = 4.0
)

type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerWalk
	PlayerAttack
)

func (s PlayerState) String() string {
	switch s {
	case PlayerWalk:
		return "walk"
	case PlayerAttack:
		return "attack"
	default:
		return "idle"
	}
}

// Input is the held-key state for one simulation step.
type Input struct {
	Left, Right, Up, Down bool
	Attack                bool
}

// Mover resolves a displacement against level geometry.
type Mover interface {
	MoveAndCollide(box *collision.BoundingBox, dx, dy float64) (movedX, movedY bool)
}

// Player is the hero. Box is centered on the player's position.
type Player struct {
	Box      *collision.BoundingBox
	Speed    float64
	TileSize float64
	State    PlayerState
	Facing   collision.Direction
	Anim     graphics.Animation

	InvincibleTimer     float64
	AttackCooldownTimer float64
	AttackAnimTimer     float64
}

// NewPlayer places a tile-sized player centered on (x, y), idle and facing down.
func NewPlayer(x, y, tileSize float64) *Player {
	return &Player{
		Box:      collision.NewBoundingBox(x, y, tileSize, tileSize),
		Speed:    PlayerSpeed,
		TileSize: tileSize,
		State:    PlayerIdle,
		Facing:   collision.DirDown,
	}
}

func (p *Player) X() float64 { return p.Box.X }
func (p *Player) Y() float64 { return p.Box.Y }

// Update advances timers and applies one step of input. It returns the
// attack hitbox when an attack starts this step, nil otherwise.
func (p *Player) Update(dt float64, in Input, mover Mover) *collision.BoundingBox {
	if p.InvincibleTimer > 0 {
		p.InvincibleTimer -= dt
	}
	if p.AttackCooldownTimer > 0 {
		p.AttackCooldownTimer -= dt
	}

	if p.State == PlayerAttack {
		p.AttackAnimTimer -= dt
		if p.AttackAnimTimer <= 0 {
			p.State = PlayerIdle
		}
		p.Anim.Advance(dt)
		return nil
	}

	// Holding attack never walks, even while the cooldown runs.
	if in.Attack {
		hitbox := p.Attack()
		p.Anim.Advance(dt)
		return hitbox
	}

	dx, dy := in.direction(p.Speed)
	if dx != 0 || dy != 0 {
		p.State = PlayerWalk
		p.Move(dx, dy, mover)
	} else {
		p.State = PlayerIdle
	}

	p.Anim.Advance(dt)
	return nil
}

// direction resolves held keys with A, D, W, S priority; only one axis moves.
func (in Input) direction(speed float64) (dx, dy float64) {
	switch {
	case in.Left:
		return -speed, 0
	case in.Right:
		return speed, 0
	case in.Up:
		return 0, -speed
	case in.Down:
		return 0, speed
	}
	return 0, 0
}

// Move updates facing and moves through collision. It does nothing while
// attacking. Vertical motion only turns the player when not already facing
// left or right.
func (p *Player) Move(dx, dy float64, mover Mover) {
	if p.State == PlayerAttack {
		return
	}

	switch {
	case dx > 0:
		p.Facing = collision.DirRight
	case dx < 0:
		p.Facing = collision.DirLeft
	case dy < 0 && !p.Facing.IsHorizontal():
		p.Facing = collision.DirUp
	case dy > 0 && !p.Facing.IsHorizontal():
		p.Facing = collision.DirDown
	}

	if mover == nil {
		p.Box.MoveBy(dx, dy)
		return
	}
	mover.MoveAndCollide(p.Box, dx, dy)
}

// Attack starts a swing when the cooldown allows it and returns the
// tile-sized hitbox adjacent to the player in the facing direction.
func (p *Player) Attack() *collision.BoundingBox {
	if p.AttackCooldownTimer > 0 {
		return nil
	}

	p.State = PlayerAttack
	p.Anim.Restart()
	p.AttackCooldownTimer = AttackCooldown
	p.AttackAnimTimer = AttackWindow

	return p.Box.Adjacent(p.Facing, p.TileSize, p.TileSize, p.TileSize)
}

// TakeHit applies a hit from an enemy centered at (fromX, fromY). It returns
// false when the player is still invincible and nothing happened.
func (p *Player) TakeHit(fromX, fromY float64, mover Mover) bool {
	if p.Invincible() {
		return false
	}

	p.InvincibleTimer = InvincibleDuration

	if nx, ny, ok := mathutil.Normalize(p.X()-fromX, p.Y()-fromY); ok {
		p.Move(nx*PlayerKnockback, ny*PlayerKnockback, mover)
	}
	return true
}

func (p *Player) Invincible() bool {
	return p.InvincibleTimer > 0
}

// Visible implements the damage blink: while invincible the sprite is hidden
// on every other tenth of a second.
func (p *Player) Visible() bool {
	if !p.Invincible() {
		return true
	}
	return int(p.InvincibleTimer*10)%2 != 0
}

// Sprite returns the asset key for the current animation frame.
func (p *Player) Sprite() string {
	return graphics.SpriteKey("player", p.State.String(), p.Facing == collision.DirLeft, p.Anim.Frame)
}
