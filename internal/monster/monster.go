package monster

import (
	"math/rand"

	"nextlevel/internal/collision"
	"nextlevel/internal/graphics"
	"nextlevel/internal/mathutil"

	"github.com/google/uuid"
)

// Mover resolves a displacement against level geometry.
type Mover interface {
	MoveAndCollide(box *collision.BoundingBox, dx, dy float64) (movedX, movedY bool)
}

type Enemy struct {
	ID      string // stable across the enemy's life, drawn from the run RNG
	Variant *Variant
	Box     *collision.BoundingBox

	State       EnemyState
	Facing      collision.Direction // only Left or Right
	Health      int
	Speed       float64
	VisionRange float64

	PatrolTimer float64
	DirX, DirY  float64
	Anim        graphics.Animation
}

// NewEnemy spawns a size x size enemy of variant v centered on (x, y).
func NewEnemy(v *Variant, x, y, size float64, rng *rand.Rand) *Enemy {
	return &Enemy{
		ID:          newEnemyID(rng),
		Variant:     v,
		Box:         collision.NewBoundingBox(x, y, size, size),
		State:       StatePatrolling,
		Facing:      collision.DirRight,
		Health:      v.Health,
		Speed:       v.Speed,
		VisionRange: v.VisionRange,
		PatrolTimer: mathutil.Uniform(rng, FirstPatrolMin, FirstPatrolMax),
	}
}

func newEnemyID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (e *Enemy) X() float64 { return e.Box.X }
func (e *Enemy) Y() float64 { return e.Box.Y }

func (e *Enemy) IsAlive() bool {
	return e.Health > 0
}

// TakeHit removes one health point and knocks the enemy away from the
// attacker at (attackerX, attackerY). It reports whether the enemy survived.
func (e *Enemy) TakeHit(attackerX, attackerY float64, mover Mover) bool {
	e.Health--

	if nx, ny, ok := mathutil.Normalize(e.X()-attackerX, e.Y()-attackerY); ok {
		e.move(nx*EnemyKnockback, ny*EnemyKnockback, mover)
	}
	return e.IsAlive()
}

func (e *Enemy) move(dx, dy float64, mover Mover) {
	if mover == nil {
		e.Box.MoveBy(dx, dy)
		return
	}
	mover.MoveAndCollide(e.Box, dx, dy)
}

// Sprite returns the asset key for the current walk frame.
func (e *Enemy) Sprite() string {
	return graphics.SpriteKey(e.Variant.Sprite, "walk", e.Facing == collision.DirLeft, e.Anim.Frame)
}
