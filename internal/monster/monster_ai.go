package monster

import (
	"math/rand"

	"nextlevel/internal/collision"
	"nextlevel/internal/mathutil"
)

// Update runs one AI step against a target (the player) at
// (targetX, targetY): pick a state, steer, move through collision, animate.
func (e *Enemy) Update(dt float64, targetX, targetY float64, mover Mover, rng *rand.Rand) {
	if e.CanSee(targetX, targetY) {
		e.State = StateChasing
	} else {
		e.State = StatePatrolling
	}

	switch e.State {
	case StatePatrolling:
		e.updatePatrolling(dt, rng)
	case StateChasing:
		e.updateChasing(targetX, targetY)
	}

	dx, dy := e.DirX*e.Speed, e.DirY*e.Speed
	if dx > 0 {
		e.Facing = collision.DirRight
	} else if dx < 0 {
		e.Facing = collision.DirLeft
	}

	e.move(dx, dy, mover)
	e.Anim.Advance(dt)
}

// CanSee reports whether (x, y) lies strictly inside the vision radius.
func (e *Enemy) CanSee(x, y float64) bool {
	return mathutil.DistSq(e.X(), e.Y(), x, y) < e.VisionRange*e.VisionRange
}

// updatePatrolling keeps the current heading until the timer runs out, then
// picks a random cardinal direction.
func (e *Enemy) updatePatrolling(dt float64, rng *rand.Rand) {
	e.PatrolTimer -= dt
	if e.PatrolTimer > 0 {
		return
	}
	e.PatrolTimer = mathutil.Uniform(rng, PatrolMin, PatrolMax)
	dir := cardinals[rng.Intn(len(cardinals))]
	e.DirX, e.DirY = dir[0], dir[1]
}

func (e *Enemy) updateChasing(targetX, targetY float64) {
	e.DirX, e.DirY, _ = mathutil.Normalize(targetX-e.X(), targetY-e.Y())
}
