package monster

type EnemyState int

const (
	StatePatrolling EnemyState = iota
	StateChasing
)

func (s EnemyState) String() string {
	if s == StateChasing {
		return "chasing"
	}
	return "patrolling"
}

// Patrol timer ranges in seconds.
const (
	FirstPatrolMin = 1.0
	FirstPatrolMax = 3.0
	PatrolMin      = 2.0
	PatrolMax      = 5.0
)

// EnemyKnockback is how far a sword hit pushes an enemy.
const EnemyKnockback = 8.0

var cardinals = [4][2]float64{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
