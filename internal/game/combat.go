package game

import (
	"nextlevel/internal/monster"

	"github.com/sirupsen/logrus"
)

// CombatSystem resolves contact damage and sword hits.
type CombatSystem struct {
	game *Game
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(game *Game) *CombatSystem {
	return &CombatSystem{game: game}
}

// HandleEnemyContact applies one touch from e to the player. It returns true
// when the hit ended the run.
func (cs *CombatSystem) HandleEnemyContact(e *monster.Enemy) bool {
	g := cs.game
	if !g.player.TakeHit(e.X(), e.Y(), g.collision) {
		return false
	}

	g.lives--
	g.emit(EventPlayerHurt)
	g.log.WithFields(logrus.Fields{
		"lives": g.lives,
		"enemy": e.Variant.Key,
	}).Debug("player hurt")

	if g.lives > 0 {
		return false
	}
	g.setState(StateGameOver)
	g.emit(EventGameOver)
	g.emit(EventMusicStop)
	return true
}

// ResolveHitbox damages every enemy overlapping the current attack hitbox,
// removes the dead, and opens the door once the roster is empty. The hitbox
// is consumed either way.
func (cs *CombatSystem) ResolveHitbox() {
	g := cs.game
	if g.hitbox == nil {
		return
	}
	defer func() { g.hitbox = nil }()

	px, py := g.player.X(), g.player.Y()
	survivors := make([]*monster.Enemy, 0, len(g.enemies))
	killed := 0
	for _, e := range g.enemies {
		if g.hitbox.Intersects(e.Box) && !e.TakeHit(px, py, g.collision) {
			killed++
			g.emit(EventEnemyKilled)
			continue
		}
		survivors = append(survivors, e)
	}
	g.enemies = survivors
	g.monitor.AddKills(killed)

	if len(g.enemies) == 0 {
		g.openDoor()
	}
}
