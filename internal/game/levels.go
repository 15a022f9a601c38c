package game

import (
	"nextlevel/internal/character"
	"nextlevel/internal/collision"
	"nextlevel/internal/items"
	"nextlevel/internal/monster"
	"nextlevel/internal/world"

	"github.com/sirupsen/logrus"
)

// nextLevel advances the level counter and either ends the run in victory
// or builds and populates a fresh level. Nothing carries over.
func (g *Game) nextLevel() {
	g.level++
	g.hitbox = nil
	g.lastSwing = nil

	if g.level > MaxLevels {
		g.setState(StateVictory)
		g.emit(EventVictory)
		g.emit(EventMusicStop)
		return
	}

	g.doorOpen = false
	g.monitor.ProfiledFunction("level_build", g.buildLevel)

	g.log.WithFields(logrus.Fields{
		"floor":   g.level,
		"enemies": len(g.enemies),
		"potions": len(g.potions),
		"door":    g.world.Door() != nil,
	}).Info("level started")
	g.emit(EventLevelStarted)

	// A level without enemies has nothing to clear.
	if len(g.enemies) == 0 {
		g.openDoor()
	}
}

func (g *Game) buildLevel() {
	tileSize := g.config.GetTileSize()
	grid := g.source(g.config.GetMapWidth(), g.config.GetMapHeight(), g.rng)

	g.world = world.Build(grid, tileSize)
	if g.collision == nil {
		g.collision = collision.NewCollisionSystem(g.world, tileSize)
	} else {
		g.collision.UpdateTileChecker(g.world)
	}

	spawns := g.world.SpawnPoints()

	// Without floor the player stands at the map center.
	px, py := float64(grid.Width)*tileSize/2, float64(grid.Height)*tileSize/2
	if p, ok := g.takeSpawn(&spawns); ok {
		px, py = p.X, p.Y
	}
	g.player = character.NewPlayer(px, py, tileSize)

	g.enemies = make([]*monster.Enemy, 0, g.level+2)
	for i := 0; i < g.level+2; i++ {
		p, ok := g.takeSpawn(&spawns)
		if !ok {
			break
		}
		variant := monster.Variants.Choose(g.rng, g.level)
		g.enemies = append(g.enemies, monster.NewEnemy(variant, p.X, p.Y, tileSize, g.rng))
	}

	g.potions = nil
	if p, ok := g.takeSpawn(&spawns); ok {
		g.potions = append(g.potions, items.NewPotion(p.X, p.Y, tileSize))
	}
}

// takeSpawn removes and returns a random candidate, keeping the order of the
// rest.
func (g *Game) takeSpawn(points *[]collision.Point) (collision.Point, bool) {
	pts := *points
	if len(pts) == 0 {
		return collision.Point{}, false
	}
	i := g.rng.Intn(len(pts))
	p := pts[i]
	*points = append(pts[:i], pts[i+1:]...)
	return p, true
}

// openDoor opens the level's door if it has one.
func (g *Game) openDoor() {
	if g.doorOpen || g.world == nil {
		return
	}
	if g.world.OpenDoor() {
		g.doorOpen = true
		g.log.WithField("floor", g.level).Info("door opened")
		g.emit(EventDoorOpened)
	}
}
