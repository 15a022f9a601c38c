package game

// Step advances the simulation by dt seconds. It does nothing outside
// Playing. Phase order: player, enemies and contact damage, sword hits,
// pickups, door exit. A step that ends the run still resolves its sword hit
// and pickups but never takes the door.
func (g *Game) Step(dt float64) {
	if g.state != StatePlaying {
		return
	}

	frameTimer := g.monitor.StartFrame()
	defer frameTimer.EndFrame()

	if hitbox := g.player.Update(dt, g.input, g.collision); hitbox != nil {
		g.hitbox = hitbox
		g.lastSwing = hitbox
		g.emit(EventAttack)
	}

	g.monitor.ProfiledFunction("enemy_update", func() {
		g.updateEnemies(dt)
	})

	g.monitor.ProfiledFunction("hit_resolution", g.combat.ResolveHitbox)
	g.collectPotions()
	if g.state == StatePlaying {
		g.checkDoorExit()
	}

	g.monitor.UpdateGameMetrics(len(g.enemies), len(g.potions), g.level)
}

// updateEnemies runs enemy AI in roster order until the first enemy touches
// the player. That enemy deals its hit and the rest of the roster waits for
// the next step.
func (g *Game) updateEnemies(dt float64) {
	px, py := g.player.X(), g.player.Y()

	for _, e := range g.enemies {
		e.Update(dt, px, py, g.collision, g.rng)

		if g.player.Box.Intersects(e.Box) {
			g.combat.HandleEnemyContact(e)
			return
		}
	}
}

func (g *Game) collectPotions() {
	remaining := g.potions[:0]
	for _, p := range g.potions {
		if g.player.Box.Intersects(p.Box) {
			g.lives = p.Collect(g.lives, MaxLives)
			g.emit(EventPotionCollected)
			continue
		}
		remaining = append(remaining, p)
	}
	g.potions = remaining
}

func (g *Game) checkDoorExit() {
	door := g.Door()
	if !g.doorOpen || door == nil {
		return
	}
	if g.player.Box.Intersects(g.world.TileBox(door)) {
		g.nextLevel()
	}
}
