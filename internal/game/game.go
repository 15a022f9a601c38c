package game

import (
	"math/rand"
	"time"

	"nextlevel/internal/character"
	"nextlevel/internal/collision"
	"nextlevel/internal/config"
	"nextlevel/internal/items"
	"nextlevel/internal/logger"
	"nextlevel/internal/monitoring"
	"nextlevel/internal/monster"
	"nextlevel/internal/world"

	"github.com/sirupsen/logrus"
)

// Run limits.
const (
	MaxLevels = 5
	MaxLives  = 5
)

type GameState int

const (
	StateMainMenu GameState = iota
	StateStoryIntro
	StatePlaying
	StateGameOver
	StateVictory
)

func (s GameState) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateStoryIntro:
		return "story_intro"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// LevelSource produces the grid for a level. The default runs the
// procedural generator.
type LevelSource func(width, height int, rng *rand.Rand) *world.Grid

func generatedLevel(width, height int, rng *rand.Rand) *world.Grid {
	return world.Generate(width, height, rng).Grid
}

// Game owns the whole simulation: run counters, the current level and every
// entity on it. It is mutated only by its input handlers and Step.
type Game struct {
	config  *config.Config
	rng     *rand.Rand
	log     *logrus.Entry
	monitor *monitoring.PerformanceMonitor
	combat  *CombatSystem
	source  LevelSource

	state         GameState
	level         int
	lives         int
	doorOpen      bool
	musicOn       bool
	quitRequested bool

	world     *world.Level
	collision *collision.CollisionSystem
	player    *character.Player
	enemies   []*monster.Enemy
	potions   []*items.Potion
	hitbox    *collision.BoundingBox
	lastSwing *collision.BoundingBox

	input  Input
	events []Event
}

// New creates a game in the main menu. A nil cfg uses config.Default and a
// nil rng is seeded from the clock.
func New(cfg *config.Config, rng *rand.Rand) *Game {
	if cfg == nil {
		cfg = config.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		config:  cfg,
		rng:     rng,
		log:     logger.WithComponent("game"),
		monitor: monitoring.NewPerformanceMonitor(),
		source:  generatedLevel,
	}
	g.combat = NewCombatSystem(g)
	g.Initialize()
	return g
}

// Initialize resets menu-state defaults and discards any level in progress.
func (g *Game) Initialize() {
	g.state = StateMainMenu
	g.level = 0
	g.lives = MaxLives
	g.doorOpen = false
	g.musicOn = true
	g.quitRequested = false
	g.world = nil
	g.collision = nil
	g.player = nil
	g.enemies = nil
	g.potions = nil
	g.hitbox = nil
	g.lastSwing = nil
	g.input = Input{}
	g.events = nil
}

// SetLevelSource replaces the level generator, e.g. with a fixed map.
func (g *Game) SetLevelSource(src LevelSource) {
	if src == nil {
		src = generatedLevel
	}
	g.source = src
}

func (g *Game) setState(s GameState) {
	if g.state == s {
		return
	}
	g.log.WithFields(logrus.Fields{
		"from":  g.state.String(),
		"to":    s.String(),
		"floor": g.level,
		"lives": g.lives,
	}).Info("state changed")
	g.state = s
}

func (g *Game) State() GameState { return g.state }
func (g *Game) Level() int { return g.level }
func (g *Game) Lives() int { return g.lives }
func (g *Game) DoorOpen() bool { return g.doorOpen }
func (g *Game) MusicOn() bool { return g.musicOn }
func (g *Game) QuitRequested() bool { return g.quitRequested }

func (g *Game) Config() *config.Config { return g.config }
func (g *Game) Monitor() *monitoring.PerformanceMonitor { return g.monitor }
func (g *Game) Player() *character.Player { return g.player }
func (g *Game) Enemies() []*monster.Enemy { return g.enemies }
func (g *Game) Potions() []*items.Potion { return g.potions }

// World is the current level, nil before the first level transition.
func (g *Game) World() *world.Level { return g.world }

func (g *Game) Tiles() []*world.Tile {
	if g.world == nil {
		return nil
	}
	return g.world.Tiles()
}

func (g *Game) Walls() []*world.Tile {
	if g.world == nil {
		return nil
	}
	return g.world.Walls()
}

// Door is the current level's door tile, nil when there is none.
func (g *Game) Door() *world.Tile {
	if g.world == nil {
		return nil
	}
	return g.world.Door()
}

// Hitbox is the attack rectangle of the step in progress. It is consumed by
// hit resolution, so it is always nil between steps.
func (g *Game) Hitbox() *collision.BoundingBox { return g.hitbox }

func (g *Game) HitboxActive() bool { return g.hitbox != nil }

// LastSwing is the most recent attack rectangle on this level, kept for
// debug overlays. It has no effect on the simulation.
func (g *Game) LastSwing() *collision.BoundingBox { return g.lastSwing }
