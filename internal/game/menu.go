package game

import "nextlevel/internal/collision"

// Button names.
const (
	ButtonStart = "start"
	ButtonMusic = "music"
	ButtonExit  = "exit"
)

// Button is a clickable main-menu region.
type Button struct {
	Name   string
	Sprite string
	Box    *collision.BoundingBox
}

// Buttons lays out the main menu for the configured screen size, in hit-test
// order.
func (g *Game) Buttons() []Button {
	w := float64(g.config.GetScreenWidth())

	music := "button_music_off"
	if g.musicOn {
		music = "button_music_on"
	}

	return []Button{
		{Name: ButtonStart, Sprite: "button_start", Box: collision.NewBoundingBox(w/2, 250, 200, 60)},
		{Name: ButtonMusic, Sprite: music, Box: collision.NewBoundingBox(w-50, 50, 60, 60)},
		{Name: ButtonExit, Sprite: "button_exit", Box: collision.NewBoundingBox(w/2, 350, 200, 60)},
	}
}

// HandlePointerSelect dispatches a click at screen position (x, y).
func (g *Game) HandlePointerSelect(x, y float64) {
	switch g.state {
	case StateMainMenu:
		g.handleMenuClick(collision.Point{X: x, Y: y})
	case StateStoryIntro:
		g.startRun()
	}
}

func (g *Game) handleMenuClick(p collision.Point) {
	for _, b := range g.Buttons() {
		if !b.Box.Contains(p) {
			continue
		}
		switch b.Name {
		case ButtonStart:
			g.setState(StateStoryIntro)
		case ButtonMusic:
			g.musicOn = !g.musicOn
			g.log.WithField("music", g.musicOn).Info("music toggled")
		case ButtonExit:
			g.quitRequested = true
			g.log.Info("quit requested")
		}
		return
	}
}

// startRun begins a fresh run from the story screen.
func (g *Game) startRun() {
	g.setState(StatePlaying)
	g.level = 0
	g.lives = MaxLives
	g.monitor.Reset()
	g.nextLevel()
	if g.state == StatePlaying && g.musicOn {
		g.emit(EventMusicStart)
	}
}

var storyLines = []string{
	"Controls:",
	"WASD - Move",
	"Space - Attack",
	"",
	"The kingdom's princess has fallen gravely ill.",
	"The only hope is a rare antidote,",
	"found in the depths of the Champions' Dungeon.",
	"",
	"As the bravest hero of the realm,",
	"you descended to the lowest level and found the cure.",
	"",
	"Now the hardest task begins:",
	"survive, defeat every enemy on each floor",
	"and return to the surface with the antidote.",
	"",
	"Click to continue...",
}

// StoryLines is the text of the story screen, control hints first.
func (g *Game) StoryLines() []string {
	lines := make([]string, len(storyLines))
	copy(lines, storyLines)
	return lines
}
