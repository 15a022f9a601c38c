package game

import "nextlevel/internal/character"

// Input is the held movement and attack keys for the next steps.
type Input = character.Input

// Key identifies a discrete key press.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
)

// SetInput records the keys held for subsequent steps.
func (g *Game) SetInput(in Input) {
	g.input = in
}

// HandleConfirmKey returns to the main menu from GameOver or Victory on
// Escape. Any other key or state is ignored.
func (g *Game) HandleConfirmKey(key Key) {
	if key != KeyEscape {
		return
	}
	if g.state == StateGameOver || g.state == StateVictory {
		g.setState(StateMainMenu)
	}
}
