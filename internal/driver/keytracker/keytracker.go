// Package keytracker turns Ebiten's level-triggered key and mouse state into
// edge-triggered presses.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// StateTracker remembers whether a button was down on the previous poll.
type StateTracker struct {
	prevPressed bool
}

// Observe records the current state and reports a press edge.
func (s *StateTracker) Observe(pressed bool) bool {
	justPressed := pressed && !s.prevPressed
	s.prevPressed = pressed
	return justPressed
}

// KeyStateTracker tracks the previous state of a key.
type KeyStateTracker struct {
	StateTracker
}

// IsKeyJustPressed returns true if the key was not pressed last frame but is pressed this frame.
func (k *KeyStateTracker) IsKeyJustPressed(key ebiten.Key) bool {
	return k.Observe(ebiten.IsKeyPressed(key))
}

// MouseStateTracker tracks the previous state of a mouse button.
type MouseStateTracker struct {
	StateTracker
}

// IsButtonJustPressed returns true on the frame the button goes down.
func (m *MouseStateTracker) IsButtonJustPressed(button ebiten.MouseButton) bool {
	return m.Observe(ebiten.IsMouseButtonPressed(button))
}
