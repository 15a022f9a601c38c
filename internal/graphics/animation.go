package graphics

// AnimationInterval is the time each frame stays on screen, in seconds.
const AnimationInterval = 0.15

// FramesPerSequence is the length of every walk/idle/attack sequence.
const FramesPerSequence = 2

// Animation tracks the current frame of a looping sprite sequence.
type Animation struct {
	Frame   int
	Elapsed float64
}

// Advance accumulates dt and steps to the next frame once a full interval
// has elapsed. The accumulator restarts from zero rather than carrying the
// remainder, so long frames never skip more than one animation frame.
func (a *Animation) Advance(dt float64) bool {
	a.Elapsed += dt
	if a.Elapsed < AnimationInterval {
		return false
	}
	a.Elapsed = 0
	a.Frame = (a.Frame + 1) % FramesPerSequence
	return true
}

// Restart jumps back to the first frame without touching the accumulator.
func (a *Animation) Restart() {
	a.Frame = 0
}

// SpriteKey builds an asset key like "player_walk_left_2" from a base name,
// sequence, facing and the current frame.
func SpriteKey(base, sequence string, left bool, frame int) string {
	key := base + "_" + sequence
	if left {
		key += "_left"
	}
	return key + "_" + string(rune('1'+frame%FramesPerSequence))
}
