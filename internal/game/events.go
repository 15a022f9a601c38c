package game

// Event is a cue for the presentation layer, mostly sounds and music.
type Event int

const (
	EventAttack Event = iota
	EventLevelStarted
	EventDoorOpened
	EventPlayerHurt
	EventEnemyKilled
	EventPotionCollected
	EventGameOver
	EventVictory
	EventMusicStart
	EventMusicStop
)

var eventNames = [...]string{
	EventAttack:          "attack",
	EventLevelStarted:    "level_started",
	EventDoorOpened:      "door_opened",
	EventPlayerHurt:      "player_hurt",
	EventEnemyKilled:     "enemy_killed",
	EventPotionCollected: "potion_collected",
	EventGameOver:        "game_over",
	EventVictory:         "victory",
	EventMusicStart:      "music_start",
	EventMusicStop:       "music_stop",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// Events returns the cues recorded since the last call, oldest first, and
// clears the queue.
func (g *Game) Events() []Event {
	events := g.events
	g.events = nil
	return events
}
