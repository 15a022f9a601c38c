package sprites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestPlaceholderColor(t *testing.T) {
	assert.Equal(t, colornames.Deepskyblue, PlaceholderColor("player_walk_left_1"))
	assert.Equal(t, colornames.Lavender, PlaceholderColor("ghost_walk_2"))
	assert.Equal(t, colornames.Gold, PlaceholderColor("door"))
	assert.Equal(t, colornames.Sienna, PlaceholderColor("closed_door"))
	assert.Equal(t, colornames.Magenta, PlaceholderColor("unknown_asset"))
}
