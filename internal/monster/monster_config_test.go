package monster

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinVariants(t *testing.T) {
	require.Len(t, Variants.Variants, 3)

	tests := []struct {
		key    string
		speed  float64
		health int
	}{
		{"basic", 1, 1},
		{"ghost", 1.5, 1},
		{"cyclops", 0.5, 3},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, err := Variants.ByKey(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.speed, v.Speed)
			assert.Equal(t, tt.health, v.Health)
			assert.Equal(t, 150.0, v.VisionRange)
		})
	}

	_, err := Variants.ByKey("dragon")
	assert.Error(t, err)
}

func TestWeightsScaleWithLevel(t *testing.T) {
	assert.Equal(t, []float64{10, 5, 3}, Variants.Weights(1))
	assert.Equal(t, []float64{10, 5, 7}, Variants.Weights(5))
}

func TestChooseFollowsWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	counts := map[string]int{}
	const draws = 20000
	for i := 0; i < draws; i++ {
		counts[Variants.Choose(rng, 1).Key]++
	}

	// Weights 10:5:3 out of 18.
	assert.InDelta(t, 10.0/18, float64(counts["basic"])/draws, 0.02)
	assert.InDelta(t, 5.0/18, float64(counts["ghost"])/draws, 0.02)
	assert.InDelta(t, 3.0/18, float64(counts["cyclops"])/draws, 0.02)
}

func TestChooseFallsBackToFirst(t *testing.T) {
	table := &VariantTable{Variants: []Variant{
		{Key: "a", Sprite: "a", Speed: 1, Health: 1},
		{Key: "b", Sprite: "b", Speed: 1, Health: 1},
	}}
	assert.Equal(t, "a", table.Choose(rand.New(rand.NewSource(1)), 3).Key)
}

func TestLoadVariantTableRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "variants: []\n"},
		{"malformed", "variants: [\n"},
		{"duplicate", "variants:\n  - {key: a, sprite: a, speed: 1, health: 1}\n  - {key: a, sprite: a, speed: 1, health: 1}\n"},
		{"zero speed", "variants:\n  - {key: a, sprite: a, speed: 0, health: 1}\n"},
		{"no sprite", "variants:\n  - {key: a, speed: 1, health: 1}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadVariantTable([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}

	assert.Panics(t, func() { MustLoadVariantTable([]byte("variants: []\n")) })
}
