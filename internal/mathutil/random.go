package mathutil

import "math/rand"

// RandRange returns an int in [min, max] inclusive.
func RandRange(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}

// Uniform returns a float64 in [min, max).
func Uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// WeightedIndex picks an index with probability proportional to its weight.
// Non-positive weights are never chosen; -1 means nothing could be chosen.
func WeightedIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	r := rng.Float64() * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if r < w {
			return i
		}
		r -= w
		last = i
	}
	// Float rounding can leave r marginally above the final weight.
	return last
}
