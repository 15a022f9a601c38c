package mathutil

import "math"

func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// TileSpan returns the first and last tile index whose cell
// [t*size, (t+1)*size) strictly overlaps the open interval (lo, hi).
// last < first when the interval is empty.
func TileSpan(lo, hi, size float64) (first, last int) {
	first = int(math.Floor(lo / size))
	last = int(math.Ceil(hi/size)) - 1
	return first, last
}
