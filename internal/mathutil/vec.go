package mathutil

import "math"

// Normalize scales (dx, dy) to unit length. A zero vector stays zero and
// ok is false.
func Normalize(dx, dy float64) (x, y float64, ok bool) {
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0, 0, false
	}
	l := math.Sqrt(lenSq)
	return dx / l, dy / l, true
}

// DistSq is the squared distance between two points.
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}
