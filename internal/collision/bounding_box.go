package collision

// BoundingBox represents a rectangular collision boundary
type BoundingBox struct {
	X      float64 // Center X coordinate
	Y      float64 // Center Y coordinate
	Width  float64 // Total width
	Height float64 // Total height
}

// NewBoundingBox creates a new bounding box centered at the given position
func NewBoundingBox(x, y, width, height float64) *BoundingBox {
	return &BoundingBox{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// NewBoundingBoxFromTopLeft creates a box from its top-left corner, the way
// tiles are positioned.
func NewBoundingBoxFromTopLeft(left, top, width, height float64) *BoundingBox {
	return NewBoundingBox(left+width/2, top+height/2, width, height)
}

// GetBounds returns the min/max coordinates of the bounding box
func (bb *BoundingBox) GetBounds() (minX, minY, maxX, maxY float64) {
	halfWidth := bb.Width / 2
	halfHeight := bb.Height / 2

	minX = bb.X - halfWidth
	maxX = bb.X + halfWidth
	minY = bb.Y - halfHeight
	maxY = bb.Y + halfHeight

	return minX, minY, maxX, maxY
}

// Intersects reports a strictly positive overlap area. Boxes that only share
// an edge do not intersect, so an entity can stand flush against a wall.
func (bb *BoundingBox) Intersects(other *BoundingBox) bool {
	minX1, minY1, maxX1, maxY1 := bb.GetBounds()
	minX2, minY2, maxX2, maxY2 := other.GetBounds()

	return minX1 < maxX2 && minX2 < maxX1 && minY1 < maxY2 && minY2 < maxY1
}

// Contains checks if a point is inside the bounding box
func (bb *BoundingBox) Contains(point Point) bool {
	minX, minY, maxX, maxY := bb.GetBounds()
	return point.X >= minX && point.X < maxX && point.Y >= minY && point.Y < maxY
}

// MoveTo moves the bounding box to a new center position
func (bb *BoundingBox) MoveTo(x, y float64) {
	bb.X = x
	bb.Y = y
}

// MoveBy moves the bounding box by the given offset
func (bb *BoundingBox) MoveBy(dx, dy float64) {
	bb.X += dx
	bb.Y += dy
}

// Adjacent returns a width x height box whose center sits distance away from
// this box's center along dir.
func (bb *BoundingBox) Adjacent(dir Direction, distance, width, height float64) *BoundingBox {
	ox, oy := dir.Vector()
	return NewBoundingBox(bb.X+ox*distance, bb.Y+oy*distance, width, height)
}

// Point represents a 2D coordinate
type Point struct {
	X, Y float64
}

// Direction is a four-way facing.
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

// Vector returns the unit vector for d in screen coordinates (y grows down).
func (d Direction) Vector() (float64, float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 1
	}
}

// IsHorizontal reports whether d is Left or Right.
func (d Direction) IsHorizontal() bool {
	return d == DirLeft || d == DirRight
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "down"
	}
}
