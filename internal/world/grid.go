package world

import "strings"

// Grid is a rectangular cell map indexed [y][x].
type Grid struct {
	Width  int
	Height int
	Cells  [][]CellKind
}

// NewGrid returns a grid filled with CellWall.
func NewGrid(width, height int) *Grid {
	cells := make([][]CellKind, height)
	for y := range cells {
		cells[y] = make([]CellKind, width) // CellWall is the zero value
	}
	return &Grid{Width: width, Height: height, Cells: cells}
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell kind, treating out-of-bounds as wall.
func (g *Grid) At(x, y int) CellKind {
	if !g.InBounds(x, y) {
		return CellWall
	}
	return g.Cells[y][x]
}

// Set writes a cell; out-of-bounds writes are dropped.
func (g *Grid) Set(x, y int, kind CellKind) {
	if g.InBounds(x, y) {
		g.Cells[y][x] = kind
	}
}

// Count returns how many cells hold kind.
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for _, row := range g.Cells {
		for _, c := range row {
			if c == kind {
				n++
			}
		}
	}
	return n
}

// Floors returns the coordinates of every floor cell in row-major order.
func (g *Grid) Floors() [][2]int {
	var out [][2]int
	for y, row := range g.Cells {
		for x, c := range row {
			if c == CellFloor {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

// Rows renders the grid with one glyph per cell.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	buf := make([]byte, g.Width)
	for y, row := range g.Cells {
		for x, c := range row {
			buf[x] = c.Glyph()
		}
		rows[y] = string(buf)
	}
	return rows
}

func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
