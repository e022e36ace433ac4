package game

import "fmt"

// Cell is a grid coordinate. Col grows rightward, Row grows downward
// (screen convention, same orientation as the pixel space callers render in).
type Cell struct {
	Col, Row int
}

// Add returns the cell one step over in the given direction.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{Col: c.Col + dx, Row: c.Row + dy}
}

// Pixel returns the top-left pixel of the cell for a given cell size.
func (c Cell) Pixel(size int) (x, y int) {
	return c.Col * size, c.Row * size
}

// Rect returns the cell's pixel bounding box.
func (c Cell) Rect(size int) Rect {
	x, y := c.Pixel(size)
	return Rect{X0: x, Y0: y, X1: x + size, Y1: y + size}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// cellOf snaps a pixel coordinate down to its grid index.
// Floor (not truncation) so negative coordinates snap leftward/upward.
func cellOf(px, size int) int {
	return floorDiv(px, size)
}

// Direction is one of the four grid movement vectors.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit cell offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the 180° reverse of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	}
	return DirLeft
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	}
	return "right"
}

// Rect is an axis-aligned rectangle in pixel space.
type Rect struct {
	X0, Y0 int
	X1, Y1 int
}

// Intersects reports whether the rectangles overlap.
// Touching edges do not count as overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}
