package grid

import (
	"errors"
	"fmt"
)

// ErrNonRectangular indicates rows of differing lengths passed to FromRows.
var ErrNonRectangular = errors.New("grid: all rows must have the same length")

// Cell is a cell-type tag. Only equality carries meaning.
type Cell int

// Common cell tags used by pattern generators and connectivity passes.
const (
	// OutOfBounds is returned by Get for coordinates outside the grid.
	OutOfBounds Cell = -1
	// Wall is an impassable cell.
	Wall Cell = 0
	// Floor is a traversable cell; the default carve type.
	Floor Cell = 1
	// Feature marks a point of interest placed on a floor.
	Feature Cell = 2
)

// Point is an integer grid coordinate: X indexes columns, Y indexes rows.
// Points outside the grid are valid inputs everywhere in lvlmap.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is an immutable Height×Width map of cells stored row-major.
// The zero value is a valid 0×0 grid.
type Grid struct {
	height, width int
	cells         []Cell
}
