package grid

// New returns a height×width grid filled with fill.
// Negative dimensions are clamped to zero.
func New(height, width int, fill Cell) Grid {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	if height == 0 || width == 0 {
		return Grid{}
	}
	cells := make([]Cell, height*width)
	if fill != 0 {
		for i := range cells {
			cells[i] = fill
		}
	}

	return Grid{height: height, width: width, cells: cells}
}

// FromRows builds a Grid from a rectangular 2D slice, rows[y][x].
// It deep-copies the input. An empty input (no rows, or an empty first row)
// yields a 0×0 grid. Returns ErrNonRectangular if any row length differs
// from the first row's length.
// Complexity: O(W×H).
func FromRows(rows [][]Cell) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, nil
	}
	h, w := len(rows), len(rows[0])
	cells := make([]Cell, 0, h*w)
	for _, row := range rows {
		if len(row) != w {
			return Grid{}, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return Grid{height: h, width: w, cells: cells}, nil
}

// MustFromRows is FromRows that panics on ragged input. Intended for tests
// and literal fixtures.
func MustFromRows(rows [][]Cell) Grid {
	g, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return g
}

// Dimensions reports the grid's height and width.
func (g Grid) Dimensions() (height, width int) {
	return g.height, g.width
}

// Height returns the number of rows.
func (g Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g Grid) Width() int { return g.width }

// Len returns the number of cells (Height×Width).
func (g Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell at (x,y), or OutOfBounds when (x,y) is outside the grid.
func (g Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return OutOfBounds
	}

	return g.cells[g.index(x, y)]
}

// At is Get for a Point.
func (g Grid) At(p Point) Cell {
	return g.Get(p.X, p.Y)
}

// Set returns a copy of g with (x,y) set to c. Outside the grid the copy is
// returned unchanged. The receiver is never modified.
// Complexity: O(W×H).
func (g Grid) Set(x, y int, c Cell) Grid {
	out := g.Clone()
	if out.InBounds(x, y) {
		out.cells[out.index(x, y)] = c
	}

	return out
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	if len(g.cells) == 0 {
		return Grid{height: g.height, width: g.width}
	}
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)

	return Grid{height: g.height, width: g.width, cells: cells}
}

// Rows returns a freshly allocated rows[y][x] copy of the grid.
func (g Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.height)
	for y := 0; y < g.height; y++ {
		row := make([]Cell, g.width)
		copy(row, g.cells[y*g.width:(y+1)*g.width])
		rows[y] = row
	}

	return rows
}

// Equal reports whether g and other have identical dimensions and cells.
func (g Grid) Equal(other Grid) bool {
	if g.height != other.height || g.width != other.width {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

// CellsOfType lists every coordinate holding c, in row-major order.
func (g Grid) CellsOfType(c Cell) []Point {
	var pts []Point
	for i, v := range g.cells {
		if v == c {
			pts = append(pts, g.point(i))
		}
	}

	return pts
}

// Count returns how many cells hold c.
func (g Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}

	return n
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g Grid) index(x, y int) int {
	return y*g.width + x
}

// point converts a row-major index back to a Point.
func (g Grid) point(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}
