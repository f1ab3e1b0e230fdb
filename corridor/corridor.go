package corridor

import "github.com/katalvlaran/lvlmap/grid"

// Line returns the Bresenham points from start to end, both inclusive.
// start == end yields the single point. The loop advances the error term
// at most once per axis per step and stops on reaching end, so it always
// terminates after max(|dx|, |dy|)+1 points.
func Line(start, end grid.Point) []grid.Point {
	dx := abs(end.X - start.X)
	dy := abs(end.Y - start.Y)
	stepX, stepY := 1, 1
	if end.X < start.X {
		stepX = -1
	}
	if end.Y < start.Y {
		stepY = -1
	}

	pts := make([]grid.Point, 0, max(dx, dy)+1)
	err := dx - dy
	p := start
	for {
		pts = append(pts, p)
		if p == end {
			return pts
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			p.X += stepX
		}
		if e2 < dx {
			err += dx
			p.Y += stepY
		}
	}
}

// Draw returns a copy of g with a corridor of cell painted from start to end.
// Thickness 0 paints a one-cell line; thickness t paints the (2t+1)² square
// around each Bresenham point. Negative thickness is treated as 0.
func Draw(g grid.Grid, start, end grid.Point, cell grid.Cell, thickness int) grid.Grid {
	b := grid.NewBuilder(g)
	Carve(b, start, end, cell, thickness)

	return b.Freeze()
}

// Carve paints the corridor from start to end into b.
func Carve(b *grid.Builder, start, end grid.Point, cell grid.Cell, thickness int) {
	for _, p := range Line(start, end) {
		Stamp(b, p, cell, thickness)
	}
}

// Stamp paints the square of half-width thickness centred on p, clipped to
// the grid.
func Stamp(b *grid.Builder, p grid.Point, cell grid.Cell, thickness int) {
	if thickness < 0 {
		thickness = 0
	}
	h, w := b.Dimensions()
	x0, x1 := max(p.X-thickness, 0), min(p.X+thickness, w-1)
	y0, y1 := max(p.Y-thickness, 0), min(p.Y+thickness, h-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			b.Set(x, y, cell)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
