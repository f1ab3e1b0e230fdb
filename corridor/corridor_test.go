package corridor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmap/corridor"
	"github.com/katalvlaran/lvlmap/grid"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// painted lists the cells of g holding c as a set.
func painted(g grid.Grid, c grid.Cell) map[grid.Point]bool {
	out := make(map[grid.Point]bool)
	for _, p := range g.CellsOfType(c) {
		out[p] = true
	}
	return out
}

//----------------------------------------------------------------------------//
// Line
//----------------------------------------------------------------------------//

func TestLine_Shapes(t *testing.T) {
	cases := []struct {
		name       string
		start, end grid.Point
		want       []grid.Point
	}{
		{"Single", grid.Pt(2, 2), grid.Pt(2, 2), []grid.Point{grid.Pt(2, 2)}},
		{"Horizontal", grid.Pt(0, 0), grid.Pt(3, 0),
			[]grid.Point{grid.Pt(0, 0), grid.Pt(1, 0), grid.Pt(2, 0), grid.Pt(3, 0)}},
		{"VerticalUp", grid.Pt(1, 3), grid.Pt(1, 1),
			[]grid.Point{grid.Pt(1, 3), grid.Pt(1, 2), grid.Pt(1, 1)}},
		{"Diagonal", grid.Pt(0, 0), grid.Pt(2, 2),
			[]grid.Point{grid.Pt(0, 0), grid.Pt(1, 1), grid.Pt(2, 2)}},
		{"Reverse", grid.Pt(3, 0), grid.Pt(0, 0),
			[]grid.Point{grid.Pt(3, 0), grid.Pt(2, 0), grid.Pt(1, 0), grid.Pt(0, 0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, corridor.Line(tc.start, tc.end))
		})
	}
}

// TestLine_Properties checks length, endpoints and 8-adjacency for random
// segments, including ones far outside any grid.
func TestLine_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		a := grid.Pt(r.Intn(81)-40, r.Intn(81)-40)
		b := grid.Pt(r.Intn(81)-40, r.Intn(81)-40)
		pts := corridor.Line(a, b)

		require.Len(t, pts, max(abs(b.X-a.X), abs(b.Y-a.Y))+1, "%v -> %v", a, b)
		assert.Equal(t, a, pts[0])
		assert.Equal(t, b, pts[len(pts)-1])
		for k := 1; k < len(pts); k++ {
			dx, dy := abs(pts[k].X-pts[k-1].X), abs(pts[k].Y-pts[k-1].Y)
			assert.True(t, dx <= 1 && dy <= 1 && dx+dy > 0, "step %v -> %v", pts[k-1], pts[k])
		}
	}
}

//----------------------------------------------------------------------------//
// Draw
//----------------------------------------------------------------------------//

// TestDraw_SelfPaint: start == end terminates and paints exactly the
// (2t+1)² neighborhood, clipped at the border.
func TestDraw_SelfPaint(t *testing.T) {
	g := grid.New(5, 5, grid.Wall)

	cases := []struct {
		name      string
		p         grid.Point
		thickness int
		want      int
	}{
		{"Thin", grid.Pt(2, 2), 0, 1},
		{"Centre", grid.Pt(2, 2), 1, 9},
		{"CentreWide", grid.Pt(2, 2), 2, 25},
		{"Corner", grid.Pt(0, 0), 1, 4},
		{"Edge", grid.Pt(4, 2), 1, 6},
		{"Outside", grid.Pt(9, 9), 1, 0},
		{"NegativeThickness", grid.Pt(1, 1), -3, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := corridor.Draw(g, tc.p, tc.p, grid.Floor, tc.thickness)
			got := painted(out, grid.Floor)
			assert.Len(t, got, tc.want)
			th := max(tc.thickness, 0)
			for p := range got {
				assert.LessOrEqual(t, abs(p.X-tc.p.X), th)
				assert.LessOrEqual(t, abs(p.Y-tc.p.Y), th)
			}
		})
	}
	assert.Equal(t, 0, g.Count(grid.Floor), "input grid must stay untouched")
}

func TestDraw_ThinLineMatchesBresenham(t *testing.T) {
	g := grid.New(8, 8, grid.Wall)
	start, end := grid.Pt(1, 6), grid.Pt(6, 2)

	out := corridor.Draw(g, start, end, grid.Floor, 0)
	want := make(map[grid.Point]bool)
	for _, p := range corridor.Line(start, end) {
		want[p] = true
	}
	assert.Equal(t, want, painted(out, grid.Floor))
}

// TestDraw_Thick paints a 3-wide horizontal band.
func TestDraw_Thick(t *testing.T) {
	g := grid.New(5, 7, grid.Wall)
	out := corridor.Draw(g, grid.Pt(1, 2), grid.Pt(5, 2), grid.Floor, 1)

	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			want := grid.Wall
			if y >= 1 && y <= 3 {
				want = grid.Floor
			}
			assert.Equal(t, want, out.Get(x, y), "(%d,%d)", x, y)
		}
	}
}

// TestDraw_ClipsOutOfBounds runs a diagonal from far outside the grid.
func TestDraw_ClipsOutOfBounds(t *testing.T) {
	g := grid.New(4, 4, grid.Wall)
	out := corridor.Draw(g, grid.Pt(-3, -3), grid.Pt(3, 3), grid.Floor, 0)

	assert.Equal(t, map[grid.Point]bool{
		grid.Pt(0, 0): true, grid.Pt(1, 1): true, grid.Pt(2, 2): true, grid.Pt(3, 3): true,
	}, painted(out, grid.Floor))

	empty := corridor.Draw(grid.Grid{}, grid.Pt(0, 0), grid.Pt(5, 5), grid.Floor, 2)
	assert.Equal(t, 0, empty.Len())
}
