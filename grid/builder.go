package grid

// Builder applies a batch of writes to a private copy of a Grid.
// It is the only mutable view of grid data in lvlmap: NewBuilder copies the
// source, Set writes in place, and Freeze hands the cells over to a new Grid.
// After Freeze the builder is detached and further writes are dropped.
// A Builder must not be shared between goroutines.
type Builder struct {
	g      Grid
	frozen bool
}

// NewBuilder starts a write batch over a copy of g.
// Complexity: O(W×H).
func NewBuilder(g Grid) *Builder {
	return &Builder{g: g.Clone()}
}

// Dimensions reports the height and width of the grid under construction.
func (b *Builder) Dimensions() (height, width int) {
	return b.g.height, b.g.width
}

// Get reads a cell from the grid under construction; OutOfBounds outside.
func (b *Builder) Get(x, y int) Cell {
	return b.g.Get(x, y)
}

// Set writes c at (x,y). Writes outside the grid, or after Freeze, are dropped.
// It reports whether the write landed.
func (b *Builder) Set(x, y int, c Cell) bool {
	if b.frozen || !b.g.InBounds(x, y) {
		return false
	}
	b.g.cells[b.g.index(x, y)] = c

	return true
}

// Freeze ends the batch and returns the resulting Grid.
// Calling Freeze again returns the same grid.
func (b *Builder) Freeze() Grid {
	b.frozen = true

	return b.g
}
