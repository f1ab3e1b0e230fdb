// Package grid provides the fixed-size, row-major cell grid that every other
// lvlmap package reads from and carves into.
//
// What:
//
//   - Grid holds small integer cell-type codes (Cell) for a Height×Width map.
//   - Get/Set are bounds-safe: reads outside the grid yield OutOfBounds (-1),
//     writes outside the grid are silently dropped.
//   - Grid has value semantics. Set returns a new Grid and never touches the
//     receiver, so every transformation stage can be composed and tested on
//     its own.
//   - Builder owns exclusive write access to a private copy while a batch of
//     writes is applied (a corridor, a whole connectivity pass) and freezes
//     into a new immutable Grid at the end.
//
// Why:
//
//   - Rasterisers and strategies near the grid edges never need their own
//     bounds guards.
//   - No aliasing hazards: two callers holding the same Grid always observe
//     the same cells.
//
// Complexity:
//
//   - Get, InBounds, Dimensions: O(1).
//   - Set, Clone, NewBuilder:    O(W×H) (copy-on-write).
//   - Builder.Set/Get:           O(1); Freeze: O(1) (ownership moves).
//
// Errors:
//
//   - ErrNonRectangular: FromRows received rows of differing lengths.
package grid
