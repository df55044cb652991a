// Package grid provides the dense 2D storage that backs both the wall map
// and the per-query traversal state of the bfs package.
//
// What:
//
//   - Point is an (X, Y) integer coordinate, comparable and usable as a key.
//   - Grid[T] stores Width×Height values of any type in one row-major slice.
//   - Neighbors / ForEachNeighbor enumerate the four orthogonal neighbors of
//     a point in the fixed Offsets order.
//
// Why:
//
//   - O(1) indexed access addressed by 2D coordinates.
//   - Fill resets every cell in place so scratch grids can be reused
//     between searches without reallocating.
//
// Bounds:
//
//	Get and Set do not check bounds. A point outside [0,Width)×[0,Height)
//	panics with the runtime index error, or silently aliases another cell
//	when only one coordinate overflows. Callers keep their points in range
//	through the neighbor contract: NeighborPolicy.Strict drops negative
//	coordinates, and the high end is never filtered here, so a grid must
//	always carry a walled right and bottom border that stops expansion
//	before it reaches Width or Height.
//
// Neighbor order:
//
//	Offsets is right, left, down, up (Y grows downward). Searches rely on
//	this order for deterministic tie-breaking between equal-length paths.
//
// Complexity:
//
//   - New, Fill, Clone, Equal: O(W×H) time.
//   - Get, Set, Index, Coordinate, InBounds: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height ≤ 0.
package grid
