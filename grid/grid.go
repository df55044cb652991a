package grid

import "fmt"

// Grid is a Width×Height block of T stored row-major in a flat slice.
type Grid[T any] struct {
	w, h int
	data []T // length == w*h
}

// New returns a width×height grid with every cell set to fill.
// Returns ErrInvalidDimensions if width or height ≤ 0.
// Complexity: O(W×H) time and memory.
func New[T any](width, height int, fill T) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	g := &Grid[T]{w: width, h: height, data: make([]T, width*height)}
	g.Fill(fill)

	return g, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// Len returns Width×Height.
func (g *Grid[T]) Len() int { return len(g.data) }

// InBounds reports whether p lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.w && p.Y >= 0 && p.Y < g.h
}

// Index maps p to its row-major offset: Y*Width + X. No bounds check.
func (g *Grid[T]) Index(p Point) int {
	return p.Y*g.w + p.X
}

// Coordinate converts a row-major offset back to a Point.
func (g *Grid[T]) Coordinate(idx int) Point {
	return Point{X: idx % g.w, Y: idx / g.w}
}

// Get returns the value at p. p must be in bounds.
func (g *Grid[T]) Get(p Point) T {
	return g.data[p.Y*g.w+p.X]
}

// Set stores v at p. p must be in bounds.
func (g *Grid[T]) Set(p Point, v T) {
	g.data[p.Y*g.w+p.X] = v
}

// Fill resets every cell to v in place.
// Complexity: O(W×H), no allocation.
func (g *Grid[T]) Fill(v T) {
	if len(g.data) == 0 {
		return
	}
	// doubling copy
	g.data[0] = v
	for n := 1; n < len(g.data); n *= 2 {
		copy(g.data[n:], g.data[:n])
	}
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)

	return &Grid[T]{w: g.w, h: g.h, data: data}
}

// Equal reports whether a and b have the same dimensions and cell values.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.w != b.w || a.h != b.h {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}
