package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates that a requested width or height is non-positive.
var ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

// Point is an integer cell coordinate. X is the column, Y the row.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Offsets lists the orthogonal steps in the order every search uses them:
// right, left, down, up. Changing this order changes which of several
// equal-length paths is reported.
var Offsets = [4]Point{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

// NeighborPolicy selects how neighbor enumeration treats negative coordinates.
type NeighborPolicy int

const (
	// Strict drops every candidate with a negative X or Y.
	Strict NeighborPolicy = iota
	// Trusting yields all four candidates unchecked. The caller guarantees
	// that no expanded point lies on row 0 or column 0, usually by walling
	// the whole border.
	Trusting
)

// Valid reports whether np is a known policy.
func (np NeighborPolicy) Valid() bool {
	return np == Strict || np == Trusting
}

// String returns the policy name.
func (np NeighborPolicy) String() string {
	switch np {
	case Strict:
		return "strict"
	case Trusting:
		return "trusting"
	default:
		return fmt.Sprintf("NeighborPolicy(%d)", int(np))
	}
}
