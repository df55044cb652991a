package bfs

import "github.com/karloid/gridbfs/grid"

// GenerateWalls builds the fixed obstacle layout for a width×height grid:
// the whole border, a column at x = 2*(width/10) walled from the top down
// to height - height/10, and a column at x = 8*(width/10) walled from
// height/10 to the bottom. The two offset segments force a detour between
// them.
//
// The result depends only on width and height. Sizes below 10 give
// w = 0 or h = 0 and degenerate layouts (full columns, or both segments on
// x = 0); these are accepted. Returns grid.ErrInvalidDimensions for
// width or height ≤ 0.
// Complexity: O(W×H).
func GenerateWalls(width, height int) (*grid.Grid[bool], error) {
	walls, err := grid.New(width, height, false)
	if err != nil {
		return nil, err
	}

	for x := 0; x < width; x++ {
		walls.Set(grid.Pt(x, 0), true)
		walls.Set(grid.Pt(x, height-1), true)
	}
	for y := 0; y < height; y++ {
		walls.Set(grid.Pt(0, y), true)
		walls.Set(grid.Pt(width-1, y), true)
	}

	h := height / 10
	w := width / 10
	for y := 0; y < height-h; y++ {
		walls.Set(grid.Pt(2*w, y), true)
	}
	for y := h; y < height; y++ {
		walls.Set(grid.Pt(8*w, y), true)
	}

	return walls, nil
}

// checkBorder reports whether the sides of walls that policy relies on are
// fully walled. The right and bottom sides are always required; the left
// and top sides only under grid.Trusting.
func checkBorder(walls *grid.Grid[bool], policy grid.NeighborPolicy) (grid.Point, bool) {
	w, h := walls.Width(), walls.Height()
	for y := 0; y < h; y++ {
		if p := grid.Pt(w-1, y); !walls.Get(p) {
			return p, false
		}
		if p := grid.Pt(0, y); policy == grid.Trusting && !walls.Get(p) {
			return p, false
		}
	}
	for x := 0; x < w; x++ {
		if p := grid.Pt(x, h-1); !walls.Get(p) {
			return p, false
		}
		if p := grid.Pt(x, 0); policy == grid.Trusting && !walls.Get(p) {
			return p, false
		}
	}

	return grid.Point{}, true
}
