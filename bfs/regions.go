package bfs

import "github.com/karloid/gridbfs/grid"

// Regions finds all 4-connected regions of open cells.
// Regions are discovered by a row-major scan, and the cells of each region
// are listed in the BFS order of that region's first cell, so the result
// is deterministic for a given wall map.
//
// Time:   O(W·H).
// Memory: O(W·H) for the seen flags and output.
func (pf *Pathfinder) Regions() [][]grid.Point {
	seen, _ := grid.New(pf.Width(), pf.Height(), false)
	var regions [][]grid.Point
	nbrs := make([]grid.Point, 0, len(grid.Offsets))

	for y := 0; y < pf.Height(); y++ {
		for x := 0; x < pf.Width(); x++ {
			p0 := grid.Pt(x, y)
			if pf.walls.Get(p0) || seen.Get(p0) {
				continue
			}
			seen.Set(p0, true)
			region := []grid.Point{p0}

			for qi := 0; qi < len(region); qi++ {
				nbrs = grid.Neighbors(region[qi], pf.opts.Policy, nbrs[:0])
				for _, n := range nbrs {
					if pf.walls.Get(n) || seen.Get(n) {
						continue
					}
					seen.Set(n, true)
					region = append(region, n)
				}
			}
			regions = append(regions, region)
		}
	}

	return regions
}
