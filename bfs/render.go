package bfs

import (
	"strings"

	"github.com/karloid/gridbfs/grid"
)

// Map glyphs used by Render.
const (
	GlyphWall  = '#'
	GlyphOpen  = '.'
	GlyphPath  = '*'
	GlyphStart = 'S'
	GlyphEnd   = 'E'
)

// Render draws the wall map as text, one line per row, with path overlaid:
// its first point as S, its last as E and the rest as *. Path points
// outside the grid are ignored. A nil path renders the bare map.
func (pf *Pathfinder) Render(path []grid.Point) string {
	w, h := pf.Width(), pf.Height()
	cells := make([]byte, w*h)
	for i := range cells {
		if pf.walls.Get(pf.walls.Coordinate(i)) {
			cells[i] = GlyphWall
		} else {
			cells[i] = GlyphOpen
		}
	}
	for i, p := range path {
		if !pf.walls.InBounds(p) {
			continue
		}
		switch i {
		case 0:
			cells[pf.walls.Index(p)] = GlyphStart
		case len(path) - 1:
			cells[pf.walls.Index(p)] = GlyphEnd
		default:
			cells[pf.walls.Index(p)] = GlyphPath
		}
	}

	var sb strings.Builder
	sb.Grow((w + 1) * h)
	for y := 0; y < h; y++ {
		sb.Write(cells[y*w : (y+1)*w])
		sb.WriteByte('\n')
	}

	return sb.String()
}
