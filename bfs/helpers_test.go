package bfs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/karloid/gridbfs/bfs"
	"github.com/karloid/gridbfs/grid"
)

// wallsFromRows builds a wall map from ASCII rows, '#' marking a wall.
func wallsFromRows(t testing.TB, rows ...string) *grid.Grid[bool] {
	t.Helper()
	require.NotEmpty(t, rows)
	walls, err := grid.New(len(rows[0]), len(rows), false)
	require.NoError(t, err)
	for y, row := range rows {
		require.Len(t, row, walls.Width(), "row %d", y)
		for x, c := range row {
			walls.Set(grid.Pt(x, y), c == '#')
		}
	}
	return walls
}

// referenceDistance is an independent BFS over pf's walls: map-based,
// bounds-checked, no shared code with the package under test.
func referenceDistance(pf *bfs.Pathfinder, from, to grid.Point) (int, bool) {
	dist := map[grid.Point]int{from: 0}
	queue := []grid.Point{from}
	steps := []grid.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			return dist[cur], true
		}
		for _, s := range steps {
			n := grid.Pt(cur.X+s.X, cur.Y+s.Y)
			if pf.IsWall(n) {
				continue
			}
			if _, ok := dist[n]; ok {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return 0, false
}

// openCells lists every non-wall cell of pf in row-major order.
func openCells(pf *bfs.Pathfinder) []grid.Point {
	var out []grid.Point
	for y := 0; y < pf.Height(); y++ {
		for x := 0; x < pf.Width(); x++ {
			if p := grid.Pt(x, y); !pf.IsWall(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// requireValidRoute asserts the structural properties every route must have.
func requireValidRoute(t testing.TB, pf *bfs.Pathfinder, path []grid.Point, from, to grid.Point) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, from, path[0], "route must start at from")
	require.Equal(t, to, path[len(path)-1], "route must end at to")
	for i, p := range path {
		require.False(t, pf.IsWall(p), "step %d %v is a wall", i, p)
		if i > 0 {
			require.Equal(t, 1, path[i-1].Manhattan(p), "step %d %v→%v is not orthogonal", i, path[i-1], p)
		}
	}
}

// renderRows joins rows the way Render emits them.
func renderRows(rows ...string) string {
	return strings.Join(rows, "\n") + "\n"
}
