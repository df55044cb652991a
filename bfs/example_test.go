// File: bfs/example_test.go
package bfs_test

import (
	"fmt"

	"github.com/karloid/gridbfs/bfs"
	"github.com/karloid/gridbfs/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Path on a generated layout
////////////////////////////////////////////////////////////////////////////////

// ExamplePathfinder_Path routes across a generated 10×20 map.
// Scenario:
//
//   - The x=2 segment leaves a gap only at y=18; the x=8 segment only at y=1.
//   - (1,1) → (8,1) is 7 cells apart but must run down the left strip,
//     through the bottom gap, and back up.
//
// Complexity: O(W·H), Memory: O(W·H)
func ExamplePathfinder_Path() {
	pf, _ := bfs.New(10, 20)

	path, ok, err := pf.Path(grid.Pt(1, 1), grid.Pt(8, 1))
	if err != nil || !ok {
		fmt.Println("no route:", err)
		return
	}
	fmt.Println("steps:", len(path)-1)
	fmt.Print(pf.Render(path))

	// Output:
	// steps: 41
	// ##########
	// #S#*****E#
	// #*#*....##
	// #*#*....##
	// #*#*....##
	// #*#*....##
	// #*#*....##
	// #*#*....##
	// #*#*....##
	// #*#*....##
	// #*#*....##
	// #*#*....##
	// #*#*....##
	// #*#*....##
	// #*#*....##
	// #*#*....##
	// #*#*....##
	// #*#*....##
	// #***....##
	// ##########
}

////////////////////////////////////////////////////////////////////////////////
// Example: custom layout
////////////////////////////////////////////////////////////////////////////////

// ExampleNewFromWalls builds a Pathfinder over a hand-drawn maze and
// prints the route cell by cell.
func ExampleNewFromWalls() {
	rows := []string{
		"#######",
		"#..#..#",
		"#.##..#",
		"#.....#",
		"#######",
	}
	walls, _ := grid.New(len(rows[0]), len(rows), false)
	for y, row := range rows {
		for x, c := range row {
			walls.Set(grid.Pt(x, y), c == '#')
		}
	}
	pf, _ := bfs.NewFromWalls(walls)

	path, _, _ := pf.Path(grid.Pt(1, 1), grid.Pt(4, 1))
	fmt.Println(path)
	fmt.Print(pf.Render(path))

	// Output:
	// [(1,1) (1,2) (1,3) (2,3) (3,3) (4,3) (4,2) (4,1)]
	// #######
	// #S.#E.#
	// #*##*.#
	// #****.#
	// #######
}

////////////////////////////////////////////////////////////////////////////////
// Example: unreachable target
////////////////////////////////////////////////////////////////////////////////

// ExamplePathfinder_Distance shows that an unreachable target is reported
// through ok, while a wall endpoint is an error.
func ExamplePathfinder_Distance() {
	pf, _ := bfs.New(10, 10)

	d, ok, err := pf.Distance(grid.Pt(3, 1), grid.Pt(7, 8))
	fmt.Println(d, ok, err)

	_, ok, err = pf.Distance(grid.Pt(1, 1), grid.Pt(7, 8))
	fmt.Println(ok, err)

	_, _, err = pf.Distance(grid.Pt(1, 1), grid.Pt(8, 1))
	fmt.Println(err)

	// Output:
	// 11 true <nil>
	// false <nil>
	// bfs: point is a wall cell: to (8,1)
}
