package bfs

import (
	"fmt"
	"sync"

	"github.com/karloid/gridbfs/grid"
)

// Pathfinder answers shortest-path queries against a fixed wall layout.
// The wall map is read-only after construction and may be read from any
// number of goroutines. With WithScratchReuse, queries on one Pathfinder
// take turns on a single traversal state; otherwise each query allocates
// its own and queries run fully in parallel.
type Pathfinder struct {
	walls *grid.Grid[bool]
	opts  Options

	mu      sync.Mutex // guards scratch
	scratch *state
}

// New returns a Pathfinder over a width×height grid whose walls are built
// by GenerateWalls. Returns grid.ErrInvalidDimensions for width or
// height ≤ 0 and ErrOptionViolation for a bad Option.
// Complexity: O(W×H).
func New(width, height int, opts ...Option) (*Pathfinder, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	walls, err := GenerateWalls(width, height)
	if err != nil {
		return nil, err
	}

	return newPathfinder(walls, o), nil
}

// NewFromWalls returns a Pathfinder over a deep copy of walls.
// The right and bottom border of walls must be fully walled, since
// neighbor enumeration never filters the high end; under grid.Trusting
// the left and top border must be walled too. Returns ErrNilWalls,
// ErrUnguardedBorder or ErrOptionViolation.
// Complexity: O(W×H).
func NewFromWalls(walls *grid.Grid[bool], opts ...Option) (*Pathfinder, error) {
	if walls == nil {
		return nil, ErrNilWalls
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if p, ok := checkBorder(walls, o.Policy); !ok {
		return nil, fmt.Errorf("%w: open cell %v under %s policy", ErrUnguardedBorder, p, o.Policy)
	}

	return newPathfinder(walls.Clone(), o), nil
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func newPathfinder(walls *grid.Grid[bool], o Options) *Pathfinder {
	pf := &Pathfinder{walls: walls, opts: o}
	if o.ReuseScratch {
		pf.scratch = newState(walls.Width(), walls.Height())
	}

	return pf
}

// Width returns the number of grid columns.
func (pf *Pathfinder) Width() int { return pf.walls.Width() }

// Height returns the number of grid rows.
func (pf *Pathfinder) Height() int { return pf.walls.Height() }

// IsWall reports whether p is impassable. Points outside the grid count as walls.
func (pf *Pathfinder) IsWall(p grid.Point) bool {
	return !pf.walls.InBounds(p) || pf.walls.Get(p)
}

// Walls returns a copy of the wall map.
func (pf *Pathfinder) Walls() *grid.Grid[bool] {
	return pf.walls.Clone()
}

// Policy returns the neighbor policy in effect.
func (pf *Pathfinder) Policy() grid.NeighborPolicy {
	return pf.opts.Policy
}

// validate rejects query points that are out of bounds or on a wall.
func (pf *Pathfinder) validate(role string, p grid.Point) error {
	if !pf.walls.InBounds(p) {
		return fmt.Errorf("%w: %s %v outside %dx%d", ErrOutOfBounds, role, p, pf.Width(), pf.Height())
	}
	if pf.walls.Get(p) {
		return fmt.Errorf("%w: %s %v", ErrWallCell, role, p)
	}

	return nil
}

func (pf *Pathfinder) validatePair(from, to grid.Point) error {
	if err := pf.validate("from", from); err != nil {
		return err
	}

	return pf.validate("to", to)
}
