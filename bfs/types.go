// Package bfs provides tunable options and error definitions
// for breadth-first search over a walled grid.
package bfs

import (
	"errors"
	"fmt"

	"github.com/karloid/gridbfs/grid"
)

// Sentinel errors for Pathfinder construction and queries.
var (
	// ErrOutOfBounds is returned when a query point lies outside the grid.
	ErrOutOfBounds = errors.New("bfs: point out of bounds")

	// ErrWallCell is returned when a query point sits on a wall.
	ErrWallCell = errors.New("bfs: point is a wall cell")

	// ErrNilWalls is returned if a nil wall map is passed to NewFromWalls.
	ErrNilWalls = errors.New("bfs: wall map is nil")

	// ErrUnguardedBorder is returned when a custom wall map leaves a border
	// cell open that the neighbor policy relies on being walled.
	ErrUnguardedBorder = errors.New("bfs: border is not fully walled")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a Pathfinder via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// by the constructor.
type Option func(*Options)

// Options holds the parameters and callbacks of a Pathfinder.
type Options struct {
	// Policy controls negative-coordinate filtering during neighbor enumeration.
	Policy grid.NeighborPolicy

	// ReuseScratch keeps one traversal state owned by the Pathfinder and
	// clears it before each query instead of allocating a fresh one.
	ReuseScratch bool

	// OnEnqueue is called when a cell is discovered, with its depth.
	OnEnqueue func(p grid.Point, depth int)

	// OnDequeue is called when a cell is taken from the front of the queue.
	OnDequeue func(p grid.Point, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - grid.Strict neighbor policy
//   - fresh traversal state per query
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Policy:       grid.Strict,
		ReuseScratch: false,
		OnEnqueue:    func(grid.Point, int) {},
		OnDequeue:    func(grid.Point, int) {},
	}
}

// WithNeighborPolicy selects the neighbor policy. Unknown values are an
// ErrOptionViolation.
func WithNeighborPolicy(p grid.NeighborPolicy) Option {
	return func(o *Options) {
		if !p.Valid() {
			o.err = fmt.Errorf("%w: unknown neighbor policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Policy = p
	}
}

// WithScratchReuse makes the Pathfinder keep a single traversal state
// and reuse it across queries. Queries on the same Pathfinder then
// serialize on that state.
func WithScratchReuse() Option {
	return func(o *Options) {
		o.ReuseScratch = true
	}
}

// WithOnEnqueue registers a callback to run when a cell is enqueued.
func WithOnEnqueue(fn func(p grid.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a cell is dequeued.
func WithOnDequeue(fn func(p grid.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
