package bfs

import "github.com/karloid/gridbfs/grid"

// unvisited is the depth sentinel for cells not reached yet.
const unvisited int32 = -1

// state is the scratch space of one search.
type state struct {
	visited *grid.Grid[bool]
	depth   *grid.Grid[int32]
	queue   []grid.Point
	nbrs    []grid.Point
}

func newState(width, height int) *state {
	// dimensions come from an existing wall map, so New cannot fail
	visited, _ := grid.New(width, height, false)
	depth, _ := grid.New(width, height, unvisited)

	return &state{
		visited: visited,
		depth:   depth,
		queue:   make([]grid.Point, 0, width*height),
		nbrs:    make([]grid.Point, 0, len(grid.Offsets)),
	}
}

// clear resets the state for the next search without reallocating.
func (st *state) clear() {
	st.visited.Fill(false)
	st.depth.Fill(unvisited)
	st.queue = st.queue[:0]
}

// acquire checks out traversal state for one query. The returned release
// func must be called on every exit path.
func (pf *Pathfinder) acquire() (*state, func()) {
	if pf.scratch == nil {
		return newState(pf.Width(), pf.Height()), func() {}
	}
	pf.mu.Lock()
	pf.scratch.clear()

	return pf.scratch, pf.mu.Unlock
}

// Path returns the shortest route from from to to, both inclusive, moving
// one orthogonal step at a time through open cells.
//
// ok is false (with a nil error) when to cannot be reached. from == to
// yields the single-element path [from]. Among several shortest routes the
// one picked is fixed by grid.Offsets: walking back from to, each step
// takes the first neighbor one level closer to from.
//
// Returns ErrOutOfBounds or ErrWallCell if either endpoint is invalid.
// Complexity: O(W×H) time; O(W×H) memory unless scratch is reused.
func (pf *Pathfinder) Path(from, to grid.Point) (path []grid.Point, ok bool, err error) {
	if err = pf.validatePair(from, to); err != nil {
		return nil, false, err
	}
	st, release := pf.acquire()
	defer release()

	if !pf.search(st, from, to) {
		return nil, false, nil
	}

	return pf.reconstruct(st, from, to), true, nil
}

// Distance returns the number of steps on a shortest route from from to to.
// ok is false when to is unreachable. Errors as for Path.
func (pf *Pathfinder) Distance(from, to grid.Point) (steps int, ok bool, err error) {
	if err = pf.validatePair(from, to); err != nil {
		return 0, false, err
	}
	st, release := pf.acquire()
	defer release()

	if !pf.search(st, from, to) {
		return 0, false, nil
	}

	return int(st.depth.Get(to)), true, nil
}

// Reachable reports whether any route connects from and to.
func (pf *Pathfinder) Reachable(from, to grid.Point) (bool, error) {
	_, ok, err := pf.Distance(from, to)
	return ok, err
}

// search runs BFS from from until to is dequeued or the queue runs dry,
// recording each cell's depth when it is enqueued. Reports whether to
// was reached.
func (pf *Pathfinder) search(st *state, from, to grid.Point) bool {
	st.visited.Set(from, true)
	st.depth.Set(from, 0)
	st.queue = append(st.queue, from)
	pf.opts.OnEnqueue(from, 0)

	for head := 0; head < len(st.queue); head++ {
		pos := st.queue[head]
		length := st.depth.Get(pos)
		pf.opts.OnDequeue(pos, int(length))
		if pos == to {
			break
		}

		st.nbrs = grid.Neighbors(pos, pf.opts.Policy, st.nbrs[:0])
		for _, n := range st.nbrs {
			if st.visited.Get(n) || pf.walls.Get(n) {
				continue
			}
			st.visited.Set(n, true)
			st.depth.Set(n, length+1)
			st.queue = append(st.queue, n)
			pf.opts.OnEnqueue(n, int(length+1))
		}
	}

	return st.visited.Get(to)
}

// reconstruct walks the depth map back from to, taking at each step the
// first neighbor (in grid.Offsets order) whose depth is one less, then
// reverses the result so it runs from → to.
func (pf *Pathfinder) reconstruct(st *state, from, to grid.Point) []grid.Point {
	pos := to
	path := make([]grid.Point, 0, st.depth.Get(to)+1)
	path = append(path, pos)

	for pos != from {
		want := st.depth.Get(pos) - 1
		st.nbrs = grid.Neighbors(pos, pf.opts.Policy, st.nbrs[:0])
		for _, n := range st.nbrs {
			if st.depth.Get(n) == want {
				pos = n
				path = append(path, pos)
				break // first match wins
			}
		}
	}

	// reverse to get from → to
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
