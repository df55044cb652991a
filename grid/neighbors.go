package grid

// Neighbors appends the orthogonal neighbors of p to buf in Offsets order
// and returns the extended slice. Under Strict, candidates with a negative
// coordinate are skipped. Candidates past Width or Height are never
// filtered here.
func Neighbors(p Point, policy NeighborPolicy, buf []Point) []Point {
	for _, d := range Offsets {
		n := Point{X: p.X + d.X, Y: p.Y + d.Y}
		if policy == Strict && (n.X < 0 || n.Y < 0) {
			continue
		}
		buf = append(buf, n)
	}

	return buf
}

// ForEachNeighbor calls fn for each neighbor of p in Offsets order, with
// the same filtering as Neighbors. Iteration stops early when fn returns false.
func ForEachNeighbor(p Point, policy NeighborPolicy, fn func(n Point) bool) {
	for _, d := range Offsets {
		n := Point{X: p.X + d.X, Y: p.Y + d.Y}
		if policy == Strict && (n.X < 0 || n.Y < 0) {
			continue
		}
		if !fn(n) {
			return
		}
	}
}
