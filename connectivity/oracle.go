package connectivity

import "github.com/rakanmcmc/rakan/precinct"

// walker encapsulates mutable state for a restricted BFS, generalizing the
// teacher's bfs package's walker struct (queue/visited) to a traversal that
// only enters vertices accepted by eligible, with the start vertex always
// admitted regardless of eligible.
type walker struct {
	g        *precinct.PrecinctGraph
	eligible func(int) bool
	queue    []int
	visited  map[int]struct{}
}

func (w *walker) run(start int) map[int]struct{} {
	w.visited[start] = struct{}{}
	w.queue = append(w.queue, start)
	for len(w.queue) > 0 {
		v := w.queue[0]
		w.queue = w.queue[1:]
		for _, nb := range w.g.NeighborIDs(v) {
			if _, seen := w.visited[nb]; seen {
				continue
			}
			if !w.eligible(nb) {
				continue
			}
			w.visited[nb] = struct{}{}
			w.queue = append(w.queue, nb)
		}
	}
	return w.visited
}

// restrictedBFS runs a BFS from start, entering only vertices for which
// eligible returns true (start itself is always entered).
func restrictedBFS(g *precinct.PrecinctGraph, start int, eligible func(int) bool) map[int]struct{} {
	w := &walker{g: g, eligible: eligible, visited: make(map[int]struct{})}
	return w.run(start)
}

// OracleWouldStayConnected asks whether reassigning v from its current
// district to kNew would leave both the old and new districts internally
// connected, per the algorithm of spec §4.2. It does not mutate g; it
// reasons about the proposed move against a snapshot of g's current state.
func OracleWouldStayConnected(g *precinct.PrecinctGraph, v, kNew int) bool {
	kOld := g.DistrictOf(v)
	if kOld == kNew {
		return true
	}

	neighbors := g.NeighborIDs(v)

	var a []int
	for _, w := range neighbors {
		if g.DistrictOf(w) == kOld {
			a = append(a, w)
		}
	}

	oldOK := true
	if len(a) > 1 {
		a0 := a[0]
		eligible := func(w int) bool { return w != v && g.DistrictOf(w) == kOld }
		reached := restrictedBFS(g, a0, eligible)
		for _, other := range a[1:] {
			if _, ok := reached[other]; !ok {
				oldOK = false
				break
			}
		}
	}

	var b []int
	for _, w := range neighbors {
		if g.DistrictOf(w) == kNew {
			b = append(b, w)
		}
	}

	newOK := true
	eligibleNew := func(w int) bool { return w == v || g.DistrictOf(w) == kNew }
	reachedNew := restrictedBFS(g, v, eligibleNew)
	for _, other := range b {
		if _, ok := reachedNew[other]; !ok {
			newOK = false
			break
		}
	}

	return oldOK && newOK
}
