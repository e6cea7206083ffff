package seed

import (
	"github.com/rakanmcmc/rakan/precinct"
	"github.com/rakanmcmc/rakan/rakanerr"
)

// Seed establishes an initial valid district partition over g, per spec
// §4.3: sample K distinct precinct ids uniformly without replacement as
// seeds (district i gets seed i), then grow each district outward in
// round-robin order via BFS until every precinct is assigned. Requires g
// to be in state Loaded; transitions it to Seeded on success.
func Seed(g *precinct.PrecinctGraph, opts ...Option) error {
	const op = "seed.Seed"
	cfg := newConfig(opts...)
	rng := rngFromSeed(cfg.seed)

	n, k := g.N(), g.K()
	if k > n {
		return rakanerr.Newf(rakanerr.InvalidInput, op, "K=%d exceeds N=%d: cannot pick K distinct seeds", k, n)
	}

	order := permRange(n, rng)
	seeds := order[:k]

	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = precinct.Unassigned
	}
	lastFound := make([]int, k)
	remaining := n

	for i, v := range seeds {
		assignment[v] = i
		lastFound[i] = v
		remaining--
	}

	for remaining > 0 {
		progress := false
		for kk := 0; kk < k; kk++ {
			v, found := firstUnassignedReachable(g, lastFound[kk], assignment)
			if !found {
				continue
			}
			assignment[v] = kk
			lastFound[kk] = v
			remaining--
			progress = true
		}
		if !progress {
			return rakanerr.Newf(rakanerr.SeedingFailed, op, "round-robin growth made no progress with %d precincts still unassigned", remaining)
		}
	}

	return g.AssignInitial(assignment)
}

// bfsWalker runs an unrestricted BFS over g (regardless of district),
// generalizing the teacher's bfs package's walker struct, stopping as soon
// as it discovers a vertex that is still Unassigned in assignment.
type bfsWalker struct {
	g         *precinct.PrecinctGraph
	assignment []int
	queue     []int
	visited   map[int]struct{}
}

func (w *bfsWalker) run(start int) (int, bool) {
	w.visited[start] = struct{}{}
	w.queue = append(w.queue, start)
	for len(w.queue) > 0 {
		v := w.queue[0]
		w.queue = w.queue[1:]
		if w.assignment[v] == precinct.Unassigned {
			return v, true
		}
		for _, nb := range w.g.NeighborIDs(v) {
			if _, seen := w.visited[nb]; seen {
				continue
			}
			w.visited[nb] = struct{}{}
			w.queue = append(w.queue, nb)
		}
	}
	return 0, false
}

// firstUnassignedReachable runs BFS from start over the whole graph and
// returns the first vertex found with assignment[v]==Unassigned, per spec
// §4.3's growth step. start itself is tested too (covers the case where a
// neighbor of a prior last_found was never picked up by another district).
func firstUnassignedReachable(g *precinct.PrecinctGraph, start int, assignment []int) (int, bool) {
	w := &bfsWalker{g: g, assignment: assignment, visited: make(map[int]struct{})}
	return w.run(start)
}
