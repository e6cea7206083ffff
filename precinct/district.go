package precinct

import "github.com/rakanmcmc/rakan/rakanerr"

// AssignInitial bulk-installs the Seeder's district assignment and derives
// the full overlay (members, pop totals, perimeter, foreign neighbors,
// crossing edges) from scratch in one sweep. Requires state Loaded and
// transitions Loaded→Seeded. assignment must have length N with every value
// in [0,K); a violation here is a defensive Internal error, since it is the
// Seeder's contract to guarantee I1 before calling this.
func (g *PrecinctGraph) AssignInitial(assignment []int) error {
	const op = "precinct.AssignInitial"
	g.muOverlay.Lock()
	defer g.muOverlay.Unlock()

	if g.state != Loaded {
		return rakanerr.Newf(rakanerr.IllegalTransition, op, "AssignInitial requires state Loaded, got %s", g.state)
	}
	if len(assignment) != g.n {
		return rakanerr.Newf(rakanerr.Internal, op, "assignment length %d != N=%d", len(assignment), g.n)
	}
	for _, k := range assignment {
		if k < 0 || k >= g.k {
			return rakanerr.Newf(rakanerr.Internal, op, "assignment district %d out of [0,%d)", k, g.k)
		}
	}

	g.districtOf = append(g.districtOf[:0:0], assignment...)
	g.populateDerivedStateLocked()
	g.state = Seeded
	return nil
}

// PopulateDerivedState recomputes the full overlay (members, pop totals,
// perimeter, foreign neighbors, crossing edges) from the current district
// assignment. Exposed as a standalone control-surface operation (spec §6.2)
// so external callers can re-derive overlay state without a full reseed.
// Requires state Seeded or Running.
func (g *PrecinctGraph) PopulateDerivedState() error {
	const op = "precinct.PopulateDerivedState"
	g.muOverlay.Lock()
	defer g.muOverlay.Unlock()
	if g.state != Seeded && g.state != Running {
		return rakanerr.Newf(rakanerr.IllegalTransition, op, "PopulateDerivedState requires state Seeded or Running, got %s", g.state)
	}
	g.populateDerivedStateLocked()
	return nil
}

// populateDerivedStateLocked rebuilds members/pop/perimeter/foreignNeighbors/
// crossingEdges from g.districtOf. Caller must hold muOverlay.
func (g *PrecinctGraph) populateDerivedStateLocked() {
	for i := 0; i < g.k; i++ {
		g.members[i] = make(map[int]struct{})
		g.perimeter[i] = make(map[int]struct{})
	}
	g.totalPop = make([]int, g.k)
	g.minorityPopByDst = make([]int, g.k)
	g.foreignNeighbors = make(map[int]map[int]struct{})
	g.crossingEdges = make(map[Edge]struct{})

	for v := 0; v < g.n; v++ {
		kv := g.districtOf[v]
		if kv == Unassigned {
			continue
		}
		g.members[kv][v] = struct{}{}
		g.totalPop[kv] += g.precincts[v].totalPop()
		g.minorityPopByDst[kv] += g.precincts[v].minorityPop
	}

	for v := 0; v < g.n; v++ {
		kv := g.districtOf[v]
		foreign := make(map[int]struct{}, len(g.adjacency[v]))
		for w := range g.adjacency[v] {
			if g.districtOf[w] != kv {
				foreign[w] = struct{}{}
				if w > v {
					g.crossingEdges[edgeKeyOf(v, w)] = struct{}{}
				}
			}
		}
		if len(foreign) > 0 {
			g.perimeter[kv][v] = struct{}{}
			g.foreignNeighbors[v] = foreign
		}
	}
}

// DistrictOf returns d(v), or Unassigned if v is out of range or not yet
// seeded.
func (g *PrecinctGraph) DistrictOf(v int) int {
	g.muOverlay.RLock()
	defer g.muOverlay.RUnlock()
	if v < 0 || v >= len(g.districtOf) {
		return Unassigned
	}
	return g.districtOf[v]
}

// Assignment returns a copy of the full length-N district assignment
// vector. Used by History to hold immutable snapshots.
func (g *PrecinctGraph) Assignment() []int {
	g.muOverlay.RLock()
	defer g.muOverlay.RUnlock()
	out := make([]int, len(g.districtOf))
	copy(out, g.districtOf)
	return out
}

// IsCrossing reports whether u and v currently lie in different districts.
// An accessor: never fails; out-of-range ids report false.
func (g *PrecinctGraph) IsCrossing(u, v int) bool {
	g.muOverlay.RLock()
	defer g.muOverlay.RUnlock()
	if u < 0 || u >= len(g.districtOf) || v < 0 || v >= len(g.districtOf) {
		return false
	}
	return g.districtOf[u] != g.districtOf[v]
}

// DistrictMembers returns a sorted copy of members(k), or nil if k is out
// of range.
func (g *PrecinctGraph) DistrictMembers(k int) []int {
	g.muOverlay.RLock()
	defer g.muOverlay.RUnlock()
	if k < 0 || k >= len(g.members) {
		return nil
	}
	out := make([]int, 0, len(g.members[k]))
	for v := range g.members[k] {
		out = append(out, v)
	}
	sortInts(out)
	return out
}

// DistrictTotalPop returns total_pop(k), or 0 if k is out of range.
func (g *PrecinctGraph) DistrictTotalPop(k int) int {
	g.muOverlay.RLock()
	defer g.muOverlay.RUnlock()
	if k < 0 || k >= len(g.totalPop) {
		return 0
	}
	return g.totalPop[k]
}

// DistrictMinorityPop returns minority_pop(k), or 0 if k is out of range.
func (g *PrecinctGraph) DistrictMinorityPop(k int) int {
	g.muOverlay.RLock()
	defer g.muOverlay.RUnlock()
	if k < 0 || k >= len(g.minorityPopByDst) {
		return 0
	}
	return g.minorityPopByDst[k]
}

// DistrictPerimeter returns a sorted copy of perimeter(k), or nil if k is
// out of range.
func (g *PrecinctGraph) DistrictPerimeter(k int) []int {
	g.muOverlay.RLock()
	defer g.muOverlay.RUnlock()
	if k < 0 || k >= len(g.perimeter) {
		return nil
	}
	out := make([]int, 0, len(g.perimeter[k]))
	for v := range g.perimeter[k] {
		out = append(out, v)
	}
	sortInts(out)
	return out
}

// ForeignNeighbors returns a sorted copy of foreign_neighbors(d(v), v), or
// nil if v has no foreign neighbors (including when v is interior or out
// of range).
func (g *PrecinctGraph) ForeignNeighbors(v int) []int {
	g.muOverlay.RLock()
	defer g.muOverlay.RUnlock()
	set, ok := g.foreignNeighbors[v]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sortInts(out)
	return out
}

// CrossingEdges returns a sorted copy of the global crossing-edge set.
func (g *PrecinctGraph) CrossingEdges() []Edge {
	g.muOverlay.RLock()
	defer g.muOverlay.RUnlock()
	out := make([]Edge, 0, len(g.crossingEdges))
	for e := range g.crossingEdges {
		out = append(out, e)
	}
	sortEdges(out)
	return out
}

func sortEdges(edges []Edge) {
	for i := 1; i < len(edges); i++ {
		for j := i; j > 0 && (edges[j-1].U > edges[j].U || (edges[j-1].U == edges[j].U && edges[j-1].V > edges[j].V)); j-- {
			edges[j-1], edges[j] = edges[j], edges[j-1]
		}
	}
}

// BeginWalk transitions Seeded→Running. Called once at the start of
// Sampler.Walk.
func (g *PrecinctGraph) BeginWalk() error {
	const op = "precinct.BeginWalk"
	g.muOverlay.Lock()
	defer g.muOverlay.Unlock()
	if g.state != Seeded {
		return rakanerr.Newf(rakanerr.IllegalTransition, op, "BeginWalk requires state Seeded, got %s", g.state)
	}
	g.state = Running
	return nil
}

// EndWalk transitions Running→Seeded. Called once at the end of
// Sampler.Walk, even on error.
func (g *PrecinctGraph) EndWalk() error {
	const op = "precinct.EndWalk"
	g.muOverlay.Lock()
	defer g.muOverlay.Unlock()
	if g.state != Running {
		return rakanerr.Newf(rakanerr.IllegalTransition, op, "EndWalk requires state Running, got %s", g.state)
	}
	g.state = Seeded
	return nil
}
