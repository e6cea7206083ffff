package precinct

import "github.com/rakanmcmc/rakan/rakanerr"

// SetDistrict reassigns v to kNew, incrementally updating members,
// total/minority population, crossing edges, and perimeter/foreign-neighbor
// state for v and every neighbor of v, per the algorithm of spec §4.1.
// Complexity: O(deg(v)). Requires state Seeded or Running.
func (g *PrecinctGraph) SetDistrict(v, kNew int) error {
	const op = "precinct.SetDistrict"
	g.muOverlay.Lock()
	defer g.muOverlay.Unlock()

	if g.state != Seeded && g.state != Running {
		return rakanerr.Newf(rakanerr.IllegalTransition, op, "SetDistrict requires state Seeded or Running, got %s", g.state)
	}
	if v < 0 || v >= g.n {
		return rakanerr.Newf(rakanerr.InvalidInput, op, "precinct id %d out of range [0,%d)", v, g.n)
	}
	if kNew < 0 || kNew >= g.k {
		return rakanerr.Newf(rakanerr.InvalidInput, op, "district %d out of range [0,%d)", kNew, g.k)
	}

	kOld := g.districtOf[v]
	if kOld == kNew {
		return nil
	}

	t := g.precincts[v].totalPop()
	m := g.precincts[v].minorityPop

	delete(g.members[kOld], v)
	g.totalPop[kOld] -= t
	g.minorityPopByDst[kOld] -= m

	g.members[kNew][v] = struct{}{}
	g.totalPop[kNew] += t
	g.minorityPopByDst[kNew] += m

	g.districtOf[v] = kNew

	for w := range g.adjacency[v] {
		key := edgeKeyOf(v, w)
		if g.districtOf[w] != kNew {
			g.crossingEdges[key] = struct{}{}
		} else {
			delete(g.crossingEdges, key)
		}
	}

	delete(g.perimeter[kOld], v)
	g.recomputePerimeterOfLocked(v)
	for w := range g.adjacency[v] {
		g.recomputePerimeterOfLocked(w)
	}

	return nil
}

// recomputePerimeterOfLocked recomputes whether v belongs to
// perimeter(d(v)) and its foreign_neighbors entry, from v's current
// district and neighbor districts. Caller must hold muOverlay.
func (g *PrecinctGraph) recomputePerimeterOfLocked(v int) {
	kv := g.districtOf[v]
	foreign := make(map[int]struct{}, len(g.adjacency[v]))
	for w := range g.adjacency[v] {
		if g.districtOf[w] != kv {
			foreign[w] = struct{}{}
		}
	}
	if len(foreign) > 0 {
		g.perimeter[kv][v] = struct{}{}
		g.foreignNeighbors[v] = foreign
	} else {
		delete(g.perimeter[kv], v)
		delete(g.foreignNeighbors, v)
	}
}
