package precinct

import "github.com/rakanmcmc/rakan/rakanerr"

// AddPrecinct appends a new precinct and returns its densely-assigned id.
// Fails with InvalidInput if more than N precincts are added, or if either
// population is negative.
func (g *PrecinctGraph) AddPrecinct(county, minorityPop, majorityPop int) (int, error) {
	const op = "precinct.AddPrecinct"
	g.muStatic.Lock()
	defer g.muStatic.Unlock()

	if g.numAdded >= g.n {
		return 0, rakanerr.Newf(rakanerr.InvalidInput, op, "cannot add precinct %d: graph capacity is N=%d", g.numAdded, g.n)
	}
	if minorityPop < 0 {
		return 0, rakanerr.Newf(rakanerr.InvalidInput, op, "minority population must be >= 0, got %d", minorityPop)
	}
	if majorityPop < 0 {
		return 0, rakanerr.Newf(rakanerr.InvalidInput, op, "majority population must be >= 0, got %d", majorityPop)
	}

	id := g.numAdded
	g.precincts = append(g.precincts, precinctData{
		county:      county,
		minorityPop: minorityPop,
		majorityPop: majorityPop,
	})
	g.numAdded++
	return id, nil
}

// AddEdge records geographic adjacency between u and v. Idempotent: adding
// the same pair twice is a no-op. Fails with InvalidInput if either id is
// out of [0,N) range, or if u==v (precincts are not adjacent to themselves).
func (g *PrecinctGraph) AddEdge(u, v int) error {
	const op = "precinct.AddEdge"
	g.muStatic.Lock()
	defer g.muStatic.Unlock()

	if u < 0 || u >= g.n {
		return rakanerr.Newf(rakanerr.InvalidInput, op, "precinct id %d out of range [0,%d)", u, g.n)
	}
	if v < 0 || v >= g.n {
		return rakanerr.Newf(rakanerr.InvalidInput, op, "precinct id %d out of range [0,%d)", v, g.n)
	}
	if u == v {
		return rakanerr.Newf(rakanerr.InvalidInput, op, "self-loop not allowed: %d", u)
	}

	if _, ok := g.adjacency[u][v]; ok {
		return nil
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	return nil
}

// FinishLoading validates that exactly N precincts were added, computes
// S = Σ t(v), checks it against any declared S, and transitions Idle→Loaded.
// It also defensively checks adjacency symmetry. On success it allocates the
// per-district overlay storage sized to K.
func (g *PrecinctGraph) FinishLoading() error {
	const op = "precinct.FinishLoading"
	g.muStatic.Lock()
	defer g.muStatic.Unlock()
	g.muOverlay.Lock()
	defer g.muOverlay.Unlock()

	if g.state != Idle {
		return rakanerr.Newf(rakanerr.IllegalTransition, op, "FinishLoading requires state Idle, got %s", g.state)
	}
	if g.numAdded != g.n {
		return rakanerr.Newf(rakanerr.InvalidInput, op, "expected %d precincts, got %d", g.n, g.numAdded)
	}

	sum := 0
	for _, p := range g.precincts {
		sum += p.totalPop()
	}
	if g.declaredPop != -1 && g.declaredPop != sum {
		return rakanerr.Newf(rakanerr.InvariantBroken, op, "declared S=%d does not match computed sum %d", g.declaredPop, sum)
	}

	for u := 0; u < g.n; u++ {
		for w := range g.adjacency[u] {
			if _, ok := g.adjacency[w][u]; !ok {
				return rakanerr.Newf(rakanerr.InvariantBroken, op, "asymmetric adjacency between %d and %d", u, w)
			}
		}
	}

	if err := g.checkGloballyConnectedLocked(); err != nil {
		return err
	}

	g.statePop = sum

	g.districtOf = make([]int, g.n)
	for i := range g.districtOf {
		g.districtOf[i] = Unassigned
	}
	g.members = make([]map[int]struct{}, g.k)
	g.perimeter = make([]map[int]struct{}, g.k)
	for i := 0; i < g.k; i++ {
		g.members[i] = make(map[int]struct{})
		g.perimeter[i] = make(map[int]struct{})
	}
	g.totalPop = make([]int, g.k)
	g.minorityPopByDst = make([]int, g.k)
	g.foreignNeighbors = make(map[int]map[int]struct{})
	g.crossingEdges = make(map[Edge]struct{})

	g.state = Loaded
	return nil
}

// N returns the precinct capacity.
func (g *PrecinctGraph) N() int {
	return g.n
}

// K returns the district count.
func (g *PrecinctGraph) K() int {
	return g.k
}

// State returns the current sampler lifecycle state.
func (g *PrecinctGraph) State() State {
	g.muOverlay.RLock()
	defer g.muOverlay.RUnlock()
	return g.state
}

// StatePopulation returns S, the total state population computed (and
// validated) by FinishLoading. Returns 0 before FinishLoading runs.
func (g *PrecinctGraph) StatePopulation() int {
	g.muStatic.RLock()
	defer g.muStatic.RUnlock()
	return g.statePop
}

// NeighborIDs returns a sorted copy of v's neighbor ids. Accessors never
// fail: an out-of-range v yields an empty slice.
func (g *PrecinctGraph) NeighborIDs(v int) []int {
	g.muStatic.RLock()
	defer g.muStatic.RUnlock()
	if v < 0 || v >= g.n {
		return nil
	}
	out := make([]int, 0, len(g.adjacency[v]))
	for w := range g.adjacency[v] {
		out = append(out, w)
	}
	sortInts(out)
	return out
}

// VertexCounty returns the county id of precinct v, or 0 if out of range.
func (g *PrecinctGraph) VertexCounty(v int) int {
	g.muStatic.RLock()
	defer g.muStatic.RUnlock()
	if v < 0 || v >= len(g.precincts) {
		return 0
	}
	return g.precincts[v].county
}

// VertexMinorityPop returns m(v), or 0 if out of range.
func (g *PrecinctGraph) VertexMinorityPop(v int) int {
	g.muStatic.RLock()
	defer g.muStatic.RUnlock()
	if v < 0 || v >= len(g.precincts) {
		return 0
	}
	return g.precincts[v].minorityPop
}

// VertexMajorityPop returns M(v), or 0 if out of range.
func (g *PrecinctGraph) VertexMajorityPop(v int) int {
	g.muStatic.RLock()
	defer g.muStatic.RUnlock()
	if v < 0 || v >= len(g.precincts) {
		return 0
	}
	return g.precincts[v].majorityPop
}

// VertexTotalPop returns t(v) = m(v)+M(v), or 0 if out of range.
func (g *PrecinctGraph) VertexTotalPop(v int) int {
	g.muStatic.RLock()
	defer g.muStatic.RUnlock()
	if v < 0 || v >= len(g.precincts) {
		return 0
	}
	return g.precincts[v].totalPop()
}

// sortInts sorts a small []int in place (insertion sort is adequate: these
// slices are bounded by degree, which is small for planar contiguity
// graphs).
func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}
