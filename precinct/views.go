package precinct

// Vertices returns the dense id range [0,N) as a slice, for callers that
// prefer iterating via a view rather than a raw range loop (e.g. the
// Scorer's "recomputed from scratch per evaluation" passes).
func (g *PrecinctGraph) Vertices() []int {
	g.muStatic.RLock()
	n := g.n
	g.muStatic.RUnlock()
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Districts returns the dense id range [0,K) as a slice.
func (g *PrecinctGraph) Districts() []int {
	g.muOverlay.RLock()
	k := g.k
	g.muOverlay.RUnlock()
	out := make([]int, k)
	for i := range out {
		out[i] = i
	}
	return out
}

// DistrictSnapshot bundles the overlay state for one district into a single
// read, sparing callers (the Scorer's per-term passes, the connectivity
// verifier) repeated lock/copy round trips through the individual
// accessors.
type DistrictSnapshot struct {
	Members     []int
	TotalPop    int
	MinorityPop int
	Perimeter   []int
}

// Snapshot returns a DistrictSnapshot for district k, or a zero-value
// snapshot if k is out of range.
func (g *PrecinctGraph) Snapshot(k int) DistrictSnapshot {
	return DistrictSnapshot{
		Members:     g.DistrictMembers(k),
		TotalPop:    g.DistrictTotalPop(k),
		MinorityPop: g.DistrictMinorityPop(k),
		Perimeter:   g.DistrictPerimeter(k),
	}
}
