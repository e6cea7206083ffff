package precinct

import (
	"sync"

	"github.com/rakanmcmc/rakan/rakanerr"
)

// Unassigned is the sentinel district value held by every precinct before
// Seed (AssignInitial) runs.
const Unassigned = -1

// State is one of the four sampler lifecycle states named in spec §4.5.
type State int

const (
	Idle State = iota
	Loaded
	Seeded
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loaded:
		return "loaded"
	case Seeded:
		return "seeded"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Edge is an unordered pair {U,V} with U<V, as spec §3 defines it: there is
// no edge identity beyond its endpoints.
type Edge struct {
	U, V int
}

func edgeKeyOf(a, b int) Edge {
	if a < b {
		return Edge{a, b}
	}
	return Edge{b, a}
}

// precinctData holds the immutable attributes of a precinct (vertex).
type precinctData struct {
	county      int
	minorityPop int
	majorityPop int
}

func (p precinctData) totalPop() int { return p.minorityPop + p.majorityPop }

// Option configures a PrecinctGraph at construction time.
type Option func(*PrecinctGraph)

// WithDeclaredPopulation records the header-declared total state population
// S. FinishLoading fails with InvariantBroken if the sum of vertex
// populations disagrees. Without this option, S is simply the computed sum.
func WithDeclaredPopulation(s int) Option {
	return func(g *PrecinctGraph) { g.declaredPop = s }
}

// PrecinctGraph is the static contiguity graph of N precincts plus the
// mutable K-district partition overlay described in spec §3.
//
// muStatic guards the vertex/adjacency data written only during loading;
// muOverlay guards the district assignment and all derived overlay state,
// mutated by AssignInitial, PopulateDerivedState, and SetDistrict.
type PrecinctGraph struct {
	muStatic sync.RWMutex
	muOverlay sync.RWMutex

	n, k int

	// declaredPop is the header-declared S, or -1 if none was supplied.
	declaredPop int
	// statePop is the computed S = Σ t(v), set by FinishLoading.
	statePop int

	numAdded   int
	precincts  []precinctData
	adjacency  []map[int]struct{}

	state State

	districtOf       []int
	members          []map[int]struct{}
	totalPop         []int
	minorityPopByDst []int
	perimeter        []map[int]struct{}
	foreignNeighbors map[int]map[int]struct{}
	crossingEdges    map[Edge]struct{}
}

// New constructs an empty PrecinctGraph with capacity for N precincts and K
// districts. Fails with InvalidInput if N<=0 or K<=0.
func New(n, k int, opts ...Option) (*PrecinctGraph, error) {
	const op = "precinct.New"
	if n <= 0 {
		return nil, rakanerr.Newf(rakanerr.InvalidInput, op, "N must be positive, got %d", n)
	}
	if k <= 0 {
		return nil, rakanerr.Newf(rakanerr.InvalidInput, op, "K must be positive, got %d", k)
	}

	g := &PrecinctGraph{
		n:           n,
		k:           k,
		declaredPop: -1,
		precincts:   make([]precinctData, 0, n),
		adjacency:   make([]map[int]struct{}, n),
		state:       Idle,
	}
	for i := range g.adjacency {
		g.adjacency[i] = make(map[int]struct{})
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}
