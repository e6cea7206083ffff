package fixtures

import (
	"github.com/rakanmcmc/rakan/builder"
	"github.com/rakanmcmc/rakan/core"
	"github.com/rakanmcmc/rakan/gridgraph"
	"github.com/rakanmcmc/rakan/precinct"
)

// fromCoreGraph assigns every vertex of topo a dense integer id in
// topo.Vertices()'s sorted order, populates a new PrecinctGraph with those
// ids via popFn, mirrors every edge of topo, and finishes loading. It lets
// fixtures built by the teacher's builder and gridgraph packages (which work
// over core.Graph's string-keyed vertex space) feed the dense-integer model
// PrecinctGraph requires.
func fromCoreGraph(topo *core.Graph, k int, popFn func(i int) (minority, majority int)) (*precinct.PrecinctGraph, error) {
	verts := topo.Vertices()
	ids := make(map[string]int, len(verts))
	g, err := precinct.New(len(verts), k)
	if err != nil {
		return nil, err
	}
	for i, v := range verts {
		ids[v] = i
		m, M := popFn(i)
		if _, err := g.AddPrecinct(0, m, M); err != nil {
			return nil, err
		}
	}
	for _, e := range topo.Edges() {
		if err := g.AddEdge(ids[e.From], ids[e.To]); err != nil {
			return nil, err
		}
	}
	if err := g.FinishLoading(); err != nil {
		return nil, err
	}
	return g, nil
}

// Triangle builds spec §8 scenario 1's N=3, K=2 fully-connected graph with
// uniform pops (m=1, M=1): a minimal case where every precinct is adjacent
// to every other.
func Triangle() (*precinct.PrecinctGraph, error) {
	g, err := precinct.New(3, 2)
	if err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		if _, err := g.AddPrecinct(0, 1, 1); err != nil {
			return nil, err
		}
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	if err := g.FinishLoading(); err != nil {
		return nil, err
	}
	return g, nil
}

// Path builds spec §8 scenario 2's path of n precincts (0-1-...-(n-1)), K
// districts, uniform pops (m=0, M=10). Topology comes from the teacher's
// builder.Path constructor rather than a hand-rolled loop.
func Path(n, k int) (*precinct.PrecinctGraph, error) {
	topo, err := builder.BuildGraph(nil, nil, builder.Path(n))
	if err != nil {
		return nil, err
	}
	return fromCoreGraph(topo, k, func(int) (int, int) { return 0, 10 })
}

// TwoDisjointTriangles builds spec §8 scenario 3's N=6, K=2 graph: two
// disconnected triangles {0,1,2} and {3,4,5}, uniform pops (m=1, M=1). Seed
// with one triangle per district; the resulting crossing-edge set is empty.
func TwoDisjointTriangles() (*precinct.PrecinctGraph, error) {
	g, err := precinct.New(6, 2)
	if err != nil {
		return nil, err
	}
	for i := 0; i < 6; i++ {
		if _, err := g.AddPrecinct(0, 1, 1); err != nil {
			return nil, err
		}
	}
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	// Two components, K=2: FinishLoading's connectivity pre-check accepts
	// this (component count does not exceed K), leaving the Seeder to place
	// one seed per triangle.
	if err := g.FinishLoading(); err != nil {
		return nil, err
	}
	return g, nil
}

// TooManyComponents builds an N=6, K=2 graph with three disconnected
// components ({0,1}, {2,3}, {4,5}), used by the boundary case where
// component count exceeds K: FinishLoading must fail with SeedingFailed.
func TooManyComponents() (*precinct.PrecinctGraph, error) {
	g, err := precinct.New(6, 2)
	if err != nil {
		return nil, err
	}
	for i := 0; i < 6; i++ {
		if _, err := g.AddPrecinct(0, 0, 1); err != nil {
			return nil, err
		}
	}
	for _, e := range [][2]int{{0, 1}, {2, 3}, {4, 5}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	if err := g.FinishLoading(); err != nil {
		return nil, err
	}
	return g, nil
}

// Grid builds a rows x cols grid of precincts with 4-way adjacency, uniform
// pops (m=0, M=10), used by boundary and compactness tests that want a
// graph with genuine 2D structure rather than a line or a clique. Topology
// comes from the teacher's gridgraph package (every cell is "land" under
// the default LandThreshold, so every cell becomes a vertex).
func Grid(rows, cols, k int) (*precinct.PrecinctGraph, error) {
	cells := make([][]int, rows)
	for r := range cells {
		cells[r] = make([]int, cols)
		for c := range cells[r] {
			cells[r][c] = 1
		}
	}
	gg, err := gridgraph.NewGridGraph(cells, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	return fromCoreGraph(gg.ToCoreGraph(), k, func(int) (int, int) { return 0, 10 })
}
