package export

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/rakanmcmc/rakan/precinct"
)

// ToCrossingGraph builds a gonum WeightedUndirectedGraph over g's full
// vertex set, with one unit-weight edge per member of g's current
// crossing-edge set — the district boundary structure a downstream
// numerical pass (e.g. a gonum-based centrality or clustering routine)
// would want to analyze, rather than the full contiguity adjacency.
func ToCrossingGraph(g *precinct.PrecinctGraph) *simple.WeightedUndirectedGraph {
	wg := simple.NewWeightedUndirectedGraph(0, 0)
	for _, v := range g.Vertices() {
		wg.AddNode(simple.Node(v))
	}
	for _, e := range g.CrossingEdges() {
		wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(e.U), simple.Node(e.V), 1))
	}
	return wg
}

// ToContiguityGraph builds a gonum WeightedUndirectedGraph over g's full
// static adjacency (every geographic edge, not only crossing edges),
// useful for feeding the whole precinct topology into a gonum algorithm
// independent of the current partition.
func ToContiguityGraph(g *precinct.PrecinctGraph) *simple.WeightedUndirectedGraph {
	wg := simple.NewWeightedUndirectedGraph(0, 0)
	for _, v := range g.Vertices() {
		wg.AddNode(simple.Node(v))
	}
	for _, v := range g.Vertices() {
		for _, w := range g.NeighborIDs(v) {
			if w <= v {
				continue
			}
			wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(v), simple.Node(w), 1))
		}
	}
	return wg
}
