package connectivity

import (
	"strconv"

	"github.com/rakanmcmc/rakan/core"
	"github.com/rakanmcmc/rakan/dfs"
	"github.com/rakanmcmc/rakan/flow"
	"github.com/rakanmcmc/rakan/precinct"
)

// inducedSubgraph builds a temporary core.Graph over exactly members,
// containing an edge for every pair of members adjacent in g. It is used
// only by the verifier below, never by the oracle, so the two connectivity
// checks share no code.
// inducedSubgraph builds the subgraph as a directed core.Graph with an
// explicit edge in each direction, rather than relying on core's
// undirected-mirroring: buildCapMap sums capacity by each returned edge's
// fixed To field, which double-counts (and misattributes to a self-loop)
// mirrored undirected edges. Two directed unit-capacity edges sidestep that.
func inducedSubgraph(g *precinct.PrecinctGraph, members []int) *core.Graph {
	sub := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	set := make(map[int]struct{}, len(members))
	for _, v := range members {
		set[v] = struct{}{}
		_ = sub.AddVertex(strconv.Itoa(v))
	}
	for _, v := range members {
		for _, w := range g.NeighborIDs(v) {
			if w <= v {
				continue
			}
			if _, ok := set[w]; !ok {
				continue
			}
			_, _ = sub.AddEdge(strconv.Itoa(v), strconv.Itoa(w), 1)
			_, _ = sub.AddEdge(strconv.Itoa(w), strconv.Itoa(v), 1)
		}
	}
	return sub
}

// VerifyConnectedDFS reports whether the subgraph induced by members is
// connected, using a plain DFS reachability check (grounded in the
// teacher's dfs package) independent of OracleWouldStayConnected's BFS.
func VerifyConnectedDFS(g *precinct.PrecinctGraph, members []int) (bool, error) {
	if len(members) <= 1 {
		return true, nil
	}
	sub := inducedSubgraph(g, members)
	res, err := dfs.DFS(sub, strconv.Itoa(members[0]))
	if err != nil {
		return false, err
	}
	return len(res.Visited) == len(members), nil
}

// VerifyConnectedFlow reports whether the subgraph induced by members is
// connected, using a unit-capacity max-flow check (grounded in the
// teacher's flow package's Dinic implementation): the induced subgraph is
// connected iff a positive flow exists from the first member to every
// other member.
func VerifyConnectedFlow(g *precinct.PrecinctGraph, members []int) (bool, error) {
	if len(members) <= 1 {
		return true, nil
	}
	sub := inducedSubgraph(g, members)
	source := strconv.Itoa(members[0])
	opts := flow.DefaultOptions()
	for _, v := range members[1:] {
		maxFlow, _, err := flow.Dinic(sub, source, strconv.Itoa(v), opts)
		if err != nil {
			return false, err
		}
		if maxFlow <= opts.Epsilon {
			return false, nil
		}
	}
	return true, nil
}
