package score

import (
	"math"
	"strconv"

	"github.com/rakanmcmc/rakan/core"
	"github.com/rakanmcmc/rakan/dijkstra"
	"github.com/rakanmcmc/rakan/precinct"
	"github.com/rakanmcmc/rakan/rakanerr"
)

// Baseline records a prior partition's crossing-edge set, the reference
// point spec §4.4's border hook compares the current partition against.
// A nil *Baseline means "no baseline supplied": Border then always returns
// 0, matching the spec's default behavior and keeping regression fixtures
// stable for callers who never opt in.
type Baseline struct {
	CrossingEdges map[precinct.Edge]struct{}
}

// BaselineFromGraph captures g's current crossing-edge set as a Baseline,
// for callers who want to compare a later partition against g's partition
// at capture time.
func BaselineFromGraph(g *precinct.PrecinctGraph) *Baseline {
	set := make(map[precinct.Edge]struct{})
	for _, e := range g.CrossingEdges() {
		set[e] = struct{}{}
	}
	return &Baseline{CrossingEdges: set}
}

// Border evaluates spec §4.4's reserved border-preservation hook. Without a
// baseline it returns exactly 0, preserving the spec's default. With one, it
// measures how far the current crossing-edge set has drifted from the
// baseline: it builds a temporary weighted core.Graph over the current
// crossing edges (weight 0 if the edge was also crossing in the baseline,
// weight 1 otherwise) and sums the teacher's dijkstra.Dijkstra shortest-path
// distances from an arbitrary crossing vertex to every vertex reachable
// through crossing edges. A partition identical to the baseline scores 0; a
// partition whose boundary has moved scores higher the further the drift.
func Border(g *precinct.PrecinctGraph, baseline *Baseline) (float64, error) {
	const op = "score.Border"
	if baseline == nil {
		return 0, nil
	}

	current := g.CrossingEdges()
	if len(current) == 0 {
		return 0, nil
	}

	graphOfCrossings := core.NewGraph(core.WithWeighted())
	seen := make(map[int]struct{}, len(current)*2)
	addVertex := func(v int) error {
		if _, ok := seen[v]; ok {
			return nil
		}
		seen[v] = struct{}{}
		return graphOfCrossings.AddVertex(strconv.Itoa(v))
	}
	for _, e := range current {
		if err := addVertex(e.U); err != nil {
			return 0, rakanerr.New(rakanerr.Internal, op, err)
		}
		if err := addVertex(e.V); err != nil {
			return 0, rakanerr.New(rakanerr.Internal, op, err)
		}
		weight := int64(1)
		if _, preserved := baseline.CrossingEdges[e]; preserved {
			weight = 0
		}
		if _, err := graphOfCrossings.AddEdge(strconv.Itoa(e.U), strconv.Itoa(e.V), weight); err != nil {
			return 0, rakanerr.New(rakanerr.Internal, op, err)
		}
	}

	source := strconv.Itoa(current[0].U)
	dist, _, err := dijkstra.Dijkstra(graphOfCrossings, dijkstra.Source(source))
	if err != nil {
		return 0, rakanerr.New(rakanerr.Internal, op, err)
	}

	var total float64
	for _, d := range dist {
		if d == math.MaxInt64 {
			continue
		}
		total += float64(d)
	}
	return total, nil
}
