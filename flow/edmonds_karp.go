package flow

import (
	"context"
	"fmt"
	"math"

	"github.com/rakanmcmc/rakan/core"
)

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - maxFlow: total flow value
//   - residual: residual-capacity graph after flow
//   - err: non-nil on missing vertices or negative capacities.
//
// Options (nil uses defaults):
//   - Epsilon: capacities ≤ Epsilon treated as zero (default 1e-9)
//   - Verbose:  print each augmentation via fmt.Printf
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	ctx context.Context,
	g *core.Graph,
	source, sink string,
	opts *FlowOptions,
) (maxFlow float64, residual *core.Graph, err error) {
	// 1) Normalize options; the explicit ctx parameter wins over opts.Ctx.
	var o FlowOptions
	if opts != nil {
		o = *opts
	}
	o.Ctx = ctx
	o.normalize()

	// 2) Validate presence of source/sink
	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}

	// 3) Build the residual capacity map (aggregates parallel edges).
	capMap, err := buildCapMap(g, o)
	if err != nil {
		return 0, nil, err
	}

	// 4) Main loop: find BFS (shortest, fewest-edges) augmenting paths.
	for {
		if err = o.Ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		path, bottle := bfsAugmentingPath(o.Ctx, capMap, source, sink, o.Epsilon)
		if len(path) == 0 || bottle <= o.Epsilon {
			break
		}
		if o.Verbose {
			fmt.Printf("augmenting path %v with flow %.3g\n", path, bottle)
		}
		maxFlow += bottle

		// 5) Augment along the path, updating forward/reverse capacities.
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			capMap[u][v] -= bottle
			capMap[v][u] += bottle
		}
	}

	residual, err = buildCoreResidualFromCapMap(capMap, g, o)
	if err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residual, nil
}

// bfsAugmentingPath finds the shortest (fewest-edges) path in capMap
// from source→sink with positive capacity > eps, and returns that path
// plus its bottleneck capacity. Returns nil if no path found.
func bfsAugmentingPath(
	ctx context.Context,
	capMap map[string]map[string]float64,
	source, sink string,
	eps float64,
) ([]string, float64) {
	// parent[v] = predecessor of v on the path
	parent := make(map[string]string, len(capMap))
	// bottleneck[v] = bottleneck capacity from source→v
	bottleneck := map[string]float64{source: math.Inf(1)}
	visited := map[string]bool{source: true}

	queue := []string{source}
	for len(queue) > 0 {
		// context cancellation check
		select {
		case <-ctx.Done():
			return nil, 0
		default:
		}
		u := queue[0]
		queue = queue[1:]
		for v, capUV := range capMap[u] {
			if visited[v] || capUV <= eps {
				continue
			}
			visited[v] = true
			parent[v] = u
			bottleneck[v] = math.Min(bottleneck[u], capUV)
			if v == sink {
				// reconstruct path
				path := []string{sink}
				for cur := sink; cur != source; {
					p := parent[cur]
					path = append([]string{p}, path...)
					cur = p
				}
				return path, bottleneck[sink]
			}
			queue = append(queue, v)
		}
	}
	return nil, 0
}
