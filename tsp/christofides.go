package tsp

import "math"

// ApproxTour builds an approximate Hamiltonian cycle on the complete metric
// graph described by the n×n distance matrix dist, using the classic
// Christofides construction: a minimum spanning tree, greedy matching of the
// tree's odd-degree vertices, an Eulerian circuit over the resulting
// multigraph, and shortcutting down to a Hamiltonian cycle.
//
// Unlike TSPExact (Held–Karp, O(n²·2ⁿ)), this runs in polynomial time and is
// intended for instances too large for exact solving. The result is not
// guaranteed optimal.
//
// Complexity: O(n²) dominated by MinimumSpanningTree and greedyMatch.
func ApproxTour(dist [][]float64) (TSResult, error) {
	n := len(dist)
	if n == 0 {
		return TSResult{}, ErrDimensionMismatch
	}
	if n == 1 {
		return TSResult{Tour: []int{0, 0}, Cost: 0}, nil
	}

	_, adj, err := MinimumSpanningTree(dist)
	if err != nil {
		return TSResult{}, err
	}

	// Odd-degree vertices of the MST must be matched to make every degree
	// even, a precondition for an Eulerian circuit to exist.
	var odd []int
	for v := 0; v < n; v++ {
		if len(adj[v])%2 == 1 {
			odd = append(odd, v)
		}
	}
	if len(odd) > 0 {
		greedyMatch(odd, dist, adj)
	}

	euler := EulerianCircuit(adj, 0)
	tour, err := ShortcutEulerianToHamiltonian(euler, n, 0)
	if err != nil {
		return TSResult{}, err
	}

	cost, err := tourCostFromMatrix(dist, tour)
	if err != nil {
		return TSResult{}, err
	}

	return TSResult{Tour: tour, Cost: cost}, nil
}

// tourCostFromMatrix sums edge weights along tour without requiring the
// matrix.Matrix wrapper TourCost expects, since ApproxTour works directly
// on a raw [][]float64.
func tourCostFromMatrix(dist [][]float64, tour []int) (float64, error) {
	var sum float64
	for i := 0; i < len(tour)-1; i++ {
		u, v := tour[i], tour[i+1]
		w := dist[u][v]
		if math.IsNaN(w) {
			return 0, ErrDimensionMismatch
		}
		if math.IsInf(w, 0) {
			return 0, ErrIncompleteGraph
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}
		sum += w
	}
	return round1e9(sum), nil
}
