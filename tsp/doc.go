// Package tsp provides Travelling Salesman Problem solvers used to turn a
// set of boundary vertices into a single diagnostic perimeter tour.
//
// It includes two algorithms on a distance matrix ([][]float64):
//
//   - TSPExact — Held–Karp dynamic programming.
//     Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
//     Supports "missing" edges via math.Inf(1); returns ErrTSPIncompleteGraph
//     if no Hamiltonian cycle exists.
//
//   - ApproxTour — Christofides' construction: minimum spanning tree,
//     greedy odd-degree matching, Eulerian circuit, shortcut to Hamiltonian.
//     Complexity: O(n²) time. No optimality guarantee, but usable well
//     beyond the handful of vertices TSPExact can handle.
//
// MinimumSpanningTree, EulerianCircuit and the tour utilities in tour.go are
// exported on their own because ApproxTour is only one possible composition
// of them.
//
// Use TSPExact for small instances (n≲16) where an optimal tour matters;
// use ApproxTour otherwise.
package tsp
