package tsp

import "errors"

// Sentinel errors shared by the exact, heuristic and utility entry points
// of this package.
var (
	// ErrDimensionMismatch is returned when a distance matrix is not square,
	// or a tour/permutation references an out-of-range index.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonSquare is returned when a cost matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrIncompleteGraph is returned when a required edge is missing
	// (weight is +Inf) from an otherwise complete-graph assumption.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrNegativeWeight is returned when a distance matrix contains a
	// negative entry, which TSP costs do not support.
	ErrNegativeWeight = errors.New("tsp: negative edge weight")

	// ErrStartOutOfRange is returned when a requested start vertex index
	// falls outside [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")
)
