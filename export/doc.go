// Package export converts a precinct.PrecinctGraph snapshot into a
// gonum.org/v1/gonum/graph/simple.WeightedUndirectedGraph, fulfilling the
// teacher corpus's converters package doc comment (which names gonum/graph
// among several intended-but-unimplemented adapter targets) for the one
// direction SPEC_FULL §6.5 actually needs: read-only export for downstream
// numerical analysis, not a two-way adapter.
package export
