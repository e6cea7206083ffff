// Package fixtures builds the small deterministic precinct.PrecinctGraph
// topologies spec §8's boundary cases and concrete scenarios are stated
// against (a triangle, a path, two disjoint triangles, a rectangular grid),
// mirroring the teacher's builder package's topology-factory style
// (Path, Cycle, ...) and the teacher's gridgraph package's four-connected
// grid model, adapted to precinct's dense-integer, no-edge-identity graph.
// Every constructor returns a graph in state Loaded (FinishLoading already
// called); callers seed or assign districts themselves.
package fixtures
