// Package precinct implements PrecinctGraph: the static contiguity graph of
// electoral precincts plus the mutable partition overlay (district
// membership, per-district population, perimeter precincts, foreign
// neighbors, and the global crossing-edge set) that the sampler maintains
// incrementally under single-precinct reassignments.
//
// PrecinctGraph generalizes the dense-integer, no-edge-identity data model
// of the redistricting domain from the string-keyed, edge-object graph
// style elsewhere in this module: there is no Edge identity beyond its
// endpoints, so adjacency is tracked as a neighbor-set per vertex rather
// than an edge catalog.
//
// Concurrency mirrors core.Graph: a separate sync.RWMutex guards the static
// graph (vertices/adjacency, written only during loading) from the overlay
// (district state, written by Seeder and Sampler). The package itself does
// not enforce the single-threaded execution model the sampler requires;
// callers are responsible for not mutating PrecinctGraph from more than one
// goroutine at a time (see the module's concurrency notes).
package precinct
