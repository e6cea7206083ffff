// Package seed establishes an initial valid district partition over a
// loaded precinct.PrecinctGraph by sampling K seed precincts and growing
// regions outward from them in round-robin BFS order.
package seed
