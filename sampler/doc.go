// Package sampler implements the Metropolis-Hastings core of spec §4.5: the
// propose -> validate -> apply -> score -> decide -> commit-or-rollback
// sequence that drives a precinct.PrecinctGraph through a sequence of
// legal, weighted-score-respecting district reassignments.
//
// The Sampler is single-threaded and synchronous per spec §5: it owns its
// *rand.Rand exclusively and never shares it across goroutines. Its
// lifecycle mirrors precinct.PrecinctGraph's own state machine
// (Idle -> Loaded -> Seeded -> Running -> Seeded); Walk is the only
// operation that drives the Running transition.
package sampler
