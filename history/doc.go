// Package history implements the append-only log of accepted Metropolis-
// Hastings steps spec §4.6 describes: for every accepted step, a copy of
// the full district-assignment vector and a score map holding the weighted
// total and the compact, border and vra terms (the population term is not
// recorded). History never mutates a prior entry; readers
// receive copies, never references into internal state.
package history
