// Package score computes the four weighted energy terms spec §4.4 defines
// over a precinct.PrecinctGraph's current partition: compactness, the
// signed linear population-balance deviation, the (usually-zero) border
// hook, and the VRA minority-representation term. Every term is recomputed
// from scratch per evaluation, as spec §4.4 requires; nothing here caches
// partition state, since precinct.PrecinctGraph already maintains the
// derived state incrementally.
package score
