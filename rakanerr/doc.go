// Package rakanerr defines the single structured error type shared across
// the redistricting core. Every failure site in precinct, connectivity,
// seed, score, and sampler returns a *rakanerr.Error carrying one of the
// fixed Kind values below, so callers can branch on kind with errors.Is
// without depending on package-specific sentinel variables.
package rakanerr
