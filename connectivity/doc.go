// Package connectivity provides the oracle that decides whether
// reassigning one precinct between districts would leave both districts
// internally connected, plus an independently-implemented verifier used by
// tests to cross-check the oracle.
package connectivity
