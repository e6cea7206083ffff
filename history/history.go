package history

import (
	"sync"

	"github.com/rakanmcmc/rakan/score"
)

// Sink is the append-only capability the Sampler records accepted steps to
// (spec §9: "History over an append-sink capability"), so a driver can fan
// a single accepted step out to both an in-memory History and an external
// publisher without History depending on the publisher.
type Sink interface {
	Append(assignment []int, terms score.Terms)
}

// Entry is one accepted step: the assignment vector after commit, and a
// score map keyed exactly as spec §4.6 describes ({total, compact, border,
// vra}): the weighted total plus three of the four terms. The population
// term is not recorded.
type Entry struct {
	Assignment []int
	Scores     map[string]float64
}

// History is the append-only log described by spec §4.6. Its zero value is
// not usable; construct with New. History is safe for concurrent readers,
// though spec §5 only ever has one writer (the Sampler driving a Walk).
type History struct {
	mu      sync.Mutex
	entries []Entry
}

// New constructs an empty History.
func New() *History {
	return &History{}
}

// Append records one accepted step. assignment is copied, never aliased;
// terms are keyed as {total, compact, border, vra}. Entries are appended in
// step order, so an entry's slice index is its (0-based) step number.
func (h *History) Append(assignment []int, terms score.Terms) {
	h.mu.Lock()
	defer h.mu.Unlock()

	cp := make([]int, len(assignment))
	copy(cp, assignment)

	h.entries = append(h.entries, Entry{
		Assignment: cp,
		Scores: map[string]float64{
			"total":   terms.Total,
			"compact": terms.Compactness,
			"border":  terms.Border,
			"vra":     terms.VRA,
		},
	})
}

// Len returns the number of accepted steps recorded so far.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Maps returns a copy of every accepted step's assignment vector, in step
// order (spec §6's get_maps()).
func (h *History) Maps() [][]int {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([][]int, len(h.entries))
	for i, e := range h.entries {
		cp := make([]int, len(e.Assignment))
		copy(cp, e.Assignment)
		out[i] = cp
	}
	return out
}

// Scores returns a copy of every accepted step's score map, in step order
// (spec §6's get_scores()).
func (h *History) Scores() []map[string]float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]map[string]float64, len(h.entries))
	for i, e := range h.entries {
		cp := make(map[string]float64, len(e.Scores))
		for k, v := range e.Scores {
			cp[k] = v
		}
		out[i] = cp
	}
	return out
}

// totalTrajectory returns the weighted-total series across all accepted
// steps, the sequence CompareTrajectories aligns via DTW.
func (h *History) totalTrajectory() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]float64, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.Scores["total"]
	}
	return out
}
