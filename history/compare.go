package history

import (
	"github.com/rakanmcmc/rakan/dtw"
	"github.com/rakanmcmc/rakan/rakanerr"
)

// CompareTrajectories computes a dynamic-time-warping alignment distance
// between two walks' weighted-total score trajectories, using the teacher's
// dtw package. This is a diagnostic for comparing chain mixing across two
// runs (e.g. different seeds or weights) - it is never consulted by the
// Sampler itself, which only ever looks at its own current and proposed
// scores.
func CompareTrajectories(a, b *History) (float64, error) {
	const op = "history.CompareTrajectories"

	distance, _, err := dtw.DTW(a.totalTrajectory(), b.totalTrajectory(), &dtw.DTWOptions{
		MemoryMode: dtw.RollingArray,
	})
	if err != nil {
		return 0, rakanerr.New(rakanerr.Internal, op, err)
	}
	return distance, nil
}
