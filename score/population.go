package score

import (
	"github.com/rakanmcmc/rakan/matrix"
	"github.com/rakanmcmc/rakan/precinct"
	"github.com/rakanmcmc/rakan/rakanerr"
)

// Population computes spec §4.4's signed linear population-balance term:
// (Σ_k (total_pop(k) − avg))/K, avg = S/K. This is deliberately the linear
// (not squared) deviation and can be negative; see DESIGN.md for the
// preserved-oddity discussion.
//
// The district totals are loaded into a Kx1 column and run through the
// teacher's matrix.CenterColumns, which returns exactly the per-row
// deviation from the column mean in one call — the same quantity this term
// sums and divides by K.
func Population(g *precinct.PrecinctGraph) (float64, error) {
	const op = "score.Population"

	k := g.K()
	col, err := matrix.NewDense(k, 1)
	if err != nil {
		return 0, rakanerr.New(rakanerr.Internal, op, err)
	}
	for _, kk := range g.Districts() {
		if err := col.Set(kk, 0, float64(g.DistrictTotalPop(kk))); err != nil {
			return 0, rakanerr.New(rakanerr.Internal, op, err)
		}
	}

	centered, _, err := matrix.CenterColumns(col)
	if err != nil {
		return 0, rakanerr.New(rakanerr.Internal, op, err)
	}

	var sum float64
	for kk := 0; kk < k; kk++ {
		v, err := centered.At(kk, 0)
		if err != nil {
			return 0, rakanerr.New(rakanerr.Internal, op, err)
		}
		sum += v
	}
	return sum / float64(k), nil
}
