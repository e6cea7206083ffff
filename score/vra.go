package score

import "github.com/rakanmcmc/rakan/precinct"

// VRA computes spec §4.4's Voting-Rights-Act term: Σ_k [ minority_pop(k) /
// total_pop(k) if that ratio is below 0.5, else 0 ]. A zero-population
// district contributes 0 rather than dividing by zero.
func VRA(g *precinct.PrecinctGraph) float64 {
	var total float64
	for _, k := range g.Districts() {
		tp := g.DistrictTotalPop(k)
		if tp == 0 {
			continue
		}
		ratio := float64(g.DistrictMinorityPop(k)) / float64(tp)
		if ratio < 0.5 {
			total += ratio
		}
	}
	return total
}
