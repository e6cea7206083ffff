package score

import "github.com/rakanmcmc/rakan/precinct"

// Compactness computes Σ_k (F_k)²/|members(k)|, where F_k sums, over every
// perimeter precinct of district k, the size of that precinct's
// foreign-neighbor set, per spec §4.4. Districts with no members contribute
// 0 (they cannot occur once seeded, by invariant I6, but the check keeps
// this safe to call against a partially-built partition).
func Compactness(g *precinct.PrecinctGraph) float64 {
	var total float64
	for _, k := range g.Districts() {
		size := len(g.DistrictMembers(k))
		if size == 0 {
			continue
		}
		var fk float64
		for _, v := range g.DistrictPerimeter(k) {
			fk += float64(len(g.ForeignNeighbors(v)))
		}
		total += (fk * fk) / float64(size)
	}
	return total
}
