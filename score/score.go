package score

import "github.com/rakanmcmc/rakan/precinct"

// Weights holds the four score-term coefficients α, β, γ, η of spec §4.4's
// weighted sum score = α·compactness + β·population + γ·border + η·vra.
type Weights struct {
	Alpha float64
	Beta  float64
	Gamma float64
	Eta   float64
}

// Terms bundles the four raw score components alongside their weighted
// total, mirroring the {total, compact, border, vra} map spec §4.6 records
// for every accepted step.
type Terms struct {
	Compactness float64
	Population  float64
	Border      float64
	VRA         float64
	Total       float64
}

// Evaluate computes all four terms of g's current partition from scratch
// (O(N+E) worst case, per spec §4.4) plus their weighted sum. baseline may
// be nil, in which case the border term is exactly 0.
func Evaluate(g *precinct.PrecinctGraph, w Weights, baseline *Baseline) (Terms, error) {
	compact := Compactness(g)

	pop, err := Population(g)
	if err != nil {
		return Terms{}, err
	}

	border, err := Border(g, baseline)
	if err != nil {
		return Terms{}, err
	}

	vra := VRA(g)

	return Terms{
		Compactness: compact,
		Population:  pop,
		Border:      border,
		VRA:         vra,
		Total:       w.Alpha*compact + w.Beta*pop + w.Gamma*border + w.Eta*vra,
	}, nil
}
