package sampler

import (
	"github.com/rakanmcmc/rakan/connectivity"
	"github.com/rakanmcmc/rakan/precinct"
)

// proposal names one candidate single-precinct reassignment: victim would
// leave its current district and join donorDistrict, the district donor
// currently belongs to.
type proposal struct {
	victim, donor int
	donorDistrict int
}

// propose picks an edge uniformly at random from g's crossing-edge set and,
// by a fair coin, designates one endpoint the victim and the other the
// donor, per spec §4.5 step 1. ok is false iff the crossing-edge set is
// empty, meaning no proposal is possible.
func propose(g *precinct.PrecinctGraph, rng UniformSource) (proposal, bool) {
	edges := g.CrossingEdges()
	if len(edges) == 0 {
		return proposal{}, false
	}

	e := edges[rng.Intn(len(edges))]
	victim, donor := e.U, e.V
	if rng.Intn(2) == 1 {
		victim, donor = donor, victim
	}

	return proposal{
		victim:        victim,
		donor:         donor,
		donorDistrict: g.DistrictOf(donor),
	}, true
}

// valid checks spec §4.5 step 2's validity conditions: distinct endpoints in
// distinct districts, the victim's current district would not empty, and
// the connectivity oracle confirms both affected districts would stay
// connected.
func valid(g *precinct.PrecinctGraph, p proposal) bool {
	if p.victim == p.donor {
		return false
	}
	victimDistrict := g.DistrictOf(p.victim)
	if victimDistrict == p.donorDistrict {
		return false
	}
	if len(g.DistrictMembers(victimDistrict)) <= 1 {
		return false
	}
	return connectivity.OracleWouldStayConnected(g, p.victim, p.donorDistrict)
}
