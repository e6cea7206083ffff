package sampler

import (
	"math"

	"github.com/rakanmcmc/rakan/rakanerr"
	"github.com/rakanmcmc/rakan/score"
)

// step performs exactly one Metropolis-Hastings proposal cycle against
// s.g, redrawing invalid proposals (without counting them as steps) up to
// s.maxRedraws times before giving up. accepted is only meaningful when
// err==nil. Per spec §7, a connectivity-oracle rejection or any other
// validity failure is not an error and is handled by redrawing; only a
// structural dead end (an empty crossing-edge set, or exhausting the
// redraw budget) is surfaced as an error.
func (s *Sampler) step() (accepted bool, err error) {
	const op = "sampler.step"

	p, found, err := s.findValidProposal(op)
	if err != nil {
		return false, err
	}
	if !found {
		return false, rakanerr.Newf(rakanerr.Internal, op, "exhausted %d redraws without a valid proposal", s.maxRedraws)
	}

	before, err := score.Evaluate(s.g, s.weights, s.baseline)
	if err != nil {
		return false, rakanerr.New(rakanerr.Internal, op, err)
	}

	oldDistrict := s.g.DistrictOf(p.victim)
	if err := s.g.SetDistrict(p.victim, p.donorDistrict); err != nil {
		return false, rakanerr.New(rakanerr.Internal, op, err)
	}

	after, err := score.Evaluate(s.g, s.weights, s.baseline)
	if err != nil {
		return false, rakanerr.New(rakanerr.Internal, op, err)
	}

	if !s.decide(before.Total, after.Total) {
		if err := s.g.SetDistrict(p.victim, oldDistrict); err != nil {
			return false, rakanerr.New(rakanerr.Internal, op, err)
		}
		return false, nil
	}

	s.sink.Append(s.g.Assignment(), after)
	return true, nil
}

// findValidProposal draws proposals until one passes validation or the
// redraw budget is exhausted. Returning ok=false with a nil error means the
// budget ran out; the caller turns that into an Internal error, since
// spec §4.6 only sanctions capping retries as a wedged-chain guard, not as
// a silent no-op.
func (s *Sampler) findValidProposal(op string) (proposal, bool, error) {
	for i := 0; i < s.maxRedraws; i++ {
		cand, ok := propose(s.g, s.rng)
		if !ok {
			return proposal{}, false, rakanerr.Newf(rakanerr.Internal, op, "crossing-edge set is empty: sampler cannot make progress")
		}
		if valid(s.g, cand) {
			return cand, true, nil
		}
	}
	return proposal{}, false, nil
}

// decide implements spec §4.5 step 4's accept/reject rule: accept
// unconditionally when the score does not increase. Otherwise, by default,
// accept with probability s_old/s_new - the source's literal ratio form,
// preserved verbatim per spec §9 rather than the conventional exp(Δ) form -
// unless WithLogAcceptance selected the conventional form.
func (s *Sampler) decide(sOld, sNew float64) bool {
	if sNew <= sOld {
		return true
	}
	if s.logAcceptance {
		return s.rng.Float64() <= math.Exp(sOld-sNew)
	}
	ratio := sOld / sNew
	return !(s.rng.Float64() > ratio)
}
