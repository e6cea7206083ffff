package sampler

import (
	"math/rand"
	"time"

	"github.com/rakanmcmc/rakan/history"
	"github.com/rakanmcmc/rakan/precinct"
	"github.com/rakanmcmc/rakan/rakanerr"
	"github.com/rakanmcmc/rakan/score"
)

// defaultMaxRedraws bounds how many invalid proposals a single step will
// redraw before giving up, guarding against a wedged chain per spec §4.6.
const defaultMaxRedraws = 10000

// Sampler drives the Metropolis-Hastings walk of spec §4.5 over a
// precinct.PrecinctGraph. Per spec §5 it is single-threaded and
// synchronous: it owns its *rand.Rand exclusively and never shares it with
// another goroutine or component.
type Sampler struct {
	g       *precinct.PrecinctGraph
	rng     UniformSource
	weights score.Weights

	baseline      *score.Baseline
	sink          history.Sink
	logAcceptance bool
	maxRedraws    int
}

// Option configures a Sampler at construction time.
type Option func(*Sampler)

// WithSeed fixes the RNG seed. Per spec §5, a caller-supplied seed is the
// recommended path for reproducible tests: identical (seed, graph, weights,
// step-count) tuples MUST produce identical walks.
func WithSeed(seed int64) Option {
	return func(s *Sampler) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithRNG installs a caller-supplied UniformSource in place of the default
// *rand.Rand, for tests that need to pin specific draws (e.g. forcing
// rejection) rather than search for a seed that happens to produce them.
func WithRNG(rng UniformSource) Option {
	return func(s *Sampler) { s.rng = rng }
}

// WithSink installs the append-sink accepted steps are recorded to (spec
// §9's "History over an append-sink capability"), so a driver can fan a
// step out to both an in-memory History and an external publisher.
// Defaults to a fresh *history.History if omitted.
func WithSink(sink history.Sink) Option {
	return func(s *Sampler) { s.sink = sink }
}

// WithBaseline supplies a baseline partition, activating the border score
// term's hook (spec §4.4). Without this, Border always evaluates to 0.
func WithBaseline(b *score.Baseline) Option {
	return func(s *Sampler) { s.baseline = b }
}

// WithLogAcceptance switches the accept/reject rule from the source's
// literal s_old/s_new ratio to the conventional exp(s_old-s_new) form.
// Defaults off: spec §9 requires the literal ratio by default to keep
// regression fixtures stable.
func WithLogAcceptance() Option {
	return func(s *Sampler) { s.logAcceptance = true }
}

// WithMaxRedraws caps how many times a single step may redraw an invalid
// proposal before giving up. Defaults to defaultMaxRedraws.
func WithMaxRedraws(n int) Option {
	return func(s *Sampler) { s.maxRedraws = n }
}

// New constructs a Sampler over g. g must already be in state Seeded (or
// will be by the time Walk runs); New itself does not check this, since
// spec §4.5's state machine is enforced by g.BeginWalk inside Walk.
func New(g *precinct.PrecinctGraph, opts ...Option) *Sampler {
	s := &Sampler{g: g, maxRedraws: defaultMaxRedraws}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.sink == nil {
		s.sink = history.New()
	}
	return s
}

// History returns the Sampler's own History log if one was never
// overridden via WithSink, or if WithSink was given a *history.History.
// Returns nil if a non-History Sink is installed.
func (s *Sampler) History() *history.History {
	h, _ := s.sink.(*history.History)
	return h
}

// State returns the underlying graph's lifecycle state (spec §4.5):
// Idle, Loaded, Seeded, or Running.
func (s *Sampler) State() precinct.State {
	return s.g.State()
}

// Walk installs w as the active weights and performs exactly n accepted
// steps (spec §4.5's Walk), transitioning the graph Seeded->Running->Seeded.
// Requires the graph to be in state Seeded; walk from Idle or Loaded is an
// IllegalTransition error. Rejected proposals are retried without
// consuming a step, per spec §4.5.
func (s *Sampler) Walk(n int, w score.Weights) error {
	const op = "sampler.Walk"
	if n < 0 {
		return rakanerr.Newf(rakanerr.InvalidInput, op, "n must be >= 0, got %d", n)
	}
	s.weights = w

	if err := s.g.BeginWalk(); err != nil {
		return err
	}
	defer func() { _ = s.g.EndWalk() }()

	for accepted := 0; accepted < n; {
		ok, err := s.step()
		if err != nil {
			return err
		}
		if ok {
			accepted++
		}
	}
	return nil
}

// LogScore evaluates and returns the four score terms and weighted total
// for g's current partition, without mutating g or the Sampler's own
// state. This is spec §6's log_score control-surface operation.
func LogScore(g *precinct.PrecinctGraph, w score.Weights, baseline *score.Baseline) (score.Terms, error) {
	return score.Evaluate(g, w, baseline)
}
