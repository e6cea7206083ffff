package sampler

import "math/rand"

// UniformSource is the uniform-draw capability the Sampler consumes for
// proposal selection and the accept/reject decision. *rand.Rand satisfies
// it directly; spec §9 calls out the RNG as one of the components that "may
// be parameterized (capability sets) to ease testing" - a fixture can
// substitute a UniformSource that always returns 1.0 to force rejection,
// per spec §8's rollback fixture (scenario 5), without needing to find a
// real seed that happens to produce that draw.
type UniformSource interface {
	Float64() float64
	Intn(n int) int
}

// FixedSource is a UniformSource that always returns the same Float64
// value, used to deterministically force accept (0.0) or reject (1.0) in
// tests, and Intn draws from a plain deterministic *rand.Rand so proposal
// selection still varies while acceptance is pinned.
type FixedSource struct {
	Value float64
	rng   *rand.Rand
}

// NewFixedSource builds a FixedSource whose Float64 always returns value
// and whose Intn draws from a *rand.Rand seeded by seed.
func NewFixedSource(value float64, seed int64) *FixedSource {
	return &FixedSource{Value: value, rng: rand.New(rand.NewSource(seed))}
}

func (f *FixedSource) Float64() float64 { return f.Value }
func (f *FixedSource) Intn(n int) int   { return f.rng.Intn(n) }
