package seed

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0,
// following the teacher's tsp/rng.go convention exactly (the function is
// unexported there, so it is replicated rather than imported).
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand: seed==0 uses
// defaultRNGSeed, any other value is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// permRange returns a deterministic permutation of 0..n-1 via Fisher-Yates,
// mirroring tsp/rng.go's permRange/shuffleIntsInPlace pair.
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}
