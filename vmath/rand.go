package vmath

// FastRand is a xorshift64 PRNG for gameplay randomness.
// Deterministic for a given seed so scenarios are reproducible.
// Not safe for concurrent use; each owner keeps its own instance.
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// FloatRange returns a uniform value in [lo, hi)
func (r *FastRand) FloatRange(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
