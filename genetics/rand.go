package genetics

import "math/rand/v2"

// Rand is the uniform random source for a single generation call.
// *rand.Rand satisfies it. Every draw in the pipeline flows through
// the caller's stream, so concurrent hatches never contend on shared
// RNG state.
type Rand interface {
	Float64() float64
}

// NewSeeded returns a PCG-backed stream for reproducible generation.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// uniform draws from [lo, hi).
func uniform(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// pickIndex draws a uniform index in [0, n).
func pickIndex(rng Rand, n int) int {
	idx := int(rng.Float64() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// sample draws up to n entries without replacement.
func sample[T any](rng Rand, pool []T, n int) []T {
	if n <= 0 {
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}
	remaining := make([]T, len(pool))
	copy(remaining, pool)

	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		idx := pickIndex(rng, len(remaining))
		out = append(out, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return out
}
