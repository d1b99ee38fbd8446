package neuro

import (
	"math"
	"math/rand/v2"
)

// ensureRNG returns rng, or a freshly seeded generator when rng is nil.
func ensureRNG(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NextGaussian draws a standard normal sample with the Box-Muller transform.
// Both uniforms are taken from (0, 1] so log(u1) is always finite.
func NextGaussian(rng *rand.Rand) float64 {
	rng = ensureRNG(rng)
	u1 := 1 - rng.Float64()
	u2 := 1 - rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
