package ga

import (
	"math"
	"math/rand"
)

// maxResample bounds the retries used to force a non-zero perturbation
const maxResample = 10

// MutationContext carries the knobs the mutators draw on
type MutationContext struct {
	Rate       float64 // probability gate; per-bit flip chance for bit_flip
	Range      int     // max offset for random mutation, 0 = 10% of the span
	Sigma      float64 // std dev for gaussian mutation, 0 = 5% of the span
	Generation int     // current generation, used by adaptive mutation
}

// Mutator perturbs an individual's value in place, keeping it within bounds
type Mutator func(ind *Individual, ctx MutationContext, rng *rand.Rand)

// Mutation method names accepted in configuration
const (
	MutationRandom   = "random"
	MutationBitFlip  = "bit_flip"
	MutationBoundary = "boundary"
	MutationGaussian = "gaussian"
	MutationAdaptive = "adaptive"
)

var mutators = map[string]Mutator{
	MutationRandom:   RandomMutation,
	MutationBitFlip:  BitFlipMutation,
	MutationBoundary: BoundaryMutation,
	MutationGaussian: GaussianMutation,
	MutationAdaptive: AdaptiveMutation,
}

// MutatorByName returns the registered mutator, falling back to adaptive
func MutatorByName(name string) Mutator {
	if m, ok := mutators[name]; ok {
		return m
	}
	return AdaptiveMutation
}

// RandomMutation adds a non-zero random offset in [-range, range]
func RandomMutation(ind *Individual, ctx MutationContext, rng *rand.Rand) {
	if rng.Float64() > ctx.Rate {
		return
	}

	mutationRange := ctx.Range
	if mutationRange <= 0 {
		mutationRange = defaultMutationRange(ind.Span())
	}

	change := randRange(-mutationRange, mutationRange, rng)
	for i := 0; change == 0 && i < maxResample; i++ {
		change = randRange(-mutationRange, mutationRange, rng)
	}
	if change == 0 {
		change = 1
	}
	ind.SetValue(ind.Value + change)
}

// BitFlipMutation flips each bit of the fixed-width representation
// independently with the configured probability.
func BitFlipMutation(ind *Individual, ctx MutationContext, rng *rand.Rand) {
	rate := ctx.Rate
	if rate <= 0 {
		rate = 0.1
	}

	width := bitWidth(ind.MaxValue)
	value := ind.Value
	for i := 0; i < width; i++ {
		if rng.Float64() < rate {
			value ^= 1 << i
		}
	}
	ind.SetValue(value)
}

// BoundaryMutation snaps the value to one of the bounds, 50/50
func BoundaryMutation(ind *Individual, ctx MutationContext, rng *rand.Rand) {
	if rng.Float64() > ctx.Rate {
		return
	}
	if rng.Float64() < 0.5 {
		ind.Value = ind.MinValue
	} else {
		ind.Value = ind.MaxValue
	}
}

// GaussianMutation adds a normally distributed perturbation, resampling
// deltas that round to zero so a passed gate always changes the value.
func GaussianMutation(ind *Individual, ctx MutationContext, rng *rand.Rand) {
	if rng.Float64() > ctx.Rate {
		return
	}

	sigma := ctx.Sigma
	if sigma <= 0 {
		sigma = float64(ind.Span()) * 0.05
	}
	if sigma <= 0 {
		sigma = 1
	}

	change := int(rng.NormFloat64() * sigma)
	for i := 0; change == 0 && i < maxResample; i++ {
		change = int(rng.NormFloat64() * sigma)
	}
	if change == 0 {
		change = 1
	}
	ind.SetValue(ind.Value + change)
}

// AdaptiveMutation scales probability and range with the individual's fitness
// and the generation count, then delegates to RandomMutation. Low fitness and
// late generations both push mutation strength up.
func AdaptiveMutation(ind *Individual, ctx MutationContext, rng *rand.Rand) {
	probability, mutationRange := adaptiveParams(ind.Fitness, ctx.Generation, ind.Span())
	RandomMutation(ind, MutationContext{Rate: probability, Range: mutationRange}, rng)
}

// adaptiveParams computes the effective mutation probability and range.
// Probability is non-increasing in fitness and non-decreasing in generation;
// range grows as fitness drops.
func adaptiveParams(fitness float64, generation, span int) (float64, int) {
	ratio := math.Max(0, math.Min(1, fitness/100.0))

	baseProbability := 0.1 + (1.0-ratio)*0.4
	generationFactor := math.Min(0.3, float64(generation)/1000.0)
	probability := math.Min(0.9, baseProbability+generationFactor)

	mutationFactor := 1.0 - ratio*ratio
	mutationRange := int(float64(span) * 0.05 * (1 + 3*mutationFactor))
	if mutationRange < 1 {
		mutationRange = 1
	}
	return probability, mutationRange
}

func defaultMutationRange(span int) int {
	r := span / 10
	if r < 1 {
		r = 1
	}
	return r
}
