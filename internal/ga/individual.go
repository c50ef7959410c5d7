package ga

import "math/rand"

// Individual represents a single guess in the population
type Individual struct {
	Value    int
	Fitness  float64
	MinValue int
	MaxValue int
}

// NewIndividual creates an individual with the given value, clamped to bounds
func NewIndividual(value, minValue, maxValue int) *Individual {
	return &Individual{
		Value:    clamp(value, minValue, maxValue),
		MinValue: minValue,
		MaxValue: maxValue,
	}
}

// NewRandomIndividual creates an individual with a uniform random value in bounds
func NewRandomIndividual(minValue, maxValue int, rng *rand.Rand) *Individual {
	return &Individual{
		Value:    minValue + rng.Intn(maxValue-minValue+1),
		MinValue: minValue,
		MaxValue: maxValue,
	}
}

// Clone creates a deep copy of the individual
func (ind *Individual) Clone() *Individual {
	c := *ind
	return &c
}

// SetValue assigns a new value, clamped to the individual's bounds
func (ind *Individual) SetValue(value int) {
	ind.Value = clamp(value, ind.MinValue, ind.MaxValue)
}

// Span returns the width of the value range (max - min)
func (ind *Individual) Span() int {
	return ind.MaxValue - ind.MinValue
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
