package ga

import (
	"math/bits"
	"math/rand"
)

// CrossoverFunc combines two parents into two new children. Children are
// always fresh individuals with values clamped to the parents' bounds.
type CrossoverFunc func(p1, p2 *Individual, rng *rand.Rand) (*Individual, *Individual)

// Crossover method names accepted in configuration
const (
	CrossoverArithmetic     = "arithmetic"
	CrossoverAverage        = "average"
	CrossoverBinary         = "binary"
	CrossoverBinaryTwoPoint = "binary_two_point"
	CrossoverAdaptive       = "adaptive"
)

var crossovers = map[string]CrossoverFunc{
	CrossoverArithmetic:     ArithmeticCrossover,
	CrossoverAverage:        AverageCrossover,
	CrossoverBinary:         BinaryCrossover,
	CrossoverBinaryTwoPoint: BinaryTwoPointCrossover,
	CrossoverAdaptive:       AdaptiveCrossover,
}

// CrossoverByName returns the registered crossover, falling back to adaptive
func CrossoverByName(name string) CrossoverFunc {
	if fn, ok := crossovers[name]; ok {
		return fn
	}
	return AdaptiveCrossover
}

// ArithmeticCrossover produces children as mirrored weighted averages of the
// parents, truncated to integers.
func ArithmeticCrossover(p1, p2 *Individual, rng *rand.Rand) (*Individual, *Individual) {
	w := rng.Float64()
	c1 := int(w*float64(p1.Value) + (1-w)*float64(p2.Value))
	c2 := int((1-w)*float64(p1.Value) + w*float64(p2.Value))
	return NewIndividual(c1, p1.MinValue, p1.MaxValue),
		NewIndividual(c2, p1.MinValue, p1.MaxValue)
}

// AverageCrossover centers both children on the parents' mean and spreads them
// by a random variation bounded by half the parents' distance, at least 1.
// Identical parents still produce offspring nudged 1-3 apart to keep diversity.
func AverageCrossover(p1, p2 *Individual, rng *rand.Rand) (*Individual, *Individual) {
	average := (p1.Value + p2.Value) / 2
	difference := abs(p1.Value - p2.Value)

	var c1, c2 int
	if difference == 0 {
		c1 = average + 1 + rng.Intn(3)
		c2 = average - (1 + rng.Intn(3))
	} else {
		bound := difference / 2
		if bound < 1 {
			bound = 1
		}
		c1 = average + randRange(-bound, bound, rng)
		c2 = average + randRange(-bound, bound, rng)
	}
	return NewIndividual(c1, p1.MinValue, p1.MaxValue),
		NewIndividual(c2, p1.MinValue, p1.MaxValue)
}

// BinaryCrossover splices the parents' fixed-width bit strings at one random
// cut point. The width is the number of bits needed for the upper bound.
func BinaryCrossover(p1, p2 *Individual, rng *rand.Rand) (*Individual, *Individual) {
	width := bitWidth(p1.MaxValue)
	if width < 2 {
		return p1.Clone(), p2.Clone()
	}
	point := 1 + rng.Intn(width-1)
	c1, c2 := spliceSinglePoint(p1.Value, p2.Value, width, point)
	return NewIndividual(c1, p1.MinValue, p1.MaxValue),
		NewIndividual(c2, p1.MinValue, p1.MaxValue)
}

// BinaryTwoPointCrossover swaps the middle bit segment between two cut points.
// Falls back to single-point splicing when the width leaves no room for two.
func BinaryTwoPointCrossover(p1, p2 *Individual, rng *rand.Rand) (*Individual, *Individual) {
	width := bitWidth(p1.MaxValue)
	if width < 3 {
		return BinaryCrossover(p1, p2, rng)
	}
	point1 := 1 + rng.Intn(width-2)
	point2 := point1 + 1 + rng.Intn(width-1-point1)
	c1, c2 := spliceTwoPoint(p1.Value, p2.Value, width, point1, point2)
	return NewIndividual(c1, p1.MinValue, p1.MaxValue),
		NewIndividual(c2, p1.MinValue, p1.MaxValue)
}

// AdaptiveCrossover picks a method from the parents' distance: bit-level
// splicing when they are close (fine exploitation), segment swaps when
// moderately apart, averaging when far (broad exploration). Thresholds are
// 10% and 40% of the value span.
func AdaptiveCrossover(p1, p2 *Individual, rng *rand.Rand) (*Individual, *Individual) {
	difference := float64(abs(p1.Value - p2.Value))
	span := float64(p1.Span())

	switch {
	case difference < span*0.10:
		return BinaryCrossover(p1, p2, rng)
	case difference < span*0.40:
		return BinaryTwoPointCrossover(p1, p2, rng)
	default:
		return AverageCrossover(p1, p2, rng)
	}
}

// bitWidth returns the number of bits needed to represent v (at least 1)
func bitWidth(v int) int {
	if v <= 0 {
		return 1
	}
	return bits.Len(uint(v))
}

// spliceSinglePoint cuts both width-bit values point bits from the most
// significant end and swaps the tails.
func spliceSinglePoint(a, b, width, point int) (int, int) {
	lowMask := (1 << (width - point)) - 1
	c1 := (a &^ lowMask) | (b & lowMask)
	c2 := (b &^ lowMask) | (a & lowMask)
	return c1, c2
}

// spliceTwoPoint swaps the bit segment between point1 and point2, both counted
// from the most significant end, point2 > point1.
func spliceTwoPoint(a, b, width, point1, point2 int) (int, int) {
	midMask := ((1 << (width - point1)) - 1) &^ ((1 << (width - point2)) - 1)
	c1 := (a &^ midMask) | (b & midMask)
	c2 := (b &^ midMask) | (a & midMask)
	return c1, c2
}

// randRange returns a uniform integer in [lo, hi]
func randRange(lo, hi int, rng *rand.Rand) int {
	return lo + rng.Intn(hi-lo+1)
}
