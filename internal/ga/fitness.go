package ga

import "math"

// FitnessFunc scores a guess against the target on a 0-100 scale.
// prev is the best guess of the previous generation, or nil when there is
// none; only direction-aware functions look at it.
type FitnessFunc func(guess, target, minValue, maxValue int, prev *int) float64

// Fitness method names accepted in configuration
const (
	FitnessLinear      = "linear"
	FitnessInverse     = "inverse"
	FitnessExponential = "exponential"
	FitnessCombined    = "combined"
	FitnessHotCold     = "hot_cold"
)

var fitnessFuncs = map[string]FitnessFunc{
	FitnessLinear:      LinearFitness,
	FitnessInverse:     InverseFitness,
	FitnessExponential: ExponentialFitness,
	FitnessCombined:    CombinedFitness,
	FitnessHotCold:     HotColdFitness,
}

// FitnessByName returns the registered fitness function, falling back to linear
func FitnessByName(name string) FitnessFunc {
	if fn, ok := fitnessFuncs[name]; ok {
		return fn
	}
	return LinearFitness
}

// LinearFitness scores by linear distance: 100 at the target, 0 at or beyond
// a full range width away.
func LinearFitness(guess, target, minValue, maxValue int, _ *int) float64 {
	distance := abs(target - guess)
	if distance == 0 {
		return 100.0
	}
	rangeSize := maxValue - minValue + 1
	if rangeSize <= 0 {
		return 100.0
	}
	fitness := math.Max(0, float64(rangeSize-distance))
	return fitness / float64(rangeSize) * 100.0
}

// InverseFitness scores by inverse distance, separating near hits more sharply
// than the linear function. Non-exact scores span [0.5, 99.5].
func InverseFitness(guess, target, minValue, maxValue int, _ *int) float64 {
	distance := abs(target - guess)
	if distance == 0 {
		return 100.0
	}
	maxDistance := maxValue - minValue
	if maxDistance <= 1 {
		return 99.5
	}
	inv := 1.0 / float64(distance+1)
	invMax := 1.0 / 2.0
	invMin := 1.0 / float64(maxDistance+1)
	return 0.5 + (inv-invMin)/(invMax-invMin)*99.0
}

// ExponentialFitness decays as 100*e^(-6d/range), heavily rewarding near hits
func ExponentialFitness(guess, target, minValue, maxValue int, _ *int) float64 {
	distance := abs(target - guess)
	if distance == 0 {
		return 100.0
	}
	rangeSize := maxValue - minValue + 1
	return 100.0 * math.Exp(-6.0*float64(distance)/float64(rangeSize))
}

// CombinedFitness blends the linear and exponential scores 60/40
func CombinedFitness(guess, target, minValue, maxValue int, prev *int) float64 {
	distance := abs(target - guess)
	if distance == 0 {
		return 100.0
	}
	linear := LinearFitness(guess, target, minValue, maxValue, prev)
	exponential := ExponentialFitness(guess, target, minValue, maxValue, prev)
	return 0.6*linear + 0.4*exponential
}

// HotColdFitness adds a directional bonus on top of a scaled linear score:
// +10 when the guess moved closer to the target than the previous best guess,
// -5 when it moved away. Only an exact match scores 100; everything else
// stays within [0, 99] so termination can key off fitness alone.
func HotColdFitness(guess, target, minValue, maxValue int, prev *int) float64 {
	distance := abs(target - guess)
	if distance == 0 {
		return 100.0
	}
	rangeSize := maxValue - minValue + 1
	base := math.Max(0, float64(rangeSize-distance)) / float64(rangeSize) * 90.0

	bonus := 0.0
	if prev != nil {
		prevDistance := abs(target - *prev)
		if distance < prevDistance {
			bonus = 10.0
		} else if distance > prevDistance {
			bonus = -5.0
		}
	}
	return math.Max(0, math.Min(99.0, base+bonus))
}

// EvaluateAll scores every individual in place with the given function
func EvaluateAll(individuals []*Individual, target int, fn FitnessFunc, prev *int) {
	for _, ind := range individuals {
		ind.Fitness = fn(ind.Value, target, ind.MinValue, ind.MaxValue, prev)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
