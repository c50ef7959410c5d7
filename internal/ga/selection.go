package ga

import (
	"math/rand"
	"sort"
)

// Selector picks one parent from an evaluated population
type Selector func(individuals []*Individual, tournamentK int, rng *rand.Rand) *Individual

// Selection method names accepted in configuration
const (
	SelectionTournament = "tournament"
	SelectionRoulette   = "roulette"
	SelectionRank       = "rank"
	SelectionSUS        = "sus"
)

var selectors = map[string]Selector{
	SelectionTournament: TournamentSelect,
	SelectionRoulette:   rouletteSelector,
	SelectionRank:       rankSelector,
}

// SelectorByName returns the registered selector, falling back to tournament.
// SUS is a multi-select method and is dispatched separately by the population.
func SelectorByName(name string) Selector {
	if s, ok := selectors[name]; ok {
		return s
	}
	return TournamentSelect
}

// TournamentSelect samples k distinct individuals and returns the fittest.
// k is clamped to the population size; ties keep the first encountered.
func TournamentSelect(individuals []*Individual, k int, rng *rand.Rand) *Individual {
	if len(individuals) == 0 {
		return nil
	}
	if k > len(individuals) {
		k = len(individuals)
	}
	if k < 1 {
		k = 1
	}

	perm := rng.Perm(len(individuals))
	best := individuals[perm[0]]
	for _, idx := range perm[1:k] {
		if individuals[idx].Fitness > best.Fitness {
			best = individuals[idx]
		}
	}
	return best
}

// RouletteSelect picks an individual with probability proportional to fitness.
// A zero-fitness population degrades to a uniform random pick.
func RouletteSelect(individuals []*Individual, rng *rand.Rand) *Individual {
	if len(individuals) == 0 {
		return nil
	}

	total := 0.0
	for _, ind := range individuals {
		total += ind.Fitness
	}
	if total == 0 {
		return individuals[rng.Intn(len(individuals))]
	}

	point := rng.Float64() * total
	sum := 0.0
	for _, ind := range individuals {
		sum += ind.Fitness
		if sum >= point {
			return ind
		}
	}
	return individuals[len(individuals)-1]
}

// RankSelect weights individuals by rank position instead of raw fitness,
// which keeps outliers from dominating the mating pool.
func RankSelect(individuals []*Individual, rng *rand.Rand) *Individual {
	if len(individuals) == 0 {
		return nil
	}

	ranked := sortedByFitness(individuals)
	n := len(ranked)
	rankSum := n * (n + 1) / 2

	point := rng.Float64() * float64(rankSum)
	sum := 0.0
	for i, ind := range ranked {
		// rank 1 (index 0) carries weight n, the last carries weight 1
		sum += float64(n - i)
		if sum >= point {
			return ind
		}
	}
	return ranked[n-1]
}

// SUSSelect picks numSelections individuals via stochastic universal sampling:
// evenly spaced pointers from a single random offset walk the cumulative
// fitness once, so expected counts track fitness with low variance.
func SUSSelect(individuals []*Individual, numSelections int, rng *rand.Rand) []*Individual {
	if len(individuals) == 0 || numSelections <= 0 {
		return nil
	}

	total := 0.0
	for _, ind := range individuals {
		total += ind.Fitness
	}

	selected := make([]*Individual, 0, numSelections)
	if total == 0 {
		for i := 0; i < numSelections; i++ {
			selected = append(selected, individuals[rng.Intn(len(individuals))])
		}
		return selected
	}

	pointerDistance := total / float64(numSelections)
	start := rng.Float64() * pointerDistance

	sum := individuals[0].Fitness
	idx := 0
	for i := 0; i < numSelections; i++ {
		pointer := start + float64(i)*pointerDistance
		for sum < pointer && idx < len(individuals)-1 {
			idx++
			sum += individuals[idx].Fitness
		}
		selected = append(selected, individuals[idx])
	}
	return selected
}

// Elites returns independent clones of the top n individuals by fitness.
// Ties keep the original population order.
func Elites(individuals []*Individual, n int) []*Individual {
	if n > len(individuals) {
		n = len(individuals)
	}
	if n <= 0 {
		return nil
	}

	ranked := sortedByFitness(individuals)
	elites := make([]*Individual, n)
	for i := 0; i < n; i++ {
		elites[i] = ranked[i].Clone()
	}
	return elites
}

func sortedByFitness(individuals []*Individual) []*Individual {
	ranked := make([]*Individual, len(individuals))
	copy(ranked, individuals)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Fitness > ranked[j].Fitness
	})
	return ranked
}

func rouletteSelector(individuals []*Individual, _ int, rng *rand.Rand) *Individual {
	return RouletteSelect(individuals, rng)
}

func rankSelector(individuals []*Individual, _ int, rng *rand.Rand) *Individual {
	return RankSelect(individuals, rng)
}
