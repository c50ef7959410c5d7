package ga

import (
	"fmt"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// parentRetries bounds attempts to pick two distinct parents
const parentRetries = 5

// Params is the validated, immutable configuration for a population
type Params struct {
	MinValue      int
	MaxValue      int
	Size          int
	CrossoverRate float64
	MutationRate  float64
	MutationRange int
	ElitismCount  int
	TournamentK   int
	Selection     string
	Crossover     string
	Mutation      string
	Fitness       string
}

// Stats summarizes an evaluated generation
type Stats struct {
	BestFitness   float64
	BestGuess     int
	AvgFitness    float64
	FitnessStdDev float64
	UniqueValues  int
}

// Population manages the individuals of one generation and produces the next
type Population struct {
	params      Params
	individuals []*Individual
	generation  int

	selector  Selector
	crossover CrossoverFunc
	mutator   Mutator
	fitness   FitnessFunc

	best      *Individual
	prevGuess *int
	stats     Stats
	rng       *rand.Rand
}

// NewPopulation creates a population of random individuals
func NewPopulation(params Params, rng *rand.Rand) *Population {
	individuals := make([]*Individual, params.Size)
	for i := range individuals {
		individuals[i] = NewRandomIndividual(params.MinValue, params.MaxValue, rng)
	}

	return &Population{
		params:      params,
		individuals: individuals,
		selector:    SelectorByName(params.Selection),
		crossover:   CrossoverByName(params.Crossover),
		mutator:     MutatorByName(params.Mutation),
		fitness:     FitnessByName(params.Fitness),
		rng:         rng,
	}
}

// Size returns the population size
func (p *Population) Size() int {
	return len(p.individuals)
}

// Generation returns the number of completed evolution steps
func (p *Population) Generation() int {
	return p.generation
}

// Individuals returns the current generation's individuals
func (p *Population) Individuals() []*Individual {
	return p.individuals
}

// Best returns a clone of the fittest individual of the last evaluation
func (p *Population) Best() *Individual {
	if p.best == nil {
		best := p.individuals[0]
		for _, ind := range p.individuals[1:] {
			if ind.Fitness > best.Fitness {
				best = ind
			}
		}
		p.best = best.Clone()
	}
	return p.best
}

// Stats returns the statistics computed by the last evaluation
func (p *Population) Stats() Stats {
	return p.stats
}

// Evaluate scores every individual against the target, sorts the population
// by descending fitness and refreshes the generation statistics. Direction-
// aware fitness sees the previous generation's best guess.
func (p *Population) Evaluate(target int) {
	var prev *int
	if p.params.Fitness == FitnessHotCold {
		prev = p.prevGuess
	}
	EvaluateAll(p.individuals, target, p.fitness, prev)

	sort.SliceStable(p.individuals, func(i, j int) bool {
		return p.individuals[i].Fitness > p.individuals[j].Fitness
	})
	p.best = p.individuals[0].Clone()

	guess := p.best.Value
	p.prevGuess = &guess

	p.computeStats()
}

func (p *Population) computeStats() {
	fitnesses := make([]float64, len(p.individuals))
	unique := make(map[int]struct{}, len(p.individuals))
	for i, ind := range p.individuals {
		fitnesses[i] = ind.Fitness
		unique[ind.Value] = struct{}{}
	}

	stdDev := 0.0
	if len(fitnesses) > 1 {
		stdDev = stat.StdDev(fitnesses, nil)
	}

	p.stats = Stats{
		BestFitness:   p.best.Fitness,
		BestGuess:     p.best.Value,
		AvgFitness:    stat.Mean(fitnesses, nil),
		FitnessStdDev: stdDev,
		UniqueValues:  len(unique),
	}
}

// NextGeneration replaces the population with elite clones plus offspring
// produced by selection, rate-gated crossover and mutation. The new
// generation always has exactly the configured size.
func (p *Population) NextGeneration() {
	next := make([]*Individual, 0, p.params.Size)
	next = append(next, Elites(p.individuals, p.params.ElitismCount)...)

	ctx := MutationContext{
		Rate:       p.params.MutationRate,
		Range:      p.params.MutationRange,
		Generation: p.generation,
	}

	for len(next) < p.params.Size {
		p1, p2 := p.selectParents()

		var c1, c2 *Individual
		if p.rng.Float64() < p.params.CrossoverRate {
			c1, c2 = p.crossover(p1, p2, p.rng)
		} else {
			c1, c2 = p1.Clone(), p2.Clone()
		}

		p.mutator(c1, ctx, p.rng)
		p.mutator(c2, ctx, p.rng)

		next = append(next, c1)
		if len(next) < p.params.Size {
			next = append(next, c2)
		}
	}

	p.individuals = next
	p.generation++
	p.best = nil
}

// selectParents picks two parents, retrying a few times for distinct values.
// SUS fills a small batch in one sampling pass; the other methods select
// one parent at a time.
func (p *Population) selectParents() (*Individual, *Individual) {
	if p.params.Selection == SelectionSUS {
		pair := SUSSelect(p.individuals, 2, p.rng)
		return pair[0], pair[1]
	}

	p1 := p.selector(p.individuals, p.params.TournamentK, p.rng)
	p2 := p.selector(p.individuals, p.params.TournamentK, p.rng)
	for i := 0; p1.Value == p2.Value && i < parentRetries; i++ {
		p2 = p.selector(p.individuals, p.params.TournamentK, p.rng)
	}
	return p1, p2
}

// String summarizes the population for debug output
func (p *Population) String() string {
	return fmt.Sprintf("Population(size=%d, gen=%d, best=%.2f, avg=%.2f)",
		len(p.individuals), p.generation, p.stats.BestFitness, p.stats.AvgFitness)
}
