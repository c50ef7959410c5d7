package engine

import (
	"math/rand"
	"time"

	"evoguess/internal/config"
	"evoguess/internal/ga"
)

// GenerationRecord is the per-generation statistics entry emitted after each
// evolution step. Records are append-only; reporting layers consume them.
type GenerationRecord struct {
	Generation    int     `json:"generation"`
	BestFitness   float64 `json:"best_fitness"`
	BestGuess     int     `json:"best_guess"`
	AvgFitness    float64 `json:"avg_fitness"`
	FitnessStdDev float64 `json:"fitness_std_dev"`
	UniqueValues  int     `json:"unique_values"`
}

// Result is the terminal state of a run
type Result struct {
	Solved      bool               `json:"solved"`
	Target      int                `json:"target"`
	Generations int                `json:"generations"`
	BestGuess   int                `json:"best_guess"`
	BestFitness float64            `json:"best_fitness"`
	Elapsed     time.Duration      `json:"elapsed_ns"`
	History     []GenerationRecord `json:"history"`
}

// Runner drives a population through evaluate/replace cycles until the target
// is guessed or the generation budget runs out. The caller guarantees the
// target lies within the configured bounds.
type Runner struct {
	cfg *config.Config
	pop *ga.Population

	// OnGeneration, when set, receives each record as it is produced
	OnGeneration func(GenerationRecord)
}

// NewRunner creates a runner with a fresh random population
func NewRunner(cfg *config.Config, rng *rand.Rand) *Runner {
	return &Runner{
		cfg: cfg,
		pop: ga.NewPopulation(cfg.Params(), rng),
	}
}

// Population exposes the underlying population, mainly for tests
func (r *Runner) Population() *ga.Population {
	return r.pop
}

// Run evolves the population until an individual guesses the target exactly
// (fitness 100) or MaxGenerations is reached. Exhausting the budget is a
// normal terminal state, not an error.
func (r *Runner) Run(target int) Result {
	start := time.Now()
	result := Result{Target: target}

	for gen := 1; gen <= r.cfg.Game.MaxGenerations; gen++ {
		r.pop.Evaluate(target)

		stats := r.pop.Stats()
		record := GenerationRecord{
			Generation:    gen,
			BestFitness:   stats.BestFitness,
			BestGuess:     stats.BestGuess,
			AvgFitness:    stats.AvgFitness,
			FitnessStdDev: stats.FitnessStdDev,
			UniqueValues:  stats.UniqueValues,
		}
		result.History = append(result.History, record)
		if r.OnGeneration != nil {
			r.OnGeneration(record)
		}

		result.Generations = gen
		result.BestGuess = stats.BestGuess
		result.BestFitness = stats.BestFitness

		if stats.BestGuess == target {
			result.Solved = true
			break
		}

		r.pop.NextGeneration()
	}

	result.Elapsed = time.Since(start)
	return result
}
