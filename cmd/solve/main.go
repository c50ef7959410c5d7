package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"evoguess/internal/config"
	"evoguess/internal/engine"
	"evoguess/internal/logging"
	"evoguess/internal/stats"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (defaults used when empty)")
	target := flag.Int("target", 0, "secret number to guess (0 = pick one at random)")
	seed := flag.Int64("seed", 0, "random seed override (0 = use config seed)")
	generations := flag.Int("generations", 0, "max generations override (0 = use config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *generations > 0 {
		cfg.Game.MaxGenerations = *generations
		cfg.Validate()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	secret := *target
	if secret < cfg.Game.MinNumber || secret > cfg.Game.MaxNumber {
		if secret != 0 {
			fmt.Fprintf(os.Stderr, "Target must be between %d and %d\n",
				cfg.Game.MinNumber, cfg.Game.MaxNumber)
			os.Exit(1)
		}
		secret = cfg.Game.MinNumber + rng.Intn(cfg.Game.MaxNumber-cfg.Game.MinNumber+1)
	}

	fmt.Printf("Number Guessing GA - range [%d, %d], population %d, elites %d\n",
		cfg.Game.MinNumber, cfg.Game.MaxNumber, cfg.GA.Population, cfg.GA.Elites)
	fmt.Printf("Methods: selection=%s crossover=%s mutation=%s fitness=%s\n",
		cfg.Methods.Selection, cfg.Methods.Crossover, cfg.Methods.Mutation, cfg.Methods.Fitness)
	fmt.Println("---")

	logger, err := logging.NewLogger(cfg.Logging.CSVPath, cfg.Logging.JSONPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	tracker := stats.NewTracker(cfg, secret)

	runner := engine.NewRunner(cfg, rng)
	runner.OnGeneration = func(rec engine.GenerationRecord) {
		logger.LogGeneration(rec)
		tracker.Record(rec)
		if cfg.Logging.EveryGenSummary || rec.Generation%cfg.Game.DisplayInterval == 0 {
			logging.PrintSummary(rec)
		}
	}

	result := runner.Run(secret)
	tracker.Finish(result)

	fmt.Println("---")
	if result.Solved {
		fmt.Printf("Found %d in %d generations (%.3fs)\n",
			result.BestGuess, result.Generations, result.Elapsed.Seconds())
	} else {
		fmt.Printf("Generation budget exhausted after %d generations; best guess %d (fitness %.2f)\n",
			result.Generations, result.BestGuess, result.BestFitness)
	}

	if err := tracker.Save(cfg.Logging.StatsPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save stats: %v\n", err)
	}
	if err := stats.RenderEvolutionChart(result.History, cfg.Logging.ChartPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to render chart: %v\n", err)
	}
}
