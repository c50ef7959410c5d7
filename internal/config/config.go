package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"evoguess/internal/ga"
)

// Config is the root configuration structure
type Config struct {
	Seed    int64         `yaml:"seed"`
	Game    GameConfig    `yaml:"game"`
	GA      GAConfig      `yaml:"ga"`
	Methods MethodConfig  `yaml:"methods"`
	Logging LoggingConfig `yaml:"logging"`
}

// GameConfig defines the guessing range and run limits
type GameConfig struct {
	MinNumber       int `yaml:"min_number"`
	MaxNumber       int `yaml:"max_number"`
	MaxGenerations  int `yaml:"max_generations"`
	DisplayInterval int `yaml:"display_interval"`
}

// GAConfig defines genetic algorithm parameters
type GAConfig struct {
	Population    int     `yaml:"population"`
	CrossoverRate float64 `yaml:"crossover_rate"`
	MutationRate  float64 `yaml:"mutation_rate"`
	MutationRange int     `yaml:"mutation_range"` // 0 = 10% of the value range
	Elites        int     `yaml:"elites"`
	TournamentK   int     `yaml:"tournament_k"`
}

// MethodConfig selects the strategy for each operator family
type MethodConfig struct {
	Selection string `yaml:"selection"` // tournament|roulette|rank|sus
	Crossover string `yaml:"crossover"` // arithmetic|average|binary|binary_two_point|adaptive
	Mutation  string `yaml:"mutation"`  // random|bit_flip|boundary|gaussian|adaptive
	Fitness   string `yaml:"fitness"`   // linear|inverse|exponential|combined|hot_cold
}

// LoggingConfig defines run artifact paths and console verbosity
type LoggingConfig struct {
	EveryGenSummary bool   `yaml:"every_gen_summary"`
	CSVPath         string `yaml:"csv_path"`
	JSONPath        string `yaml:"json_path"`
	StatsPath       string `yaml:"stats_path"`
	ChartPath       string `yaml:"chart_path"`
}

// Default returns a configuration with every parameter at its default
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads a YAML config file, fills defaults and clamps invalid values.
// Only I/O and syntax problems surface as errors; out-of-range values and
// unknown method names are corrected silently.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	cfg.Validate()
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if cfg.Game.MinNumber == 0 {
		cfg.Game.MinNumber = 1
	}
	if cfg.Game.MaxNumber == 0 {
		cfg.Game.MaxNumber = 100
	}
	if cfg.Game.MaxGenerations == 0 {
		cfg.Game.MaxGenerations = 1000
	}
	if cfg.Game.DisplayInterval == 0 {
		cfg.Game.DisplayInterval = 5
	}
	if cfg.GA.Population == 0 {
		cfg.GA.Population = 20
	}
	if cfg.GA.CrossoverRate == 0 {
		cfg.GA.CrossoverRate = 0.8
	}
	if cfg.GA.MutationRate == 0 {
		cfg.GA.MutationRate = 0.1
	}
	if cfg.GA.Elites == 0 {
		cfg.GA.Elites = 2
	}
	if cfg.GA.TournamentK == 0 {
		cfg.GA.TournamentK = 3
	}
	if cfg.Methods.Selection == "" {
		cfg.Methods.Selection = ga.SelectionTournament
	}
	if cfg.Methods.Crossover == "" {
		cfg.Methods.Crossover = ga.CrossoverAdaptive
	}
	if cfg.Methods.Mutation == "" {
		cfg.Methods.Mutation = ga.MutationAdaptive
	}
	if cfg.Methods.Fitness == "" {
		cfg.Methods.Fitness = ga.FitnessLinear
	}
	if cfg.Logging.CSVPath == "" {
		cfg.Logging.CSVPath = "runs/run.csv"
	}
	if cfg.Logging.JSONPath == "" {
		cfg.Logging.JSONPath = "runs/run.jsonl"
	}
	if cfg.Logging.StatsPath == "" {
		cfg.Logging.StatsPath = "runs/stats.json"
	}
	if cfg.Logging.ChartPath == "" {
		cfg.Logging.ChartPath = "runs/evolution.html"
	}
}

// Validate clamps out-of-range values and replaces unknown method names with
// their defaults. Runs once at construction; never fails.
func (cfg *Config) Validate() {
	cfg.Game.MinNumber = clampInt(cfg.Game.MinNumber, 1, 1000000)
	cfg.Game.MaxNumber = clampInt(cfg.Game.MaxNumber, cfg.Game.MinNumber, 1000000)
	cfg.Game.MaxGenerations = clampInt(cfg.Game.MaxGenerations, 1, 100000)
	cfg.Game.DisplayInterval = clampInt(cfg.Game.DisplayInterval, 1, 1000)

	cfg.GA.Population = clampInt(cfg.GA.Population, 2, 1000)
	cfg.GA.CrossoverRate = clampFloat(cfg.GA.CrossoverRate, 0, 1)
	cfg.GA.MutationRate = clampFloat(cfg.GA.MutationRate, 0, 1)
	cfg.GA.Elites = clampInt(cfg.GA.Elites, 0, cfg.GA.Population/2)
	cfg.GA.TournamentK = clampInt(cfg.GA.TournamentK, 2, 10)
	if cfg.GA.MutationRange < 0 {
		cfg.GA.MutationRange = 0
	}

	if !validName(cfg.Methods.Selection, ga.SelectionTournament, ga.SelectionRoulette, ga.SelectionRank, ga.SelectionSUS) {
		cfg.Methods.Selection = ga.SelectionTournament
	}
	if !validName(cfg.Methods.Crossover, ga.CrossoverArithmetic, ga.CrossoverAverage, ga.CrossoverBinary, ga.CrossoverBinaryTwoPoint, ga.CrossoverAdaptive) {
		cfg.Methods.Crossover = ga.CrossoverAdaptive
	}
	if !validName(cfg.Methods.Mutation, ga.MutationRandom, ga.MutationBitFlip, ga.MutationBoundary, ga.MutationGaussian, ga.MutationAdaptive) {
		cfg.Methods.Mutation = ga.MutationAdaptive
	}
	if !validName(cfg.Methods.Fitness, ga.FitnessLinear, ga.FitnessInverse, ga.FitnessExponential, ga.FitnessCombined, ga.FitnessHotCold) {
		cfg.Methods.Fitness = ga.FitnessLinear
	}
}

// Params converts the configuration into the ga package's immutable form
func (cfg *Config) Params() ga.Params {
	return ga.Params{
		MinValue:      cfg.Game.MinNumber,
		MaxValue:      cfg.Game.MaxNumber,
		Size:          cfg.GA.Population,
		CrossoverRate: cfg.GA.CrossoverRate,
		MutationRate:  cfg.GA.MutationRate,
		MutationRange: cfg.GA.MutationRange,
		ElitismCount:  cfg.GA.Elites,
		TournamentK:   cfg.GA.TournamentK,
		Selection:     cfg.Methods.Selection,
		Crossover:     cfg.Methods.Crossover,
		Mutation:      cfg.Methods.Mutation,
		Fitness:       cfg.Methods.Fitness,
	}
}

// Save writes the configuration back to a YAML file
func (cfg *Config) Save(path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func validName(name string, valid ...string) bool {
	for _, v := range valid {
		if name == v {
			return true
		}
	}
	return false
}
