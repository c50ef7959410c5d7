package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evoguess/internal/ga"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, int64(1337), cfg.Seed)
	assert.Equal(t, 1, cfg.Game.MinNumber)
	assert.Equal(t, 100, cfg.Game.MaxNumber)
	assert.Equal(t, 1000, cfg.Game.MaxGenerations)
	assert.Equal(t, 5, cfg.Game.DisplayInterval)
	assert.Equal(t, 20, cfg.GA.Population)
	assert.Equal(t, 0.8, cfg.GA.CrossoverRate)
	assert.Equal(t, 0.1, cfg.GA.MutationRate)
	assert.Equal(t, 2, cfg.GA.Elites)
	assert.Equal(t, 3, cfg.GA.TournamentK)
	assert.Equal(t, ga.SelectionTournament, cfg.Methods.Selection)
	assert.Equal(t, ga.CrossoverAdaptive, cfg.Methods.Crossover)
	assert.Equal(t, ga.MutationAdaptive, cfg.Methods.Mutation)
	assert.Equal(t, ga.FitnessLinear, cfg.Methods.Fitness)
	assert.Equal(t, "runs/run.csv", cfg.Logging.CSVPath)
}

func TestValidateClampsRanges(t *testing.T) {
	cfg := Default()
	cfg.Game.MinNumber = -5
	cfg.Game.MaxNumber = 2000000
	cfg.GA.Population = 5000
	cfg.GA.CrossoverRate = 1.5
	cfg.GA.MutationRate = -0.2
	cfg.GA.TournamentK = 99
	cfg.GA.MutationRange = -3
	cfg.Validate()

	assert.Equal(t, 1, cfg.Game.MinNumber)
	assert.Equal(t, 1000000, cfg.Game.MaxNumber)
	assert.Equal(t, 1000, cfg.GA.Population)
	assert.Equal(t, 1.0, cfg.GA.CrossoverRate)
	assert.Equal(t, 0.0, cfg.GA.MutationRate)
	assert.Equal(t, 10, cfg.GA.TournamentK)
	assert.Equal(t, 0, cfg.GA.MutationRange)
}

func TestValidateMaxBelowMin(t *testing.T) {
	cfg := Default()
	cfg.Game.MinNumber = 500
	cfg.Game.MaxNumber = 10
	cfg.Validate()

	assert.Equal(t, 500, cfg.Game.MinNumber)
	assert.Equal(t, 500, cfg.Game.MaxNumber)
}

func TestValidateElitesCappedToHalfPopulation(t *testing.T) {
	cfg := Default()
	cfg.GA.Population = 10
	cfg.GA.Elites = 30
	cfg.Validate()

	assert.Equal(t, 5, cfg.GA.Elites)
}

func TestValidateUnknownMethodsFallBack(t *testing.T) {
	cfg := Default()
	cfg.Methods.Selection = "lottery"
	cfg.Methods.Crossover = "blend"
	cfg.Methods.Mutation = "swap"
	cfg.Methods.Fitness = "manhattan"
	cfg.Validate()

	assert.Equal(t, ga.SelectionTournament, cfg.Methods.Selection)
	assert.Equal(t, ga.CrossoverAdaptive, cfg.Methods.Crossover)
	assert.Equal(t, ga.MutationAdaptive, cfg.Methods.Mutation)
	assert.Equal(t, ga.FitnessLinear, cfg.Methods.Fitness)
}

func TestLoadAppliesDefaultsAndClamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	content := []byte(`
game:
  max_number: 500
ga:
  population: 9999
methods:
  selection: roulette
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Game.MinNumber)
	assert.Equal(t, 500, cfg.Game.MaxNumber)
	assert.Equal(t, 1000, cfg.GA.Population)
	assert.Equal(t, ga.SelectionRoulette, cfg.Methods.Selection)
	assert.Equal(t, ga.FitnessLinear, cfg.Methods.Fitness)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Seed = 99
	cfg.Game.MaxNumber = 256
	cfg.Methods.Fitness = ga.FitnessExponential

	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestParamsMapping(t *testing.T) {
	cfg := Default()
	cfg.Game.MinNumber = 10
	cfg.Game.MaxNumber = 200
	cfg.GA.MutationRange = 7

	params := cfg.Params()
	assert.Equal(t, 10, params.MinValue)
	assert.Equal(t, 200, params.MaxValue)
	assert.Equal(t, 20, params.Size)
	assert.Equal(t, 7, params.MutationRange)
	assert.Equal(t, cfg.Methods.Selection, params.Selection)
	assert.Equal(t, cfg.Methods.Fitness, params.Fitness)
}
