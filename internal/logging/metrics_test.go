package logging

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evoguess/internal/engine"
)

func TestLoggerWritesCSVAndJSONL(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "runs", "run.csv")
	jsonPath := filepath.Join(dir, "runs", "run.jsonl")

	logger, err := NewLogger(csvPath, jsonPath)
	require.NoError(t, err)
	require.NoError(t, logger.Init())

	logger.LogGeneration(engine.GenerationRecord{
		Generation: 1, BestFitness: 95.5, BestGuess: 48,
		AvgFitness: 60.25, FitnessStdDev: 12.5, UniqueValues: 14,
	})
	logger.LogGeneration(engine.GenerationRecord{
		Generation: 2, BestFitness: 100, BestGuess: 50,
		AvgFitness: 70, FitnessStdDev: 10, UniqueValues: 11,
	})
	logger.Close()

	f, err := os.Open(csvPath)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "generation", rows[0][0])
	assert.Equal(t, []string{"1", "95.50", "48", "60.25", "12.50", "14"}, rows[1])
	assert.Equal(t, "2", rows[2][0])

	jsonData, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(jsonData)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"best_guess":48`)
	assert.Contains(t, lines[1], `"best_fitness":100`)
}

func TestLogBeforeInitIsNoop(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(filepath.Join(dir, "a.csv"), filepath.Join(dir, "a.jsonl"))
	require.NoError(t, err)

	logger.LogGeneration(engine.GenerationRecord{Generation: 1})
	logger.Close()

	_, err = os.Stat(filepath.Join(dir, "a.csv"))
	assert.True(t, os.IsNotExist(err))
}
