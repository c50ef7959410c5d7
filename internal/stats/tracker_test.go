package stats

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evoguess/internal/config"
	"evoguess/internal/engine"
)

func sampleHistory() []engine.GenerationRecord {
	return []engine.GenerationRecord{
		{Generation: 1, BestFitness: 80, BestGuess: 40, AvgFitness: 50},
		{Generation: 2, BestFitness: 80, BestGuess: 40, AvgFitness: 55},
		{Generation: 3, BestFitness: 95, BestGuess: 48, AvgFitness: 60},
		{Generation: 4, BestFitness: 97, BestGuess: 52, AvgFitness: 70},
		{Generation: 5, BestFitness: 97, BestGuess: 52, AvgFitness: 72},
		{Generation: 6, BestFitness: 97, BestGuess: 52, AvgFitness: 75},
	}
}

func finishedTracker() *Tracker {
	tracker := NewTracker(config.Default(), 50)
	for _, rec := range sampleHistory() {
		tracker.Record(rec)
	}
	tracker.Finish(engine.Result{
		Solved:      false,
		Target:      50,
		Generations: 6,
		BestGuess:   52,
		BestFitness: 97,
		Elapsed:     120 * time.Millisecond,
	})
	return tracker
}

func TestAnalysisImprovements(t *testing.T) {
	tracker := finishedTracker()
	analysis := tracker.Analysis
	require.NotNil(t, analysis)

	// jumps at generations 3 (+15) and 4 (+2)
	require.Len(t, analysis.Improvements, 2)
	assert.Equal(t, 3, analysis.Improvements[0].Generation)
	assert.InDelta(t, 15.0, analysis.Improvements[0].Delta, 1e-9)
	assert.Equal(t, 4, analysis.Improvements[1].Generation)

	require.NotNil(t, analysis.LargestImprovement)
	assert.Equal(t, 3, analysis.LargestImprovement.Generation)
	assert.InDelta(t, 80.0, analysis.LargestImprovement.From, 1e-9)
	assert.InDelta(t, 95.0, analysis.LargestImprovement.To, 1e-9)
}

func TestAnalysisStagnation(t *testing.T) {
	tracker := finishedTracker()

	// the last two generations made no progress
	assert.Equal(t, 2, tracker.Analysis.StagnantGenerations)
	assert.InDelta(t, (80.0+80+95+97+97+97)/6, tracker.Analysis.MeanBestFitness, 1e-9)
}

func TestFinishAdoptsResultHistory(t *testing.T) {
	tracker := NewTracker(config.Default(), 50)
	tracker.Finish(engine.Result{
		Solved:    true,
		BestGuess: 50,
		History:   sampleHistory(),
		Elapsed:   time.Second,
	})

	assert.Len(t, tracker.History, 6)
	assert.True(t, tracker.Solved)
	assert.InDelta(t, 1.0, tracker.Elapsed, 1e-9)
	assert.NotNil(t, tracker.Analysis)
}

func TestEmptyHistoryHasNoAnalysis(t *testing.T) {
	tracker := NewTracker(config.Default(), 50)
	tracker.Finish(engine.Result{})
	assert.Nil(t, tracker.Analysis)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tracker := finishedTracker()
	path := filepath.Join(t.TempDir(), "nested", "stats.json")

	require.NoError(t, tracker.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, tracker.Target, loaded.Target)
	assert.Equal(t, tracker.BestGuess, loaded.BestGuess)
	assert.Equal(t, tracker.History, loaded.History)
	require.NotNil(t, loaded.Analysis)
	assert.Equal(t, tracker.Analysis.StagnantGenerations, loaded.Analysis.StagnantGenerations)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestTextReportContents(t *testing.T) {
	report := finishedTracker().TextReport()

	assert.True(t, strings.Contains(report, "Target:       50"))
	assert.True(t, strings.Contains(report, "Best guess:   52"))
	assert.True(t, strings.Contains(report, "Generations:  6"))
	assert.True(t, strings.Contains(report, "Largest improvement:"))
}

func TestRenderEvolutionChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts", "evolution.html")
	require.NoError(t, RenderEvolutionChart(sampleHistory(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Fitness Evolution")
}

func TestRenderEvolutionChartEmptyHistory(t *testing.T) {
	err := RenderEvolutionChart(nil, filepath.Join(t.TempDir(), "x.html"))
	assert.Error(t, err)
}
