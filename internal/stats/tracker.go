package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"

	"evoguess/internal/config"
	"evoguess/internal/engine"
)

// Improvement records a jump in best fitness between generations
type Improvement struct {
	Generation int     `json:"generation"`
	Delta      float64 `json:"delta"`
	From       float64 `json:"from"`
	To         float64 `json:"to"`
}

// Analysis summarizes a completed run's fitness history
type Analysis struct {
	MeanBestFitness     float64       `json:"mean_best_fitness"`
	MeanAvgFitness      float64       `json:"mean_avg_fitness"`
	BestFitnessStdDev   float64       `json:"best_fitness_std_dev"`
	StagnantGenerations int           `json:"stagnant_generations"`
	Improvements        []Improvement `json:"improvements,omitempty"`
	LargestImprovement  *Improvement  `json:"largest_improvement,omitempty"`
}

// Tracker collects the full history of one run for reporting and export
type Tracker struct {
	Config    *config.Config            `json:"config"`
	Target    int                       `json:"target"`
	Solved    bool                      `json:"solved"`
	BestGuess int                       `json:"best_guess"`
	StartedAt time.Time                 `json:"started_at"`
	Elapsed   float64                   `json:"elapsed_seconds"`
	History   []engine.GenerationRecord `json:"history"`
	Analysis  *Analysis                 `json:"analysis,omitempty"`
}

// NewTracker starts tracking a run
func NewTracker(cfg *config.Config, target int) *Tracker {
	return &Tracker{
		Config:    cfg,
		Target:    target,
		StartedAt: time.Now(),
	}
}

// Record appends one generation record to the history
func (t *Tracker) Record(rec engine.GenerationRecord) {
	t.History = append(t.History, rec)
}

// Finish stores the terminal result and runs the analysis
func (t *Tracker) Finish(result engine.Result) {
	t.Solved = result.Solved
	t.BestGuess = result.BestGuess
	t.Elapsed = result.Elapsed.Seconds()
	if len(t.History) == 0 {
		t.History = result.History
	}
	t.Analysis = t.analyze()
}

func (t *Tracker) analyze() *Analysis {
	if len(t.History) == 0 {
		return nil
	}

	best := make([]float64, len(t.History))
	avg := make([]float64, len(t.History))
	for i, rec := range t.History {
		best[i] = rec.BestFitness
		avg[i] = rec.AvgFitness
	}

	a := &Analysis{
		MeanBestFitness: stat.Mean(best, nil),
		MeanAvgFitness:  stat.Mean(avg, nil),
	}
	if len(best) > 1 {
		a.BestFitnessStdDev = stat.StdDev(best, nil)
	}

	stagnant := 0
	prev := best[0]
	for i := 1; i < len(best); i++ {
		if best[i] > prev {
			imp := Improvement{
				Generation: t.History[i].Generation,
				Delta:      best[i] - prev,
				From:       prev,
				To:         best[i],
			}
			a.Improvements = append(a.Improvements, imp)
			if a.LargestImprovement == nil || imp.Delta > a.LargestImprovement.Delta {
				largest := imp
				a.LargestImprovement = &largest
			}
			stagnant = 0
		} else {
			stagnant++
		}
		prev = best[i]
	}
	a.StagnantGenerations = stagnant

	return a
}

// Save writes the tracker to a JSON file
func (t *Tracker) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a previously saved tracker from a JSON file
func Load(path string) (*Tracker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t := &Tracker{}
	if err := json.Unmarshal(data, t); err != nil {
		return nil, err
	}
	return t, nil
}

// TextReport renders a plain-text summary of the run
func (t *Tracker) TextReport() string {
	var b strings.Builder
	line := strings.Repeat("=", 60)

	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, "GENETIC ALGORITHM RUN REPORT")
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "Target:       %d\n", t.Target)
	fmt.Fprintf(&b, "Solved:       %v\n", t.Solved)
	fmt.Fprintf(&b, "Best guess:   %d\n", t.BestGuess)
	fmt.Fprintf(&b, "Generations:  %d\n", len(t.History))
	fmt.Fprintf(&b, "Elapsed:      %.3fs\n", t.Elapsed)

	if t.Analysis != nil {
		fmt.Fprintln(&b, line)
		fmt.Fprintf(&b, "Mean best fitness:    %.2f\n", t.Analysis.MeanBestFitness)
		fmt.Fprintf(&b, "Mean avg fitness:     %.2f\n", t.Analysis.MeanAvgFitness)
		fmt.Fprintf(&b, "Best fitness stddev:  %.2f\n", t.Analysis.BestFitnessStdDev)
		fmt.Fprintf(&b, "Improvements:         %d\n", len(t.Analysis.Improvements))
		if t.Analysis.LargestImprovement != nil {
			li := t.Analysis.LargestImprovement
			fmt.Fprintf(&b, "Largest improvement:  +%.2f at gen %d (%.2f -> %.2f)\n",
				li.Delta, li.Generation, li.From, li.To)
		}
	}

	fmt.Fprintln(&b, line)
	return b.String()
}
