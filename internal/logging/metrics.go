package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"evoguess/internal/engine"
)

// Logger writes per-generation records to CSV and JSONL artifacts
type Logger struct {
	csvPath     string
	jsonPath    string
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	initialized bool
}

// NewLogger creates a logger and ensures the artifact directories exist
func NewLogger(csvPath, jsonPath string) (*Logger, error) {
	l := &Logger{
		csvPath:  csvPath,
		jsonPath: jsonPath,
	}

	if err := os.MkdirAll(filepath.Dir(csvPath), 0755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(jsonPath), 0755); err != nil {
		return nil, err
	}

	return l, nil
}

// Init opens the log files and writes the CSV header
func (l *Logger) Init() error {
	var err error

	l.csvFile, err = os.Create(l.csvPath)
	if err != nil {
		return err
	}
	l.csvWriter = csv.NewWriter(l.csvFile)

	header := []string{
		"generation", "best_fitness", "best_guess", "avg_fitness",
		"fitness_std_dev", "unique_values",
	}
	if err := l.csvWriter.Write(header); err != nil {
		return err
	}

	l.jsonFile, err = os.OpenFile(l.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	l.initialized = true
	return nil
}

// Close flushes and closes all log files
func (l *Logger) Close() {
	if l.csvWriter != nil {
		l.csvWriter.Flush()
	}
	if l.csvFile != nil {
		l.csvFile.Close()
	}
	if l.jsonFile != nil {
		l.jsonFile.Close()
	}
}

// LogGeneration appends one record to the CSV and JSONL artifacts
func (l *Logger) LogGeneration(rec engine.GenerationRecord) {
	if !l.initialized {
		return
	}

	row := []string{
		strconv.Itoa(rec.Generation),
		fmt.Sprintf("%.2f", rec.BestFitness),
		strconv.Itoa(rec.BestGuess),
		fmt.Sprintf("%.2f", rec.AvgFitness),
		fmt.Sprintf("%.2f", rec.FitnessStdDev),
		strconv.Itoa(rec.UniqueValues),
	}
	l.csvWriter.Write(row)
	l.csvWriter.Flush()

	jsonLine, _ := json.Marshal(rec)
	l.jsonFile.WriteString(string(jsonLine) + "\n")
}

// PrintSummary writes a one-line console summary for a generation
func PrintSummary(rec engine.GenerationRecord) {
	fmt.Printf("Gen %4d | Best: %6.2f (guess %d) | Avg: %6.2f | StdDev: %6.2f | Unique: %d\n",
		rec.Generation, rec.BestFitness, rec.BestGuess, rec.AvgFitness,
		rec.FitnessStdDev, rec.UniqueValues)
}
