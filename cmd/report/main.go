package main

import (
	"flag"
	"fmt"
	"os"

	"evoguess/internal/stats"
)

func main() {
	statsPath := flag.String("stats", "runs/stats.json", "path to a saved run-stats JSON")
	chartPath := flag.String("chart", "", "render an evolution chart to this HTML file")
	flag.Parse()

	tracker, err := stats.Load(*statsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(tracker.TextReport())

	if *chartPath != "" {
		if err := stats.RenderEvolutionChart(tracker.History, *chartPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Chart written to %s\n", *chartPath)
	}
}
