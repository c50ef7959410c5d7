package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"evoguess/internal/engine"
)

// RenderEvolutionChart writes an HTML line chart of best and average fitness
// per generation.
func RenderEvolutionChart(history []engine.GenerationRecord, path string) error {
	if len(history) == 0 {
		return fmt.Errorf("no generation history to chart")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Fitness Evolution",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Generation",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Fitness",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	xAxis := make([]string, len(history))
	bestData := make([]opts.LineData, len(history))
	avgData := make([]opts.LineData, len(history))
	for i, rec := range history {
		xAxis[i] = strconv.Itoa(rec.Generation)
		bestData[i] = opts.LineData{Value: rec.BestFitness}
		avgData[i] = opts.LineData{Value: rec.AvgFitness}
	}

	line.SetXAxis(xAxis).
		AddSeries("Best Fitness", bestData).
		AddSeries("Average Fitness", avgData).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
		)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return line.Render(f)
}
