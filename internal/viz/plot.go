package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/growthsim/internal/analysis"
)

const (
	plotHeight = 12
	plotWidth  = 80
)

// PlotPath renders a single capital path as an ASCII line chart.
func PlotPath(path []float64, caption string) string {
	return asciigraph.Plot(path,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotFlows overlays the derived flow series of a run.
func PlotFlows(f analysis.Flows) string {
	return asciigraph.PlotMany(
		[][]float64{f.Output, f.Investment, f.Depreciation, f.Consumption},
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.SeriesColors(
			asciigraph.Green,
			asciigraph.Blue,
			asciigraph.Red,
			asciigraph.Yellow,
		),
		asciigraph.SeriesLegends("output", "investment", "depreciation", "consumption"),
		asciigraph.Caption("per-period flows"),
	)
}

// PlotCompare overlays several capital paths, one per label.
// The palette wraps around, so any number of series gets a color.
func PlotCompare(paths [][]float64, legends []string, caption string) string {
	palette := []asciigraph.AnsiColor{
		asciigraph.Green,
		asciigraph.Blue,
		asciigraph.Red,
		asciigraph.Yellow,
		asciigraph.Cyan,
		asciigraph.Magenta,
	}
	colors := make([]asciigraph.AnsiColor, len(paths))
	for i := range colors {
		colors[i] = palette[i%len(palette)]
	}

	return asciigraph.PlotMany(paths,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(caption),
	)
}
