// Package plot renders a LOESS fit as an interactive HTML chart.
package plot

import (
	"errors"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	chartWidth  = "100%"
	chartHeight = "500px"
	lineWidth   = 2
	symbolSize  = 6
)

var errMismatchedLength = errors.New("plot: x, y and smoothed must have same length")

// Series names used in the chart legend.
const (
	SamplesSeries  = "samples"
	SmoothedSeries = "smoothed"
)

// Build returns a chart of the raw samples as a scatter and the smoothed
// values as a line over a numeric x axis.
func Build(title string, x, y, smoothed []float64) (*charts.Line, error) {
	if len(x) != len(y) || len(x) != len(smoothed) {
		return nil, errMismatchedLength
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title, Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "y"}),
	)

	fitted := make([]opts.LineData, len(x))
	for i := range x {
		fitted[i] = opts.LineData{Value: []float64{x[i], smoothed[i]}}
	}

	line.AddSeries(SmoothedSeries, fitted,
		charts.WithLineStyleOpts(opts.LineStyle{Width: lineWidth}),
	)

	raw := make([]opts.ScatterData, len(x))
	for i := range x {
		raw[i] = opts.ScatterData{Value: []float64{x[i], y[i]}, SymbolSize: symbolSize}
	}

	scatter := charts.NewScatter()
	scatter.AddSeries(SamplesSeries, raw)

	line.Overlap(scatter)

	return line, nil
}

// Render writes the chart built by Build as a standalone HTML page.
func Render(w io.Writer, title string, x, y, smoothed []float64) error {
	line, err := Build(title, x, y, smoothed)
	if err != nil {
		return err
	}

	return line.Render(w)
}
