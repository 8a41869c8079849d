package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-loess/internal/config"
	"github.com/cwbudde/algo-loess/internal/dataset"
	"github.com/cwbudde/algo-loess/internal/plot"
	"github.com/cwbudde/algo-loess/stats/loess"
	"github.com/cwbudde/algo-loess/stats/residual"
)

const stdinName = "-"

var errUnsortedInput = errors.New("samples are not sorted by x (use --sort)")

// flagBindings maps config keys to smooth command flags.
var flagBindings = map[string]string{
	"smoother.accuracy":          "accuracy",
	"smoother.bandwidth":         "bandwidth",
	"smoother.robustness_factor": "robustness-factor",
	"smoother.sort":              "sort",
	"output.format":              "format",
	"output.precision":           "precision",
	"plot.path":                  "plot",
	"plot.title":                 "title",
}

func newSmoothCommand(ro *rootOptions) *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:   "smooth [file]",
		Short: "Smooth x,y[,w] CSV samples",
		Long: `Smooth reads x,y or x,y,w CSV rows, fits a robust LOESS curve and
writes x, y, smoothed value, residual and robustness weight per sample.

Settings come from flags, LOESS_* environment variables
(e.g. LOESS_SMOOTHER_BANDWIDTH) and the config file, in that order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, ro.configPath)
			if err != nil {
				return err
			}

			return runSmooth(cmd, ro.logger, cfg, args)
		},
	}

	flags := cmd.Flags()
	flags.Float64P("bandwidth", "b", loess.DefaultBandwidth, "fraction of samples in each local fit, in (0, 1]")
	flags.Float64("accuracy", loess.DefaultAccuracy, "tolerance for degenerate fits and early stopping")
	flags.IntP("robustness-factor", "r", loess.DefaultRobustnessFactor, "number of fitting passes, 1 disables reweighting")
	flags.Bool("sort", false, "sort samples by x before smoothing")
	flags.StringP("format", "f", config.DefaultFormat, "output format: csv or table")
	flags.IntP("precision", "p", config.DefaultPrecision, "decimals in output, -1 for shortest exact")
	flags.String("plot", "", "write an HTML chart of the fit to this path")
	flags.String("title", config.DefaultPlotTitle, "chart title")

	bindFlags(v, cmd)

	return cmd
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	for key, name := range flagBindings {
		// Lookup never returns nil for the flags defined above.
		_ = v.BindPFlag(key, cmd.Flags().Lookup(name))
	}
}

func runSmooth(cmd *cobra.Command, logger *slog.Logger, cfg *config.Config, args []string) error {
	name := stdinName
	if len(args) == 1 {
		name = args[0]
	}

	samples, err := readSamples(cmd.InOrStdin(), name)
	if err != nil {
		return err
	}

	if !samples.IsSorted() {
		if !cfg.Smoother.Sort {
			return fmt.Errorf("%s: %w", name, errUnsortedInput)
		}

		samples.SortByX()
		logger.Debug("sorted samples by x", "input", name, "samples", samples.Len())
	}

	smoother, err := loess.New(cfg.Options()...)
	if err != nil {
		return err
	}

	fit, err := fitSamples(smoother, samples)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	stats, err := residualStats(samples, fit)
	if err != nil {
		return err
	}

	logger.Info("smoothed",
		"input", name,
		"samples", samples.Len(),
		"weighted", samples.W != nil,
		"bandwidth", smoother.Bandwidth(),
		"passes", fit.Passes,
		"converged", fit.Converged,
		"residual_bias", stats.Mean,
		"residual_rms", stats.RMS,
		"residual_median", stats.Median,
		"residual_max", stats.MaxAbs,
	)

	out := cmd.OutOrStdout()

	switch cfg.Output.Format {
	case config.FormatTable:
		fmt.Fprintln(out, renderFitTable(samples, fit, stats, cfg.Output.Precision))
	default:
		if err := dataset.Write(out, samples, fit, cfg.Output.Precision); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if cfg.Plot.Path != "" {
		if err := writePlot(cfg.Plot, samples, fit); err != nil {
			return err
		}

		logger.Debug("wrote chart", "path", cfg.Plot.Path)
	}

	return nil
}

func readSamples(stdin io.Reader, name string) (*dataset.Samples, error) {
	if name == stdinName {
		samples, err := dataset.Read(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		return samples, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	samples, err := dataset.Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return samples, nil
}

func fitSamples(smoother *loess.Smoother, samples *dataset.Samples) (*loess.Fit, error) {
	if samples.W == nil {
		return smoother.FitPoints(samples.Points())
	}

	return smoother.Fit(samples.X, samples.Y, samples.W)
}

// residualStats summarises the signed residuals y - smoothed.
func residualStats(samples *dataset.Samples, fit *loess.Fit) (residual.Stats, error) {
	signed := make([]float64, samples.Len())
	if err := residual.Signed(signed, samples.Y, fit.Smoothed); err != nil {
		return residual.Stats{}, err
	}

	return residual.Calculate(signed), nil
}

func renderFitTable(samples *dataset.Samples, fit *loess.Fit, stats residual.Stats, precision int) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Footer = text.FormatDefault
	tbl.AppendHeader(table.Row{"x", "y", "smoothed", "residual", "weight"})

	for i := range samples.X {
		tbl.AppendRow(table.Row{
			dataset.FormatFloat(samples.X[i], precision),
			dataset.FormatFloat(samples.Y[i], precision),
			dataset.FormatFloat(fit.Smoothed[i], precision),
			dataset.FormatFloat(fit.Residuals[i], precision),
			dataset.FormatFloat(fit.RobustnessWeights[i], precision),
		})
	}

	tbl.AppendFooter(table.Row{
		fmt.Sprintf("n=%d", samples.Len()),
		fmt.Sprintf("passes=%d", fit.Passes),
		fmt.Sprintf("converged=%t", fit.Converged),
		"rms=" + dataset.FormatFloat(stats.RMS, precision),
		"",
	})

	return tbl.Render()
}

func writePlot(cfg config.PlotConfig, samples *dataset.Samples, fit *loess.Fit) error {
	f, err := os.Create(cfg.Path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}

	if err := plot.Render(f, cfg.Title, samples.X, samples.Y, fit.Smoothed); err != nil {
		_ = f.Close()
		return fmt.Errorf("render chart: %w", err)
	}

	return f.Close()
}
