package loess

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-loess/stats/kernel"
	"github.com/cwbudde/algo-loess/stats/residual"
)

// Smoother computes robust LOESS fits with a fixed configuration.
type Smoother struct {
	cfg config
}

// Point is a single (x, y) sample.
type Point struct {
	X, Y float64
}

// Fit is the outcome of a smoothing call.
type Fit struct {
	// Smoothed holds the fitted value at each input x.
	Smoothed []float64
	// Residuals holds |y - Smoothed| from the last pass.
	Residuals []float64
	// RobustnessWeights holds the bisquare weights used in the last pass.
	RobustnessWeights []float64
	// Passes is the number of fitting sweeps performed.
	Passes int
	// Converged reports that iteration stopped early because the median
	// residual fell below the accuracy.
	Converged bool
}

// New returns a Smoother configured by opts.
func New(opts ...Option) (*Smoother, error) {
	cfg := applyOptions(opts)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &Smoother{cfg: cfg}, nil
}

// Smooth is a convenience wrapper around New and Smoother.Smooth.
func Smooth(xval, yval []float64, opts ...Option) ([]float64, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return s.Smooth(xval, yval)
}

// Accuracy returns the configured numerical tolerance.
func (s *Smoother) Accuracy() float64 { return s.cfg.accuracy }

// Bandwidth returns the configured bandwidth fraction.
func (s *Smoother) Bandwidth() float64 { return s.cfg.bandwidth }

// RobustnessFactor returns the configured number of fitting passes.
func (s *Smoother) RobustnessFactor() int { return s.cfg.robustnessFactor }

// Smooth returns the LOESS fit of yval at every xval with unit prior weights.
func (s *Smoother) Smooth(xval, yval []float64) ([]float64, error) {
	fit, err := s.Fit(xval, yval, nil)
	if err != nil {
		return nil, err
	}
	return fit.Smoothed, nil
}

// SmoothWeighted is Smooth with per-point prior weights. A nil weights
// slice means unit weights.
func (s *Smoother) SmoothWeighted(xval, yval, weights []float64) ([]float64, error) {
	fit, err := s.Fit(xval, yval, weights)
	if err != nil {
		return nil, err
	}
	return fit.Smoothed, nil
}

// SmoothPoints smooths a slice of (x, y) pairs sorted by X.
func (s *Smoother) SmoothPoints(points []Point) ([]float64, error) {
	fit, err := s.FitPoints(points)
	if err != nil {
		return nil, err
	}
	return fit.Smoothed, nil
}

// FitPoints is Fit for (x, y) pairs sorted by X, with unit prior weights.
func (s *Smoother) FitPoints(points []Point) (*Fit, error) {
	xval := make([]float64, len(points))
	yval := make([]float64, len(points))
	for i, p := range points {
		xval[i] = p.X
		yval[i] = p.Y
	}
	return s.Fit(xval, yval, nil)
}

// Fit smooths yval against xval and returns the fit with its diagnostics.
// weights may be nil, meaning every point has prior weight 1.
//
// Inputs of length one or two are returned unchanged.
func (s *Smoother) Fit(xval, yval, weights []float64) (*Fit, error) {
	if err := validateShape(xval, yval, weights); err != nil {
		return nil, err
	}

	n := len(xval)
	if n <= 2 {
		return identityFit(yval), nil
	}

	if err := validateValues(xval, yval, weights); err != nil {
		return nil, err
	}

	points, err := bandwidthInPoints(s.cfg.bandwidth, n)
	if err != nil {
		return nil, err
	}

	if weights == nil {
		weights = ones(n)
	}

	return s.run(xval, yval, weights, points)
}

func (s *Smoother) run(xval, yval, weights []float64, points int) (*Fit, error) {
	n := len(xval)
	accuracy := s.cfg.accuracy

	result := make([]float64, n)
	residuals := make([]float64, n)
	robust := ones(n)
	combined := make([]float64, n)

	fit := &Fit{
		Smoothed:          result,
		Residuals:         residuals,
		RobustnessWeights: robust,
	}

	for pass := range s.cfg.robustnessFactor {
		if err := kernel.ApplyWeights(combined, robust, weights); err != nil {
			return nil, err
		}

		iv := interval{left: 0, right: points - 1}
		for i := range n {
			if i > 0 {
				iv.update(xval, robust, i)
			}

			value, ok := localFit(xval, yval, robust, combined, iv, i, accuracy)
			if ok {
				result[i] = value
			} else if pass == 0 {
				result[i] = yval[i]
			}
		}

		if err := residual.Absolute(residuals, yval, result); err != nil {
			return nil, err
		}

		for i, r := range residuals {
			if !isFinite(r) {
				return nil, fmt.Errorf("%w: pass %d, x[%d]=%g, smoothed %g", ErrOverflow, pass+1, i, xval[i], result[i])
			}
		}

		fit.Passes = pass + 1

		if pass == s.cfg.robustnessFactor-1 {
			break
		}

		median := residual.UpperMedian(residuals)
		if median < accuracy {
			fit.Converged = true
			break
		}

		if err := kernel.BisquareWeights(robust, residuals, 6*median); err != nil {
			return nil, err
		}
	}

	return fit, nil
}

// localFit evaluates at x[i] the weighted least-squares line through the
// neighbourhood iv. ok is false when no point in the neighbourhood carries
// weight.
func localFit(xval, yval, robust, combined []float64, iv interval, i int, accuracy float64) (value float64, ok bool) {
	x := xval[i]

	maxDist := math.Abs(xval[iv.edge(xval, i)] - x)
	denom := 0.0
	if maxDist > 0 {
		denom = 1 / maxDist
	}

	var sumWeights, sumX, sumXSquared, sumY, sumXY float64

	for k := iv.left; k <= iv.right; k++ {
		if robust[k] == 0 {
			continue
		}

		xk := xval[k]
		yk := yval[k]

		var dist float64
		if k < i {
			dist = x - xk
		} else {
			dist = xk - x
		}

		// A zero-width neighbourhood holds only ties with x; weight them evenly.
		tri := 1.0
		if denom > 0 {
			tri = kernel.Tricube(dist * denom)
		}

		w := tri * combined[k]
		xkw := xk * w

		sumWeights += w
		sumX += xkw
		sumXSquared += xk * xkw
		sumY += yk * w
		sumXY += yk * xkw
	}

	if sumWeights == 0 {
		return 0, false
	}

	meanX := sumX / sumWeights
	meanY := sumY / sumWeights
	meanXY := sumXY / sumWeights
	meanXSquared := sumXSquared / sumWeights

	variance := meanXSquared - meanX*meanX

	var beta float64
	if math.Sqrt(math.Abs(variance)) >= accuracy {
		beta = (meanXY - meanX*meanY) / variance
	}

	alpha := meanY - beta*meanX

	return beta*x + alpha, true
}

func identityFit(yval []float64) *Fit {
	return &Fit{
		Smoothed:          append([]float64(nil), yval...),
		Residuals:         make([]float64, len(yval)),
		RobustnessWeights: ones(len(yval)),
	}
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
