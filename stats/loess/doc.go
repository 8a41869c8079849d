// Package loess implements robust locally weighted linear regression
// (LOESS) for one-dimensional scatter data.
//
// For every sample the smoother selects a neighbourhood of
// floor(bandwidth*N) points around x[i], fits a straight line by weighted
// least squares using tricube distance weights, and evaluates the line at
// x[i]. The whole sweep is repeated for the configured robustness factor;
// between sweeps each point is down-weighted with the bisquare function of
// its residual, scaled by six times the upper median absolute residual.
//
// # Usage
//
//	s, err := loess.New(loess.WithBandwidth(0.3))
//	if err != nil {
//		return err
//	}
//	smoothed, err := s.Smooth(x, y)
//
// x must be sorted in non-decreasing order; the smoother validates this and
// never reorders its input. Optional per-point prior weights are passed to
// [Smoother.SmoothWeighted]. [Smoother.Fit] additionally returns residuals
// and the final robustness weights.
//
// A [Smoother] holds only immutable configuration and may be shared between
// goroutines.
package loess
