package loess

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by the smoother. Returned errors wrap these sentinels and
// can be matched with errors.Is.
var (
	ErrEmptyInput        = errors.New("loess: empty input")
	ErrLengthMismatch    = errors.New("loess: input lengths differ")
	ErrNonFinite         = errors.New("loess: non-finite sample")
	ErrInvalidWeight     = errors.New("loess: weight must be finite and >= 0")
	ErrUnsorted          = errors.New("loess: x values must be sorted ascending")
	ErrInvalidAccuracy   = errors.New("loess: accuracy must be finite and > 0")
	ErrInvalidBandwidth  = errors.New("loess: bandwidth must be in (0, 1]")
	ErrInvalidRobustness = errors.New("loess: robustness factor must be >= 1")
	ErrBandwidthTooSmall = errors.New("loess: bandwidth is too small")
	ErrOverflow          = errors.New("loess: fit overflowed float64 range")
)

func validateConfig(cfg config) error {
	if !(cfg.accuracy > 0) || math.IsInf(cfg.accuracy, 1) {
		return fmt.Errorf("%w: %g", ErrInvalidAccuracy, cfg.accuracy)
	}
	if !(cfg.bandwidth > 0 && cfg.bandwidth <= 1) {
		return fmt.Errorf("%w: %g", ErrInvalidBandwidth, cfg.bandwidth)
	}
	if cfg.robustnessFactor < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidRobustness, cfg.robustnessFactor)
	}
	return nil
}

func validateShape(xval, yval, weights []float64) error {
	if len(xval) == 0 {
		return ErrEmptyInput
	}
	if len(xval) != len(yval) {
		return fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrLengthMismatch, len(xval), len(yval))
	}
	if weights != nil && len(weights) != len(xval) {
		return fmt.Errorf("%w: len(x)=%d, len(weights)=%d", ErrLengthMismatch, len(xval), len(weights))
	}
	return nil
}

func validateValues(xval, yval, weights []float64) error {
	for i := range xval {
		if !isFinite(xval[i]) {
			return fmt.Errorf("%w: x[%d]=%g", ErrNonFinite, i, xval[i])
		}
		if !isFinite(yval[i]) {
			return fmt.Errorf("%w: y[%d]=%g", ErrNonFinite, i, yval[i])
		}
		if i > 0 && xval[i] < xval[i-1] {
			return fmt.Errorf("%w: x[%d]=%g < x[%d]=%g", ErrUnsorted, i, xval[i], i-1, xval[i-1])
		}
	}

	for i, w := range weights {
		if !isFinite(w) || w < 0 {
			return fmt.Errorf("%w: weights[%d]=%g", ErrInvalidWeight, i, w)
		}
	}

	return nil
}

func bandwidthInPoints(bandwidth float64, n int) (int, error) {
	points := int(bandwidth * float64(n))
	if points < 2 {
		return 0, fmt.Errorf("%w: bandwidth %g over %d points gives %d neighbours, need >= 2",
			ErrBandwidthTooSmall, bandwidth, n, points)
	}
	return points, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
