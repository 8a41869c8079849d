package residual

import (
	"errors"
	"math"
	"slices"
)

var errMismatchedLength = errors.New("residual: observations and fit must have same length")

// Stats summarises a residual vector y - fit.
type Stats struct {
	Length     int
	Mean       float64 // mean signed residual (bias)
	SumSquares float64 // residual sum of squares
	RMS        float64
	MeanAbs    float64
	MaxAbs     float64
	MaxAbsPos  int
	Median     float64 // upper median of |r|
	Variance   float64
	Skewness   float64
	Kurtosis   float64
}

// Signed stores y[i] - fit[i] in dst.
func Signed(dst, y, fit []float64) error {
	if len(y) != len(fit) || len(dst) != len(y) {
		return errMismatchedLength
	}

	for i := range y {
		dst[i] = y[i] - fit[i]
	}

	return nil
}

// Absolute stores |y[i] - fit[i]| in dst.
func Absolute(dst, y, fit []float64) error {
	if len(y) != len(fit) || len(dst) != len(y) {
		return errMismatchedLength
	}

	for i := range y {
		dst[i] = math.Abs(y[i] - fit[i])
	}

	return nil
}

// UpperMedian returns sorted(values)[len(values)/2] without modifying values.
// Returns 0 for an empty slice.
func UpperMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	return sorted[len(sorted)/2]
}

// SumSquares returns the sum of squared residuals using Kahan summation.
func SumSquares(residuals []float64) float64 {
	var sum, c float64
	for _, r := range residuals {
		y := r*r - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum
}

// RMS returns the root-mean-square residual.
func RMS(residuals []float64) float64 {
	if len(residuals) == 0 {
		return 0
	}

	return math.Sqrt(SumSquares(residuals) / float64(len(residuals)))
}

// Calculate computes residual statistics in one pass, using Welford's online
// algorithm for the moments, plus a sort for the median.
func Calculate(residuals []float64) Stats {
	n := len(residuals)
	if n == 0 {
		return Stats{}
	}

	var (
		mean, m2, m3, m4 float64
		sumAbs           float64
		maxAbs           float64
		maxPos           int
	)

	abs := make([]float64, n)

	for i, r := range residuals {
		ni := float64(i + 1)
		delta := r - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		a := math.Abs(r)
		abs[i] = a
		sumAbs += a

		if a > maxAbs {
			maxAbs = a
			maxPos = i
		}
	}

	nf := float64(n)
	ss := SumSquares(residuals)
	variance := m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	slices.Sort(abs)

	return Stats{
		Length:     n,
		Mean:       mean,
		SumSquares: ss,
		RMS:        math.Sqrt(ss / nf),
		MeanAbs:    sumAbs / nf,
		MaxAbs:     maxAbs,
		MaxAbsPos:  maxPos,
		Median:     abs[n/2],
		Variance:   variance,
		Skewness:   skewness,
		Kurtosis:   kurtosis,
	}
}
