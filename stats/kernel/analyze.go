package kernel

import "math"

// epanechnikovCost is sqrt(mu2) * R for the Epanechnikov kernel, the
// minimum over all second-order kernels.
var epanechnikovCost = math.Sqrt(1.0/5) * 3.0 / 5

// Analysis holds numerically integrated properties of a kernel table.
type Analysis struct {
	// Area is the trapezoidal integral of the table over [-1, 1].
	Area float64
	// SecondMoment is the variance of the unit-area kernel.
	SecondMoment float64
	// Roughness is the integral of the squared unit-area kernel.
	Roughness float64
	// Efficiency is the asymptotic efficiency relative to Epanechnikov (1 = optimal).
	Efficiency float64
}

// Analyze integrates a kernel table sampled uniformly over [-1, 1], as
// produced by Generate without WithHalf.
func Analyze(coeffs []float64) (Analysis, error) {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}, errEmptyCoeffs
	}

	if err := validateSize(n); err != nil {
		return Analysis{}, err
	}

	step := sampleStep(n, false)
	area := trapezoid(coeffs, step)

	if area == 0 {
		return Analysis{}, errZeroArea
	}

	moment := make([]float64, n)
	squared := make([]float64, n)

	for i, c := range coeffs {
		u := samplePosition(i, n, false)
		moment[i] = u * u * c
		squared[i] = c * c
	}

	mu2 := trapezoid(moment, step) / area
	rough := trapezoid(squared, step) / (area * area)

	var eff float64
	if cost := math.Sqrt(mu2) * rough; cost > 0 {
		eff = epanechnikovCost / cost
	}

	return Analysis{
		Area:         area,
		SecondMoment: mu2,
		Roughness:    rough,
		Efficiency:   eff,
	}, nil
}

// Efficiency returns the closed-form asymptotic efficiency of t relative to
// the Epanechnikov kernel.
func Efficiency(t Type) float64 {
	m := Info(t)
	if m.SecondMoment <= 0 || m.Roughness <= 0 {
		return 0
	}

	return epanechnikovCost / (math.Sqrt(m.SecondMoment) * m.Roughness)
}
