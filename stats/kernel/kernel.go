package kernel

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a kernel function.
type Type int

const (
	TypeTricube Type = iota
	TypeBisquare
	TypeEpanechnikov
	TypeTriangle
	TypeUniform
)

// Types lists every supported kernel in declaration order.
var Types = []Type{TypeTricube, TypeBisquare, TypeEpanechnikov, TypeTriangle, TypeUniform}

// Metadata holds closed-form properties of a kernel type.
//
// Area is the integral of the unnormalised kernel over [-1, 1]. SecondMoment
// and Roughness refer to the kernel scaled to unit area.
type Metadata struct {
	Name         string
	Area         float64
	SecondMoment float64
	Roughness    float64
}

var metadataByType = map[Type]Metadata{
	TypeTricube:      {Name: "Tricube", Area: 81.0 / 70, SecondMoment: 35.0 / 243, Roughness: 175.0 / 247},
	TypeBisquare:     {Name: "Bisquare", Area: 16.0 / 15, SecondMoment: 1.0 / 7, Roughness: 5.0 / 7},
	TypeEpanechnikov: {Name: "Epanechnikov", Area: 4.0 / 3, SecondMoment: 1.0 / 5, Roughness: 3.0 / 5},
	TypeTriangle:     {Name: "Triangle", Area: 1, SecondMoment: 1.0 / 6, Roughness: 2.0 / 3},
	TypeUniform:      {Name: "Uniform", Area: 2, SecondMoment: 1.0 / 3, Roughness: 1.0 / 2},
}

// String returns the kernel name.
func (t Type) String() string {
	if m, ok := metadataByType[t]; ok {
		return m.Name
	}

	return "Unknown"
}

// Option configures kernel table generation.
type Option func(*config)

type config struct {
	half      bool
	normalize bool
}

func defaultConfig() config {
	return config{}
}

// WithHalf samples only the right half [0, 1] of the support.
func WithHalf() Option {
	return func(c *config) {
		c.half = true
	}
}

// WithNormalize scales the table so its trapezoidal area is one.
func WithNormalize() Option {
	return func(c *config) {
		c.normalize = true
	}
}

// Tricube returns (1 - |u|^3)^3 for |u| <= 1 and 0 beyond.
func Tricube(u float64) float64 {
	a := math.Abs(u)
	if a > 1 {
		return 0
	}

	t := 1 - a*a*a

	return t * t * t
}

// Bisquare returns (1 - u^2)^2 for |u| < 1 and 0 otherwise.
func Bisquare(u float64) float64 {
	a := math.Abs(u)
	if a >= 1 {
		return 0
	}

	t := 1 - a*a

	return t * t
}

// Eval evaluates kernel t at normalised distance u.
func Eval(t Type, u float64) float64 {
	switch t {
	case TypeTricube:
		return Tricube(u)
	case TypeBisquare:
		return Bisquare(u)
	}

	a := math.Abs(u)
	if a > 1 {
		return 0
	}

	switch t {
	case TypeEpanechnikov:
		return 1 - a*a
	case TypeTriangle:
		return 1 - a
	case TypeUniform:
		return 1
	default:
		return 0
	}
}

// Info returns static metadata for a kernel type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// Generate returns size kernel values sampled uniformly over [-1, 1], or
// over [0, 1] with WithHalf.
func Generate(t Type, size int, opts ...Option) []float64 {
	if size <= 0 {
		return nil
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, size)
	for i := range out {
		out[i] = Eval(t, samplePosition(i, size, cfg.half))
	}

	if cfg.normalize {
		area := trapezoid(out, sampleStep(size, cfg.half))
		if area > 0 {
			for i := range out {
				out[i] /= area
			}
		}
	}

	return out
}

// BisquareWeights fills dst with Bisquare(residuals[i] / scale).
func BisquareWeights(dst, residuals []float64, scale float64) error {
	if len(dst) != len(residuals) {
		return errMismatchedLength
	}

	if err := validateScale(scale); err != nil {
		return err
	}

	for i, r := range residuals {
		dst[i] = Bisquare(r / scale)
	}

	return nil
}

// ApplyWeights stores the elementwise product of a and b in dst.
func ApplyWeights(dst, a, b []float64) error {
	if len(a) != len(b) || len(dst) != len(a) {
		return errMismatchedLength
	}

	vecmath.MulBlock(dst, a, b)

	return nil
}

func samplePosition(n, size int, half bool) float64 {
	if size <= 1 {
		return 0
	}

	frac := float64(n) / float64(size-1)
	if half {
		return frac
	}

	return 2*frac - 1
}

func sampleStep(size int, half bool) float64 {
	if size <= 1 {
		return 0
	}

	if half {
		return 1 / float64(size-1)
	}

	return 2 / float64(size-1)
}

func trapezoid(values []float64, step float64) float64 {
	if len(values) < 2 {
		return 0
	}

	sum := 0.5 * (values[0] + values[len(values)-1])
	for _, v := range values[1 : len(values)-1] {
		sum += v
	}

	return sum * step
}
