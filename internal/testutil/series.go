package testutil

import (
	"math"
	"math/rand"
)

// Grid returns n evenly spaced abscissae starting at start with the given step.
func Grid(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Linear evaluates slope*x + intercept at every x.
func Linear(x []float64, slope, intercept float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = slope*v + intercept
	}
	return out
}

// Sine evaluates amplitude*sin(2*pi*x/period) at every x.
func Sine(x []float64, amplitude, period float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = amplitude * math.Sin(2*math.Pi*v/period)
	}
	return out
}

// DeterministicNoise generates uniform noise in [-amplitude, amplitude] with
// a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// AddNoise returns y plus deterministic noise of the given amplitude.
func AddNoise(y []float64, seed int64, amplitude float64) []float64 {
	noise := DeterministicNoise(seed, amplitude, len(y))
	out := make([]float64, len(y))
	for i := range y {
		out[i] = y[i] + noise[i]
	}
	return out
}

// Spike returns a copy of y with height added at pos. Out-of-range
// positions leave the copy unchanged.
func Spike(y []float64, pos int, height float64) []float64 {
	out := append([]float64(nil), y...)
	if pos >= 0 && pos < len(out) {
		out[pos] += height
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
