package testutil

import (
	"errors"
	"math"
	"testing"
)

var errLengthMismatch = errors.New("testutil: slices differ in length")

// Deviation summarises how far got is from want, element by element.
type Deviation struct {
	MaxAbs     float64 // largest |got[i] - want[i]|, +Inf if any pair involves NaN
	Worst      int     // index of MaxAbs, -1 for empty input
	SumSquares float64
	Exceeding  int // elements whose difference is above the compared eps
}

// Compare measures got against want. Differences of NaN count as +Inf so a
// NaN never passes a tolerance check.
func Compare(got, want []float64, eps float64) (Deviation, error) {
	if len(got) != len(want) {
		return Deviation{}, errLengthMismatch
	}

	dev := Deviation{Worst: -1}

	for i := range got {
		d := math.Abs(got[i] - want[i])
		if math.IsNaN(d) {
			d = math.Inf(1)
		}

		dev.SumSquares += d * d

		if d > eps {
			dev.Exceeding++
		}

		if dev.Worst < 0 || d > dev.MaxAbs {
			dev.MaxAbs = d
			dev.Worst = i
		}
	}

	return dev, nil
}

// RequireSliceNearlyEqual fails tb unless every element of got is within
// eps of want. The failure names the worst element and the number of
// elements out of tolerance.
func RequireSliceNearlyEqual(tb testing.TB, got, want []float64, eps float64) {
	tb.Helper()

	dev, err := Compare(got, want, eps)
	if err != nil {
		tb.Fatalf("len(got)=%d, len(want)=%d", len(got), len(want))
	}

	if dev.Exceeding > 0 {
		tb.Fatalf("%d of %d values off by more than %g; worst [%d]: got %v, want %v",
			dev.Exceeding, len(got), eps, dev.Worst, got[dev.Worst], want[dev.Worst])
	}
}

// RequireFinite fails tb on the first NaN or Inf in data.
func RequireFinite(tb testing.TB, data []float64) {
	tb.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			tb.Fatalf("[%d] = %v, want finite", i, v)
		}
	}
}
