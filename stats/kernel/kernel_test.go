package kernel

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-loess/internal/testutil"
)

func TestTricube(t *testing.T) {
	tests := []struct {
		u    float64
		want float64
	}{
		{0, 1},
		{0.5, math.Pow(1-0.125, 3)},
		{-0.5, math.Pow(1-0.125, 3)},
		{1, 0},
		{-1, 0},
		{1.5, 0},
		{-3, 0},
	}

	for _, tt := range tests {
		if got := Tricube(tt.u); math.Abs(got-tt.want) > 1e-15 {
			t.Errorf("Tricube(%g) = %g, want %g", tt.u, got, tt.want)
		}
	}
}

func TestBisquare(t *testing.T) {
	tests := []struct {
		u    float64
		want float64
	}{
		{0, 1},
		{0.5, 0.5625},
		{-0.5, 0.5625},
		{0.999, (1 - 0.999*0.999) * (1 - 0.999*0.999)},
		{1, 0},
		{2, 0},
	}

	for _, tt := range tests {
		if got := Bisquare(tt.u); math.Abs(got-tt.want) > 1e-15 {
			t.Errorf("Bisquare(%g) = %g, want %g", tt.u, got, tt.want)
		}
	}
}

func TestEvalCompactSupport(t *testing.T) {
	for _, typ := range Types {
		if got := Eval(typ, 1.0001); got != 0 {
			t.Errorf("%s: Eval(1.0001) = %g, want 0", typ, got)
		}
		if got := Eval(typ, -7); got != 0 {
			t.Errorf("%s: Eval(-7) = %g, want 0", typ, got)
		}
		if got := Eval(typ, 0); got != 1 {
			t.Errorf("%s: Eval(0) = %g, want 1", typ, got)
		}
	}
}

func TestEvalSymmetric(t *testing.T) {
	for _, typ := range Types {
		for _, u := range []float64{0.1, 0.25, 0.5, 0.8, 0.99} {
			if Eval(typ, u) != Eval(typ, -u) {
				t.Errorf("%s: asymmetric at %g", typ, u)
			}
		}
	}
}

func TestEvalUnknownType(t *testing.T) {
	if got := Eval(Type(99), 0); got != 0 {
		t.Fatalf("Eval(unknown) = %g, want 0", got)
	}
	if got := Type(99).String(); got != "Unknown" {
		t.Fatalf("String() = %q", got)
	}
}

func TestGenerate(t *testing.T) {
	got := Generate(TypeEpanechnikov, 5)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0.75, 1, 0.75, 0}, 1e-15)

	half := Generate(TypeTriangle, 3, WithHalf())
	testutil.RequireSliceNearlyEqual(t, half, []float64{1, 0.5, 0}, 1e-15)

	if Generate(TypeTricube, 0) != nil {
		t.Fatal("expected nil for zero size")
	}

	single := Generate(TypeTricube, 1)
	if len(single) != 1 || single[0] != 1 {
		t.Fatalf("single = %v, want [1]", single)
	}
}

func TestGenerateNormalize(t *testing.T) {
	for _, typ := range Types {
		coeffs := Generate(typ, 1025, WithNormalize())
		a, err := Analyze(coeffs)
		if err != nil {
			t.Fatalf("%s: %v", typ, err)
		}
		if math.Abs(a.Area-1) > 1e-12 {
			t.Errorf("%s: normalised area = %g, want 1", typ, a.Area)
		}
	}
}

func TestAnalyzeMatchesInfo(t *testing.T) {
	const tol = 1e-6

	for _, typ := range Types {
		a, err := Analyze(Generate(typ, 4097))
		if err != nil {
			t.Fatalf("%s: %v", typ, err)
		}

		m := Info(typ)
		if math.Abs(a.Area-m.Area) > tol {
			t.Errorf("%s area: got %g, want %g", typ, a.Area, m.Area)
		}
		if math.Abs(a.SecondMoment-m.SecondMoment) > tol {
			t.Errorf("%s second moment: got %g, want %g", typ, a.SecondMoment, m.SecondMoment)
		}
		if math.Abs(a.Roughness-m.Roughness) > tol {
			t.Errorf("%s roughness: got %g, want %g", typ, a.Roughness, m.Roughness)
		}
		if math.Abs(a.Efficiency-Efficiency(typ)) > tol {
			t.Errorf("%s efficiency: got %g, want %g", typ, a.Efficiency, Efficiency(typ))
		}
	}
}

func TestEfficiency(t *testing.T) {
	if got := Efficiency(TypeEpanechnikov); math.Abs(got-1) > 1e-15 {
		t.Fatalf("Epanechnikov efficiency = %g, want 1", got)
	}

	for _, typ := range Types {
		if e := Efficiency(typ); e <= 0.9 || e > 1+1e-15 {
			t.Errorf("%s efficiency = %g, want (0.9, 1]", typ, e)
		}
	}

	if Efficiency(Type(42)) != 0 {
		t.Fatal("unknown kernel efficiency should be 0")
	}
}

func TestAnalyzeErrors(t *testing.T) {
	if _, err := Analyze(nil); !errors.Is(err, errEmptyCoeffs) {
		t.Fatalf("nil coeffs: err = %v", err)
	}
	if _, err := Analyze([]float64{1}); err == nil {
		t.Fatal("expected error for single coefficient")
	}
	if _, err := Analyze([]float64{0, 0, 0}); !errors.Is(err, errZeroArea) {
		t.Fatalf("zero table: err = %v", err)
	}
}

func TestBisquareWeights(t *testing.T) {
	residuals := []float64{0, 3, 6, 9}
	dst := make([]float64, len(residuals))

	if err := BisquareWeights(dst, residuals, 6); err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, dst, []float64{1, 0.5625, 0, 0}, 1e-15)

	if err := BisquareWeights(dst[:2], residuals, 6); !errors.Is(err, errMismatchedLength) {
		t.Fatalf("length mismatch: err = %v", err)
	}
	if err := BisquareWeights(dst, residuals, 0); err == nil {
		t.Fatal("expected error for zero scale")
	}
	if err := BisquareWeights(dst, residuals, math.NaN()); err == nil {
		t.Fatal("expected error for NaN scale")
	}
}

func TestApplyWeights(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{0.5, 0, 1, 2}
	dst := make([]float64, 4)

	if err := ApplyWeights(dst, a, b); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, dst, []float64{0.5, 0, 3, 8}, 0)

	if err := ApplyWeights(dst, a, b[:3]); !errors.Is(err, errMismatchedLength) {
		t.Fatalf("err = %v", err)
	}
	if err := ApplyWeights(dst[:1], a, b); !errors.Is(err, errMismatchedLength) {
		t.Fatalf("err = %v", err)
	}
}
