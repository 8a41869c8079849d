package residual_test

import (
	"fmt"

	"github.com/cwbudde/algo-loess/stats/residual"
)

func ExampleUpperMedian() {
	fmt.Println(residual.UpperMedian([]float64{4, 1, 3, 2}))
	// Output:
	// 3
}

func ExampleCalculate() {
	s := residual.Calculate([]float64{0.5, -0.5, 0.5, -0.5, 4})
	fmt.Printf("rms=%.3f median=%.1f max=%.1f@%d\n", s.RMS, s.Median, s.MaxAbs, s.MaxAbsPos)
	// Output:
	// rms=1.844 median=0.5 max=4.0@4
}
