package kernel

import (
	"errors"
	"fmt"
)

var (
	errEmptyCoeffs      = errors.New("kernel coefficients must not be empty")
	errMismatchedLength = errors.New("weights and samples must have same length")
	errZeroArea         = errors.New("kernel table has zero area")
)

func validateSize(size int) error {
	if size < 2 {
		return fmt.Errorf("kernel table size must be >= 2: %d", size)
	}
	return nil
}

func validateScale(scale float64) error {
	if !(scale > 0) {
		return fmt.Errorf("bisquare scale must be > 0: %g", scale)
	}
	return nil
}
