// Package residual computes fit residuals and the summary statistics used to
// judge and re-weight a local regression.
//
// The robustness step of LOESS scales residuals by the [UpperMedian] of
// their absolute values: the element at index n/2 of the sorted sequence.
// For even n this is the upper of the two middle values rather than their
// average.
package residual
