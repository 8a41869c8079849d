// Package kernel provides compact-support weight functions used by local
// regression.
//
// All kernels are evaluated on normalised distances u, where |u| = 1 marks
// the edge of the neighbourhood. Outside that range every kernel is zero.
//
//   - [TypeTricube]:      (1 - |u|^3)^3, the LOESS distance kernel
//   - [TypeBisquare]:     (1 - u^2)^2, Tukey's biweight, used for robustness weights
//   - [TypeEpanechnikov]: 1 - u^2
//   - [TypeTriangle]:     1 - |u|
//   - [TypeUniform]:      1
//
// [Generate] tabulates a kernel, [Analyze] integrates a table numerically
// and [Info] returns the closed-form reference values.
package kernel
