// Package filter applies spatial filters to image.ImageBuffer values.
//
// Linear filters (Convolve2D, GaussianBlur, BoxFilter, Blur, SqrBoxFilter,
// Sobel, Scharr, Laplacian) share one neighbourhood primitive with general
// and separable variants. MedianBlur and BilateralFilter are per pixel
// nonlinear reductions. Every filter returns a new buffer; inputs are never
// modified.
//
// Output rows are independent and are fanned out over the engine's worker
// pool. Each row is computed with the same arithmetic whichever worker runs
// it, so results do not depend on MaxGoroutines.
//
// Size parameters are half sizes: k selects a window of 2k+1.
package filter
