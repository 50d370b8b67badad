// Package windows generates the standard window functions used to shape
// signals before a transform.
//
// Each generator fills a caller-supplied slice. The Symmetric variant of
// a window reaches its end points at the first and last sample, which
// suits filter design; the Periodic variant behaves as one period of the
// window, which suits spectral analysis.
package windows
