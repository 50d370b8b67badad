// Package dftnd provides N-dimensional discrete Fourier transform plans.
//
// An N-dimensional DFT is separable: it is computed one dimension at a
// time with 1-D plans from the dft package, transposing between axes by
// reading strided and writing contiguous (or the reverse). Two work
// buffers ping-pong so the final pass always lands in the caller's output
// buffer.
//
// Signals are stored in row-major order. For real transforms the last
// dimension is the real axis: a forward transform stores
// HalfcomplexSize(dims[n-1]) bins along it and the remaining axes in
// full.
//
// Thread safety: a single Plan instance is NOT safe for concurrent use.
package dftnd
