// Package dct provides discrete cosine transform plans.
//
// A forward plan computes the DCT-II of a real signal, a backward plan
// the DCT-III. Both are evaluated through a complex DFT of the same
// length: the forward transform permutes even-indexed samples ahead of
// reversed odd-indexed ones and post-rotates the spectrum by
// half-sample-shifted twiddles; the backward transform applies the
// rotation first and undoes the permutation afterwards.
//
// Neither direction is normalised: a DCT-III of a DCT-II returns the
// signal scaled by N/2.
//
// Thread safety: a single Plan instance is NOT safe for concurrent use.
package dct
