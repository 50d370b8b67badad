// Package atfft provides fast Fourier and cosine transforms of arbitrary
// length.
//
// The library is a self-contained numerical core: composite sizes are
// handled by a mixed-radix Cooley-Tukey decomposition with optimised
// butterflies for radices 2, 3 and 4, prime sizes by Rader's algorithm
// (when the prime minus one is a power of two) or Bluestein's chirp
// z-transform, and everything else by recursive combination of the above.
//
// # Architecture
//
// The library uses a plan-based API similar to FFTW:
//
//  1. Create a plan for a given size, direction and format
//  2. The plan pre-computes twiddle tables, permutations and inner plans,
//     and allocates all working buffers
//  3. Call the transform methods repeatedly with different signals of
//     that shape
//
// Transform calls never allocate, which makes them safe to use under
// real-time constraints once plans are prebuilt. A single plan owns
// mutable scratch buffers and is NOT safe for concurrent use; create
// separate plan instances per goroutine.
//
// Backward transforms are not normalised by 1/N; use NormaliseComplex or
// NormaliseReal when a round trip should recover the input.
//
// # Packages
//
//   - dft: one-dimensional complex and real DFT plans
//   - dftnd: N-dimensional DFT plans built from 1-D plans
//   - dct: DCT-II/III plans built on a complex DFT
//   - windows: Bartlett, Hann, Hamming and Blackman windows
//
// The root package holds the shared vocabulary (directions, formats,
// sample constraints) and the sample shuffling utilities (real/complex
// packing, halfcomplex mirroring, scaling).
//
// # Precision
//
// Plans are generic over a (Float, Complex) sample pair. The New64
// constructors build float64/complex128 plans, the New32 constructors
// float32/complex64 ones. Twiddle tables are evaluated once per plan in
// float64 and stored at the plan's precision.
//
// # Example
//
//	plan, err := dft.New64(1024, atfft.Forward, atfft.FormatComplex)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	in := make([]complex128, 1024)
//	out := make([]complex128, 1024)
//	// ... fill in with samples ...
//	plan.ComplexTransform(in, out)
package atfft
