package dft

import (
	"github.com/seanlikeskites/atfft"
	"github.com/seanlikeskites/atfft/internal/cmath"
)

// rader computes a prime-length DFT as a cyclic convolution of length
// size-1. Reindexing the non-DC bins by powers of a primitive root turns
// the DFT sum over the multiplicative group into a convolution, which is
// evaluated with a forward inner plan in both directions; the swapped
// products emulate the inverse transform.
type rader[F atfft.Float, C atfft.Complex] struct {
	size      int
	raderSize int
	direction atfft.Direction

	pRoot1, pRoot2 int

	convSize int
	fft      *Plan[F, C]

	perm1, perm2 []int

	sig, sigDFT, conv, convDFT []C
}

// raderConvolutionSize returns the FFT length used for the cyclic
// convolution: the rader size itself when it is a power of two, otherwise
// the next power of two long enough to keep the linear convolution free
// of wrap-around.
func raderConvolutionSize(raderSize int) int {
	if atfft.IsPowerOfTwo(raderSize) {
		return raderSize
	}

	return atfft.NextPowerOfTwo(2*raderSize - 1)
}

// raderPermutation tabulates successive powers of the primitive root.
func raderPermutation(size, pRoot int) []int {
	perm := make([]int, size-1)

	i := 1
	for n := range perm {
		perm[n] = i
		i = mod(i*pRoot, size)
	}

	return perm
}

func newRader[F atfft.Float, C atfft.Complex](size int, direction atfft.Direction, opts Options) (*rader[F, C], error) {
	// primitive roots only exist modulo primes
	if !isPrime(size) {
		return nil, ErrInvalidSize
	}

	r := &rader[F, C]{
		size:      size,
		raderSize: size - 1,
		direction: direction,
	}

	r.pRoot1 = primitiveRootMod(size)
	r.pRoot2 = multInverseMod(r.pRoot1, size)

	// the convolution always runs through a forward plan, whatever the
	// outer direction; direction is baked into the twiddle sequence
	r.convSize = raderConvolutionSize(r.raderSize)

	var err error

	r.fft, err = newPlan[F, C](r.convSize, atfft.Forward, atfft.FormatComplex, opts)
	if err != nil {
		return nil, err
	}

	r.perm1 = raderPermutation(size, r.pRoot1)
	r.perm2 = raderPermutation(size, r.pRoot2)

	r.sig = make([]C, r.convSize)
	r.sigDFT = make([]C, r.convSize)
	r.conv = make([]C, r.convSize)
	r.convDFT = make([]C, r.convSize)

	r.initConvolutionDFT(direction)

	return r, nil
}

// initConvolutionDFT precomputes the spectrum of the rader twiddle
// sequence. The convolution normalisation 1/convSize is folded into the
// twiddles, and the head of the sequence is replicated at the tail so the
// cyclic convolution of length convSize equals the linear convolution of
// length raderSize.
func (r *rader[F, C]) initConvolutionDFT(direction atfft.Direction) {
	tFactors := make([]C, r.convSize)

	for i := 0; i < r.raderSize; i++ {
		tFactors[i] = scaledTwiddleFactor[C](r.perm2[i], r.size, direction, float64(r.convSize))
	}

	if r.convSize > r.raderSize {
		copy(tFactors[r.convSize-(r.raderSize-1):], tFactors[1:r.raderSize])
	}

	r.fft.transform(tFactors, 1, r.convDFT, 1)
}

func (r *rader[F, C]) transform(in []C, inStride int, out []C, outStride int) {
	in0 := in[0]
	out0 := in0

	for i, p := range r.perm1 {
		r.sig[i] = in[inStride*p]
	}

	r.fft.transform(r.sig, 1, r.sigDFT, 1)

	for i := 0; i < r.convSize; i++ {
		r.sigDFT[i] = cmath.Swap(r.sigDFT[i] * r.convDFT[i])
		out0 += r.sig[i]
	}

	// fold the DC bin into the convolution spectrum: adding j*conj(in0)
	// to bin 0 adds in0 to every output once the final swap is applied
	r.sigDFT[0] += cmath.Swap(in0)

	r.fft.transform(r.sigDFT, 1, r.conv, 1)

	for i, p := range r.perm2 {
		out[outStride*p] = cmath.Swap(r.conv[i])
	}

	out[0] = out0
}

func (r *rader[F, C]) info() *PlanInfo {
	return &PlanInfo{
		Algorithm:       "rader",
		Size:            r.size,
		ConvolutionSize: r.convSize,
		SubTransforms:   []*PlanInfo{r.fft.Describe()},
	}
}
