package dft

import (
	"github.com/seanlikeskites/atfft"
	"github.com/seanlikeskites/atfft/internal/cmath"
)

// bluestein computes a DFT of any length as a convolution with a chirp
// sequence. The quadratic phase identity rewrites the transform as a
// linear convolution of length 2*size-1, which is evaluated cyclically at
// a power-of-two length with a forward inner plan in both directions.
type bluestein[F atfft.Float, C atfft.Complex] struct {
	size      int
	direction atfft.Direction

	convSize int
	fft      *Plan[F, C]

	sig, sigDFT, conv, convDFT, factors []C
}

// bluesteinConvolutionSize returns the FFT length used for the chirp
// convolution.
func bluesteinConvolutionSize(size int) int {
	if atfft.IsPowerOfTwo(size) {
		return size
	}

	return atfft.NextPowerOfTwo(2*size - 1)
}

func newBluestein[F atfft.Float, C atfft.Complex](size int, direction atfft.Direction, opts Options) (*bluestein[F, C], error) {
	b := &bluestein[F, C]{
		size:      size,
		direction: direction,
	}

	// the convolution always runs through a forward plan, whatever the
	// outer direction; direction is baked into the chirp
	b.convSize = bluesteinConvolutionSize(size)

	var err error

	b.fft, err = newPlan[F, C](b.convSize, atfft.Forward, atfft.FormatComplex, opts)
	if err != nil {
		return nil, err
	}

	b.sig = make([]C, b.convSize)
	b.sigDFT = make([]C, b.convSize)
	b.conv = make([]C, b.convSize)
	b.convDFT = make([]C, b.convSize)
	b.factors = make([]C, size)

	b.initConvolutionDFT(direction)

	return b, nil
}

// initConvolutionDFT precomputes the spectrum of the chirp sequence. The
// chirp exponents i*i are reduced modulo 2*size, the head of the sequence
// is mirrored onto the tail for the cyclic convolution, and the spectrum
// is pre-normalised by the convolution length.
func (b *bluestein[F, C]) initConvolutionDFT(direction atfft.Direction) {
	sinTable := make([]C, 2*b.size)
	for i := range sinTable {
		sinTable[i] = twiddleFactor[C](-i, 2*b.size, direction)
	}

	sequence := make([]C, b.convSize)
	for i := 0; i < b.size; i++ {
		sequence[i] = sinTable[(i*i)%(2*b.size)]
	}

	if b.convSize > b.size {
		for i := 1; i < b.size; i++ {
			sequence[b.convSize-i] = sequence[i]
		}
	}

	b.fft.transform(sequence, 1, b.convDFT, 1)
	atfft.NormaliseComplex(b.convDFT)

	for i := 0; i < b.size; i++ {
		b.factors[i] = cmath.Conj(sequence[i])
	}
}

func (b *bluestein[F, C]) transform(in []C, inStride int, out []C, outStride int) {
	// multiply the input signal with the chirp; the tail of sig stays
	// zero padded
	for i := 0; i < b.size; i++ {
		b.sig[i] = in[i*inStride] * b.factors[i]
	}

	b.fft.transform(b.sig, 1, b.sigDFT, 1)

	// convolve in the frequency domain; the swap makes the following
	// forward transform act as the inverse
	for i := 0; i < b.convSize; i++ {
		b.sigDFT[i] = cmath.Swap(b.sigDFT[i] * b.convDFT[i])
	}

	b.fft.transform(b.sigDFT, 1, b.conv, 1)

	for i := 0; i < b.size; i++ {
		out[i*outStride] = cmath.SwapProduct(b.conv[i], b.factors[i])
	}
}

func (b *bluestein[F, C]) info() *PlanInfo {
	return &PlanInfo{
		Algorithm:       "bluestein",
		Size:            b.size,
		ConvolutionSize: b.convSize,
		SubTransforms:   []*PlanInfo{b.fft.Describe()},
	}
}
