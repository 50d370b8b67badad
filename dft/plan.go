package dft

import (
	"github.com/seanlikeskites/atfft"
	"github.com/seanlikeskites/atfft/internal/cmath"
)

// engine is the inner transform a plan dispatches to. Engines only deal
// in complex samples; the planner handles the real formats around them.
type engine[F atfft.Float, C atfft.Complex] interface {
	transform(in []C, inStride int, out []C, outStride int)
	info() *PlanInfo
}

// Plan is a precomputed descriptor for a one-dimensional DFT of a fixed
// size, direction and format.
//
// A Plan owns scratch buffers, so a single instance must not be used for
// more than one transform at a time. Plans created for FormatComplex
// accept ComplexTransform calls; plans created for FormatReal accept
// RealForwardTransform or RealBackwardTransform according to their
// direction.
type Plan[F atfft.Float, C atfft.Complex] struct {
	size         int
	internalSize int
	direction    atfft.Direction
	format       atfft.Format
	opts         Options

	engine engine[F, C]

	// even-length real forward transforms run a half-length complex
	// transform and unpack it with these post twiddles
	isEvenReal bool
	sinusoids  []C

	realIn, realOut []C
}

// New64 creates a double-precision plan for a transform of the given
// size, direction and format.
func New64(size int, direction atfft.Direction, format atfft.Format, opts ...Option) (*Plan[float64, complex128], error) {
	return NewPlan[float64, complex128](size, direction, format, opts...)
}

// New32 creates a single-precision plan for a transform of the given
// size, direction and format.
func New32(size int, direction atfft.Direction, format atfft.Format, opts ...Option) (*Plan[float32, complex64], error) {
	return NewPlan[float32, complex64](size, direction, format, opts...)
}

// NewPlan creates a plan for an explicit sample pair. F and C must have
// matching widths; New64 and New32 are the usual entry points, NewPlan
// exists for code that is itself generic over the pair.
func NewPlan[F atfft.Float, C atfft.Complex](size int, direction atfft.Direction, format atfft.Format, opts ...Option) (*Plan[F, C], error) {
	return newPlan[F, C](size, direction, format, applyOptions(opts))
}

func newPlan[F atfft.Float, C atfft.Complex](size int, direction atfft.Direction, format atfft.Format, opts Options) (*Plan[F, C], error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}

	if format == atfft.FormatReal && size < 2 {
		return nil, ErrInvalidSize
	}

	p := &Plan[F, C]{
		size:         size,
		internalSize: size,
		direction:    direction,
		format:       format,
		opts:         opts,
	}

	if format == atfft.FormatReal {
		// Even length real transforms can be computed as a complex
		// transform of half the length.
		if atfft.IsEven(size) && direction == atfft.Forward {
			p.isEvenReal = true
			p.internalSize = size / 2

			p.sinusoids = make([]C, p.internalSize-1)
			for i := range p.sinusoids {
				p.sinusoids[i] = twiddleFactor[C](i+1, size, direction)
			}
		}

		p.realIn = make([]C, p.internalSize)
		p.realOut = make([]C, p.internalSize)
	}

	var err error

	switch n := p.internalSize; {
	case isPrime(n) && atfft.IsPowerOfTwo(n-1):
		p.engine, err = newRader[F, C](n, direction, opts)
	case isPrime(n) && n > opts.SubTransformThreshold:
		p.engine, err = newBluestein[F, C](n, direction, opts)
	default:
		p.engine, err = newCooleyTukey[F, C](n, direction, opts)
	}

	if err != nil {
		return nil, err
	}

	return p, nil
}

// Size returns the transform size.
func (p *Plan[F, C]) Size() int {
	return p.size
}

// Direction returns the transform direction.
func (p *Plan[F, C]) Direction() atfft.Direction {
	return p.direction
}

// Format returns the sample format the plan transforms.
func (p *Plan[F, C]) Format() atfft.Format {
	return p.format
}

// transform runs the inner engine without any precondition checks. The
// exported methods and the other engines call it once arguments are known
// to be valid.
func (p *Plan[F, C]) transform(in []C, inStride int, out []C, outStride int) {
	p.engine.transform(in, inStride, out, outStride)
}

// strideLen returns the buffer length a strided access of size elements
// requires.
func strideLen(size, stride int) int {
	return (size-1)*stride + 1
}

// ComplexTransform computes the DFT of in into out. The plan must have
// been created with FormatComplex and both slices must hold Size
// elements. in and out must not overlap; transforms are out of place.
func (p *Plan[F, C]) ComplexTransform(in, out []C) error {
	return p.ComplexTransformStride(in, 1, out, 1)
}

// ComplexTransformStride computes the DFT of in into out, reading and
// writing with the given strides.
func (p *Plan[F, C]) ComplexTransformStride(in []C, inStride int, out []C, outStride int) error {
	if p.format != atfft.FormatComplex {
		return ErrFormatMismatch
	}

	if len(in) < strideLen(p.size, inStride) || len(out) < strideLen(p.size, outStride) {
		return ErrSizeMismatch
	}

	p.transform(in, inStride, out, outStride)

	return nil
}

// RealForwardTransform computes the spectrum of the real signal in. out
// receives the first HalfcomplexSize(Size) bins; the remaining bins are
// their conjugate mirror and are not stored.
func (p *Plan[F, C]) RealForwardTransform(in []F, out []C) error {
	return p.RealForwardTransformStride(in, 1, out, 1)
}

// RealForwardTransformStride is RealForwardTransform with independent
// input and output strides.
func (p *Plan[F, C]) RealForwardTransformStride(in []F, inStride int, out []C, outStride int) error {
	if p.format != atfft.FormatReal {
		return ErrFormatMismatch
	}

	if p.direction != atfft.Forward {
		return ErrDirectionMismatch
	}

	if len(in) < strideLen(p.size, inStride) ||
		len(out) < strideLen(atfft.HalfcomplexSize(p.size), outStride) {
		return ErrSizeMismatch
	}

	if p.isEvenReal {
		p.evenRealForward(in, inStride, out, outStride)
	} else {
		p.trivialRealForward(in, inStride, out, outStride)
	}

	return nil
}

// evenRealForward packs pairs of real samples into complex ones, runs the
// half-length complex transform and unpacks the spectrum from its even
// and odd parts.
func (p *Plan[F, C]) evenRealForward(in []F, inStride int, out []C, outStride int) {
	for i := 0; i < p.internalSize; i++ {
		p.realIn[i] = cmath.FromParts[C](float64(in[2*i*inStride]), float64(in[(2*i+1)*inStride]))
	}

	p.transform(p.realIn, 1, p.realOut, 1)

	re0 := cmath.Re(p.realOut[0])
	im0 := cmath.Im(p.realOut[0])

	out[0] = cmath.FromParts[C](re0+im0, 0)

	for i := 1; i < p.internalSize; i++ {
		a := p.realOut[i]
		b := p.realOut[p.internalSize-i]

		even := cmath.FromParts[C](
			(cmath.Re(a)+cmath.Re(b))/2,
			(cmath.Im(a)-cmath.Im(b))/2)
		odd := cmath.FromParts[C](
			(cmath.Im(a)+cmath.Im(b))/2,
			(cmath.Re(b)-cmath.Re(a))/2)

		out[i*outStride] = even + odd*p.sinusoids[i-1]
	}

	out[p.internalSize*outStride] = cmath.FromParts[C](re0-im0, 0)
}

// trivialRealForward treats the real signal as complex with zero
// imaginary parts and keeps the lower half of the spectrum.
func (p *Plan[F, C]) trivialRealForward(in []F, inStride int, out []C, outStride int) {
	atfft.RealToComplexStride(in, inStride, p.realIn, 1, p.size)
	p.transform(p.realIn, 1, p.realOut, 1)
	atfft.ComplexToHalfcomplexStride(p.realOut, 1, out, outStride, p.size)
}

// RealBackwardTransform computes the real signal whose spectrum is the
// halfcomplex input. in must hold HalfcomplexSize(Size) bins and out Size
// samples. The output is not normalised by 1/Size.
func (p *Plan[F, C]) RealBackwardTransform(in []C, out []F) error {
	return p.RealBackwardTransformStride(in, 1, out, 1)
}

// RealBackwardTransformStride is RealBackwardTransform with independent
// input and output strides.
func (p *Plan[F, C]) RealBackwardTransformStride(in []C, inStride int, out []F, outStride int) error {
	if p.format != atfft.FormatReal {
		return ErrFormatMismatch
	}

	if p.direction != atfft.Backward {
		return ErrDirectionMismatch
	}

	if len(in) < strideLen(atfft.HalfcomplexSize(p.size), inStride) ||
		len(out) < strideLen(p.size, outStride) {
		return ErrSizeMismatch
	}

	atfft.HalfcomplexToComplexStride(in, inStride, p.realIn, 1, p.size)
	p.transform(p.realIn, 1, p.realOut, 1)
	atfft.RealStride(p.realOut, 1, out, outStride, p.size)

	return nil
}

// PlanInfo describes the structure of a plan: the algorithm selected for
// its size and the inner plans that algorithm relies on.
type PlanInfo struct {
	Algorithm       string      `json:"algorithm"`
	Size            int         `json:"size"`
	Direction       string      `json:"direction,omitempty"`
	Format          string      `json:"format,omitempty"`
	Radices         []int       `json:"radices,omitempty"`
	ConvolutionSize int         `json:"convolutionSize,omitempty"`
	SubTransforms   []*PlanInfo `json:"subTransforms,omitempty"`
}

// Describe returns a description of the plan structure, including every
// inner plan the planner allocated for it.
func (p *Plan[F, C]) Describe() *PlanInfo {
	return &PlanInfo{
		Algorithm:     "base",
		Size:          p.size,
		Direction:     p.direction.String(),
		Format:        p.format.String(),
		SubTransforms: []*PlanInfo{p.engine.info()},
	}
}
