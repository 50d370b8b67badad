package dftnd

import (
	"fmt"
	"slices"

	"github.com/seanlikeskites/atfft"
	"github.com/seanlikeskites/atfft/dft"
)

// Plan is a precomputed descriptor for an N-dimensional DFT over fixed
// dimensions, direction and format.
//
// A Plan owns work buffers, so a single instance must not be used for
// more than one transform at a time.
type Plan[F atfft.Float, C atfft.Complex] struct {
	dims      []int
	direction atfft.Direction
	format    atfft.Format

	// one complex sub-plan per dimension, deduplicated by size
	subTransforms    map[int]*dft.Plan[F, C]
	dimSubTransforms []*dft.Plan[F, C]

	// additional plan for the real axis of real transforms
	realTransform *dft.Plan[F, C]

	dataSize int
	strides  []int

	workArea             []C
	realBackwardWorkArea []C
}

// New64 creates a double-precision plan for an N-dimensional transform
// over the given dimensions.
func New64(dims []int, direction atfft.Direction, format atfft.Format) (*Plan[float64, complex128], error) {
	return newPlan[float64, complex128](dims, direction, format)
}

// New32 creates a single-precision plan for an N-dimensional transform
// over the given dimensions.
func New32(dims []int, direction atfft.Direction, format atfft.Format) (*Plan[float32, complex64], error) {
	return newPlan[float32, complex64](dims, direction, format)
}

func newPlan[F atfft.Float, C atfft.Complex](dims []int, direction atfft.Direction, format atfft.Format) (*Plan[F, C], error) {
	if len(dims) == 0 {
		return nil, ErrInvalidDimensions
	}

	for _, d := range dims {
		if d < 1 {
			return nil, ErrInvalidDimensions
		}
	}

	p := &Plan[F, C]{
		dims:      slices.Clone(dims),
		direction: direction,
		format:    format,
	}

	nDims := len(dims)
	nComplexTransforms := nDims

	if format == atfft.FormatReal {
		// real transforms use a 1-D real plan for the last dimension
		realTransform, err := dft.NewPlan[F, C](dims[nDims-1], direction, atfft.FormatReal)
		if err != nil {
			return nil, fmt.Errorf("creating real sub-plan: %w", err)
		}

		p.realTransform = realTransform
		nComplexTransforms = nDims - 1
		p.dataSize = atfft.NDHalfcomplexSize(dims)
	} else {
		p.dataSize = atfft.Product(dims)
	}

	p.subTransforms = make(map[int]*dft.Plan[F, C])
	p.dimSubTransforms = make([]*dft.Plan[F, C], nComplexTransforms)

	for d := 0; d < nComplexTransforms; d++ {
		sub, ok := p.subTransforms[dims[d]]
		if !ok {
			var err error

			sub, err = dft.NewPlan[F, C](dims[d], direction, atfft.FormatComplex)
			if err != nil {
				return nil, fmt.Errorf("creating complex sub-plan: %w", err)
			}

			p.subTransforms[dims[d]] = sub
		}

		p.dimSubTransforms[d] = sub
	}

	p.strides = initStrides(dims, p.dataSize, format)
	p.workArea = make([]C, p.dataSize)

	// backward real transforms need a second work area so the caller's
	// input is preserved across the complex passes
	if format == atfft.FormatReal && direction == atfft.Backward {
		p.realBackwardWorkArea = make([]C, p.dataSize)
	}

	return p, nil
}

// initStrides tabulates, for each dimension, the number of lines the
// transform of that dimension runs over: the total element count divided
// by the dimension's length (its halfcomplex length for the real axis).
func initStrides(dims []int, dataSize int, format atfft.Format) []int {
	strides := make([]int, len(dims))

	last := len(dims) - 1
	for i := 0; i < last; i++ {
		strides[i] = dataSize / dims[i]
	}

	if format == atfft.FormatReal {
		strides[last] = dataSize / atfft.HalfcomplexSize(dims[last])
	} else {
		strides[last] = dataSize / dims[last]
	}

	return strides
}

// Dims returns the transform dimensions.
func (p *Plan[F, C]) Dims() []int {
	return slices.Clone(p.dims)
}

// Direction returns the transform direction.
func (p *Plan[F, C]) Direction() atfft.Direction {
	return p.direction
}

// Format returns the sample format the plan transforms.
func (p *Plan[F, C]) Format() atfft.Format {
	return p.format
}

// complexTransformRight runs one dimension's transforms reading strided
// and writing contiguous.
func complexTransformRight[F atfft.Float, C atfft.Complex](sub *dft.Plan[F, C], in, out []C, size, stride int) error {
	for i := 0; i < stride; i++ {
		if err := sub.ComplexTransformStride(in[i:], stride, out[i*size:], 1); err != nil {
			return err
		}
	}

	return nil
}

// complexTransformLeft runs one dimension's transforms reading contiguous
// and writing strided.
func complexTransformLeft[F atfft.Float, C atfft.Complex](sub *dft.Plan[F, C], in, out []C, size, stride int) error {
	for i := 0; i < stride; i++ {
		if err := sub.ComplexTransformStride(in[i*size:], 1, out[i:], stride); err != nil {
			return err
		}
	}

	return nil
}

// ndComplexTransformRight transforms the first nDims dimensions in
// ascending order, ping-ponging between the work area and out so the last
// pass writes to out.
func (p *Plan[F, C]) ndComplexTransformRight(nDims int, in, out []C) error {
	workAreas := [2][]C{p.workArea, out}
	w := 0
	if atfft.IsOdd(nDims) {
		w = 1
	}

	currentIn := in

	for d := 0; d < nDims; d++ {
		err := complexTransformRight(p.dimSubTransforms[d], currentIn, workAreas[w], p.dims[d], p.strides[d])
		if err != nil {
			return err
		}

		currentIn = workAreas[w]
		w = 1 - w
	}

	return nil
}

// ndComplexTransformLeft transforms the first nDims dimensions in
// descending order, ping-ponging between the work area and out so the
// last pass writes to out.
func (p *Plan[F, C]) ndComplexTransformLeft(nDims int, in, out []C) error {
	workAreas := [2][]C{p.workArea, out}
	w := 0
	if atfft.IsOdd(nDims) {
		w = 1
	}

	currentIn := in

	for d := nDims - 1; d >= 0; d-- {
		err := complexTransformLeft(p.dimSubTransforms[d], currentIn, workAreas[w], p.dims[d], p.strides[d])
		if err != nil {
			return err
		}

		currentIn = workAreas[w]
		w = 1 - w
	}

	return nil
}

// ComplexTransform computes the N-dimensional DFT of in into out. Both
// slices hold the row-major signal of Product(Dims()) elements. in and
// out must not overlap; transforms are out of place.
func (p *Plan[F, C]) ComplexTransform(in, out []C) error {
	if p.format != atfft.FormatComplex {
		return ErrFormatMismatch
	}

	if len(in) < p.dataSize || len(out) < p.dataSize {
		return ErrSizeMismatch
	}

	return p.ndComplexTransformRight(len(p.dims), in, out)
}

// RealForwardTransform computes the spectrum of the row-major real signal
// in. out receives NDHalfcomplexSize(Dims()) bins: the full spectrum
// along all axes but the last, which stores only its lower halfcomplex
// bins.
func (p *Plan[F, C]) RealForwardTransform(in []F, out []C) error {
	if p.format != atfft.FormatReal {
		return ErrFormatMismatch
	}

	if p.direction != atfft.Forward {
		return ErrDirectionMismatch
	}

	if len(in) < atfft.Product(p.dims) || len(out) < p.dataSize {
		return ErrSizeMismatch
	}

	// perform a real transform on the last dimension, transposing into
	// whichever buffer leaves the complex passes ending in out
	lastDim := len(p.dims) - 1
	size := p.dims[lastDim]
	stride := p.strides[lastDim]

	realOut := p.workArea
	if atfft.IsOdd(len(p.dims)) {
		realOut = out
	}

	for i := 0; i < stride; i++ {
		err := p.realTransform.RealForwardTransformStride(in[i*size:], 1, realOut[i:], stride)
		if err != nil {
			return err
		}
	}

	// complex transforms for the remaining dimensions
	return p.ndComplexTransformLeft(lastDim, realOut, out)
}

// RealBackwardTransform computes the real signal whose spectrum is the
// halfcomplex input. The output is not normalised by the element count.
func (p *Plan[F, C]) RealBackwardTransform(in []C, out []F) error {
	if p.format != atfft.FormatReal {
		return ErrFormatMismatch
	}

	if p.direction != atfft.Backward {
		return ErrDirectionMismatch
	}

	if len(in) < p.dataSize || len(out) < atfft.Product(p.dims) {
		return ErrSizeMismatch
	}

	// complex transforms on all axes but the last; a 1-D plan has no
	// complex axes, so its real pass reads the caller's input directly
	lastDim := len(p.dims) - 1
	realIn := in

	if lastDim > 0 {
		if err := p.ndComplexTransformRight(lastDim, in, p.realBackwardWorkArea); err != nil {
			return err
		}

		realIn = p.realBackwardWorkArea
	}

	// finally, the real transform on the last dimension
	size := p.dims[lastDim]
	stride := p.strides[lastDim]

	for i := 0; i < stride; i++ {
		err := p.realTransform.RealBackwardTransformStride(realIn[i:], stride, out[i*size:], 1)
		if err != nil {
			return err
		}
	}

	return nil
}
