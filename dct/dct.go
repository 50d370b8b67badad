package dct

import (
	"fmt"
	"math"

	"github.com/seanlikeskites/atfft"
	"github.com/seanlikeskites/atfft/dft"
	"github.com/seanlikeskites/atfft/internal/cmath"
)

// Plan is a precomputed descriptor for a DCT of a fixed size and
// direction.
//
// A Plan owns scratch buffers, so a single instance must not be used for
// more than one transform at a time.
type Plan[F atfft.Float, C atfft.Complex] struct {
	size      int
	direction atfft.Direction

	dft *dft.Plan[F, C]

	// cos(pi*k/2N) and sin(pi*k/2N) tables for the half-sample shift
	cosins, sins []float64

	in, out []C
}

// New64 creates a double-precision DCT plan: DCT-II for Forward, DCT-III
// for Backward.
func New64(size int, direction atfft.Direction) (*Plan[float64, complex128], error) {
	return newPlan[float64, complex128](size, direction)
}

// New32 creates a single-precision DCT plan: DCT-II for Forward, DCT-III
// for Backward.
func New32(size int, direction atfft.Direction) (*Plan[float32, complex64], error) {
	return newPlan[float32, complex64](size, direction)
}

func newPlan[F atfft.Float, C atfft.Complex](size int, direction atfft.Direction) (*Plan[F, C], error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}

	inner, err := dft.NewPlan[F, C](size, direction, atfft.FormatComplex)
	if err != nil {
		return nil, fmt.Errorf("creating DFT plan: %w", err)
	}

	p := &Plan[F, C]{
		size:      size,
		direction: direction,
		dft:       inner,
		cosins:    make([]float64, size),
		sins:      make([]float64, size),
		in:        make([]C, size),
		out:       make([]C, size),
	}

	for i := 0; i < size; i++ {
		x := float64(i) * math.Pi / (2 * float64(size))
		p.cosins[i] = math.Cos(x)
		p.sins[i] = math.Sin(x)
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

// Transform computes the DCT of in into out. Both slices must hold Size
// samples.
func (p *Plan[F, C]) Transform(in, out []F) error {
	if len(in) < p.size || len(out) < p.size {
		return ErrSizeMismatch
	}

	if p.direction == atfft.Forward {
		return p.forwardTransform(in, out)
	}

	return p.backwardTransform(in, out)
}

// rearrangeForward packs the even-indexed samples in order followed by
// the odd-indexed samples in reverse into the complex DFT input.
func (p *Plan[F, C]) rearrangeForward(in []F) {
	j := 0

	for i := 0; i < p.size; i += 2 {
		p.in[j] = cmath.FromParts[C](float64(in[i]), 0)
		j++
	}

	start := p.size - 2
	if atfft.IsEven(p.size) {
		start = p.size - 1
	}

	for i := start; i > 0; i -= 2 {
		p.in[j] = cmath.FromParts[C](float64(in[i]), 0)
		j++
	}
}

// scaleForward rotates spectrum bin k by the half-sample shift and keeps
// the real part.
func (p *Plan[F, C]) scaleForward(out []F) {
	for i := 0; i < p.size; i++ {
		cosComponent := cmath.Re(p.out[i]) * p.cosins[i]
		sinComponent := cmath.Im(p.out[i]) * p.sins[i]
		out[i] = F(cosComponent + sinComponent)
	}
}

func (p *Plan[F, C]) forwardTransform(in, out []F) error {
	p.rearrangeForward(in)

	if err := p.dft.ComplexTransform(p.in, p.out); err != nil {
		return err
	}

	p.scaleForward(out)

	return nil
}

// scaleBackward builds the complex DFT input from the DCT-III input: bin
// k pairs in[k] with -in[size-k] and rotates by the half-sample shift.
func (p *Plan[F, C]) scaleBackward(in []F) {
	p.in[0] = cmath.FromParts[C](float64(in[0])/2, 0)

	for i := 1; i < p.size; i++ {
		realPart := float64(in[i]) / 2
		imagPart := -float64(in[p.size-i]) / 2

		p.in[i] = cmath.FromParts[C](
			p.cosins[i]*realPart-p.sins[i]*imagPart,
			p.sins[i]*realPart+p.cosins[i]*imagPart)
	}
}

// rearrangeBackward undoes the forward permutation, scattering the real
// parts back to even indices ascending and odd indices descending.
func (p *Plan[F, C]) rearrangeBackward(out []F) {
	j := 0

	for i := 0; i < p.size; i += 2 {
		out[i] = F(cmath.Re(p.out[j]))
		j++
	}

	start := p.size - 2
	if atfft.IsEven(p.size) {
		start = p.size - 1
	}

	for i := start; i > 0; i -= 2 {
		out[i] = F(cmath.Re(p.out[j]))
		j++
	}
}

func (p *Plan[F, C]) backwardTransform(in, out []F) error {
	p.scaleBackward(in)

	if err := p.dft.ComplexTransform(p.in, p.out); err != nil {
		return err
	}

	p.rearrangeBackward(out)

	return nil
}
