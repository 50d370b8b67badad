package dft

import (
	"math"

	"github.com/seanlikeskites/atfft"
	"github.com/seanlikeskites/atfft/internal/cmath"
)

// cooleyTukey computes a mixed-radix decimation-in-time DFT. The size is
// factorised into a list of radices; each stage splits the signal into
// radix interleaved sub-transforms and recombines their spectra with a
// butterfly pass.
type cooleyTukey[F atfft.Float, C atfft.Complex] struct {
	size      int
	direction atfft.Direction

	// radices and their associated sub-transform sizes
	radices  []int
	subSizes []int

	// complex sinusoids for the whole transform length
	sinusoids []C

	// per-stage twiddle factors, (radix-1)*subSize each
	tFactors [][]C

	sin2PiOn3 float64

	// working space for length-n butterflies
	workSpace []C

	// plans for large prime factor sub-transforms, deduplicated by radix
	subTransforms      map[int]*Plan[F, C]
	radixSubTransforms []*Plan[F, C]
}

// nextRadix steps through the radix candidates: the even radices 4 and 2
// first, then the odd numbers.
func nextRadix(r int) int {
	switch r {
	case 4:
		return 2
	case 2:
		return 3
	default:
		return r + 2
	}
}

// initRadices factorises size into the radix list and the sub-transform
// size remaining after each stage. Radix 4 is preferred greedily so that
// powers of four never emit a radix-2 stage.
func initRadices(size int) (radices, subSizes []int, maxRadix int) {
	r := 4
	sqrtSize := int(math.Sqrt(float64(size)))
	maxRadix = 2

	for {
		for size%r != 0 {
			r = nextRadix(r)

			// a number has at most one prime factor above its square root
			if r > sqrtSize {
				r = size
			}
		}

		size /= r

		radices = append(radices, r)
		subSizes = append(subSizes, size)

		if r > maxRadix {
			maxRadix = r
		}

		if size <= 1 {
			return radices, subSizes, maxRadix
		}
	}
}

// stageTwiddleFactors tabulates the butterfly twiddles for one stage in
// (bin, radix) row-major order. The zeroth block of each butterfly is
// never multiplied, so only radix-1 factors are stored per bin.
func stageTwiddleFactors[C atfft.Complex](radix, subSize int, direction atfft.Direction) []C {
	size := radix * subSize
	factors := make([]C, 0, size-subSize)

	for k := 0; k < subSize; k++ {
		for r := 1; r < radix; r++ {
			factors = append(factors, twiddleFactor[C](k*r, size, direction))
		}
	}

	return factors
}

func newCooleyTukey[F atfft.Float, C atfft.Complex](size int, direction atfft.Direction, opts Options) (*cooleyTukey[F, C], error) {
	ct := &cooleyTukey[F, C]{
		size:      size,
		direction: direction,
	}

	var maxRadix int
	ct.radices, ct.subSizes, maxRadix = initRadices(size)

	ct.sinusoids = make([]C, size)
	for i := range ct.sinusoids {
		ct.sinusoids[i] = twiddleFactor[C](i, size, direction)
	}

	ct.tFactors = make([][]C, len(ct.radices))
	for i, r := range ct.radices {
		ct.tFactors[i] = stageTwiddleFactors[C](r, ct.subSizes[i], direction)
	}

	if direction == atfft.Forward {
		ct.sin2PiOn3 = -math.Sin(2 * math.Pi / 3)
	} else {
		ct.sin2PiOn3 = math.Sin(2 * math.Pi / 3)
	}

	ct.workSpace = make([]C, maxRadix)

	// build inner plans for any radices above the threshold, sharing one
	// plan between stages with the same radix
	ct.subTransforms = make(map[int]*Plan[F, C])
	ct.radixSubTransforms = make([]*Plan[F, C], len(ct.radices))

	for i, r := range ct.radices {
		if r <= opts.SubTransformThreshold {
			continue
		}

		sub, ok := ct.subTransforms[r]
		if !ok {
			var err error

			sub, err = newPlan[F, C](r, direction, atfft.FormatComplex, opts)
			if err != nil {
				return nil, err
			}

			ct.subTransforms[r] = sub
		}

		ct.radixSubTransforms[i] = sub
	}

	return ct, nil
}

// dft2 computes a 2 point DFT over out[off] and out[off+stride].
func dft2[C atfft.Complex](out []C, off, stride int) {
	t := out[off+stride]
	out[off+stride] = out[off] - t
	out[off] += t
}

// dft3 computes a 3 point DFT over three bins spaced by stride.
func dft3[C atfft.Complex](out []C, off, stride int, sin2PiOn3 float64) {
	b0 := out[off]
	b1 := out[off+stride]
	b2 := out[off+2*stride]

	t0 := b1 + b2
	t1 := b0 - t0*cmath.FromParts[C](0.5, 0)
	t2 := (b1 - b2) * cmath.FromParts[C](sin2PiOn3, 0)

	out[off] = b0 + t0
	out[off+stride] = t1 + cmath.MulJ(t2)
	out[off+2*stride] = t1 - cmath.MulJ(t2)
}

// dft4 computes a 4 point DFT over four bins spaced by stride. The
// direction selects the sign of the rotated difference.
func dft4[C atfft.Complex](out []C, off, stride int, direction atfft.Direction) {
	b0 := out[off]
	b1 := out[off+stride]
	b2 := out[off+2*stride]
	b3 := out[off+3*stride]

	t0 := b0 + b2
	t1 := b1 + b3
	t2 := b0 - b2

	var t3 C
	if direction == atfft.Forward {
		t3 = b1 - b3
	} else {
		t3 = b3 - b1
	}

	out[off] = t0 + t1
	out[off+stride] = t2 - cmath.MulJ(t3)
	out[off+2*stride] = t0 - t1
	out[off+3*stride] = t2 + cmath.MulJ(t3)
}

func (ct *cooleyTukey[F, C]) butterfly2(out []C, off, stride, subSize int, tFactors []C) {
	dftStride := subSize * stride

	for i := 0; i < subSize; i++ {
		out[off+dftStride] *= tFactors[i]
		dft2(out, off, dftStride)
		off += stride
	}
}

func (ct *cooleyTukey[F, C]) butterfly3(out []C, off, stride, subSize int, tFactors []C) {
	dftStride := subSize * stride
	t := 0

	for i := 0; i < subSize; i++ {
		for n := 1; n < 3; n++ {
			out[off+n*dftStride] *= tFactors[t]
			t++
		}

		dft3(out, off, dftStride, ct.sin2PiOn3)
		off += stride
	}
}

func (ct *cooleyTukey[F, C]) butterfly4(out []C, off, stride, subSize int, tFactors []C) {
	dftStride := subSize * stride
	t := 0

	for i := 0; i < subSize; i++ {
		for n := 1; n < 4; n++ {
			out[off+n*dftStride] *= tFactors[t]
			t++
		}

		dft4(out, off, dftStride, ct.direction)
		off += stride
	}
}

// butterflySubTransform combines the stage with an inner plan for the
// radix, twiddling each column and transforming it in place.
func (ct *cooleyTukey[F, C]) butterflySubTransform(out []C, off, stride, subSize, radix int, tFactors []C, sub *Plan[F, C]) {
	dftStride := subSize * stride
	t := 0

	for i := 0; i < subSize; i++ {
		for n := 1; n < radix; n++ {
			out[off+n*dftStride] *= tFactors[t]
			t++
		}

		sub.transform(out[off:], dftStride, out[off:], dftStride)
		off += stride
	}
}

// butterflyN combines radix DFTs of length subSize into one DFT of length
// radix*subSize by direct twiddle sums over the master sinusoid table.
func (ct *cooleyTukey[F, C]) butterflyN(out []C, off, stride, subSize, radix, sinStride int) {
	for i := 0; i < subSize; i++ {
		for n := 0; n < radix; n++ {
			ct.workSpace[n] = out[off+(n*subSize+i)*stride]
		}

		for n := 0; n < radix; n++ {
			k := n*subSize + i
			bin := ct.workSpace[0]

			for r := 1; r < radix; r++ {
				bin += ct.workSpace[r] * ct.sinusoids[(k*r*sinStride)%ct.size]
			}

			out[off+k*stride] = bin
		}
	}
}

func (ct *cooleyTukey[F, C]) butterfly(out []C, off, stride, subSize, radix, stage, sinStride int) {
	switch radix {
	case 2:
		ct.butterfly2(out, off, stride, subSize, ct.tFactors[stage])
	case 3:
		ct.butterfly3(out, off, stride, subSize, ct.tFactors[stage])
	case 4:
		ct.butterfly4(out, off, stride, subSize, ct.tFactors[stage])
	default:
		if sub := ct.radixSubTransforms[stage]; sub != nil {
			ct.butterflySubTransform(out, off, stride, subSize, radix, ct.tFactors[stage], sub)
		} else {
			ct.butterflyN(out, off, stride, subSize, radix, sinStride)
		}
	}
}

// compute recursively decimates the input in time. Reads at each level
// interleave the input by the accumulated radix product; writes land
// contiguously per sub-block. At the innermost stage the copy is the
// one point DFT.
func (ct *cooleyTukey[F, C]) compute(in []C, inOff, inStride int, out []C, outOff, outStride, stage, sinStride int) {
	radix := ct.radices[stage]
	subSize := ct.subSizes[stage]

	if stage < len(ct.radices)-1 {
		for r := 0; r < radix; r++ {
			ct.compute(in,
				inOff+r*inStride,
				inStride*radix,
				out,
				outOff+r*subSize*outStride,
				outStride,
				stage+1,
				sinStride*radix)
		}
	} else {
		for i := 0; i < subSize*radix; i++ {
			out[outOff+i*outStride] = in[inOff+i*inStride]
		}
	}

	ct.butterfly(out, outOff, outStride, subSize, radix, stage, sinStride)
}

func (ct *cooleyTukey[F, C]) transform(in []C, inStride int, out []C, outStride int) {
	ct.compute(in, 0, inStride, out, 0, outStride, 0, 1)
}

func (ct *cooleyTukey[F, C]) info() *PlanInfo {
	info := &PlanInfo{
		Algorithm: "cooley-tukey",
		Size:      ct.size,
		Radices:   ct.radices,
	}

	for _, sub := range ct.subTransforms {
		info.SubTransforms = append(info.SubTransforms, sub.Describe())
	}

	return info
}
