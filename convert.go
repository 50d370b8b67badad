package atfft

import "math"

// Real writes the real parts of in to out.
func Real[C Complex, F Float](in []C, out []F) {
	RealStride(in, 1, out, 1, len(in))
}

// RealStride writes the real parts of size elements of in to out, reading
// and writing with the given strides.
func RealStride[C Complex, F Float](in []C, inStride int, out []F, outStride int, size int) {
	for i, o := 0, 0; i < size*inStride; i, o = i+inStride, o+outStride {
		out[o] = F(real(complex128(in[i])))
	}
}

// Imag writes the imaginary parts of in to out.
func Imag[C Complex, F Float](in []C, out []F) {
	ImagStride(in, 1, out, 1, len(in))
}

// ImagStride writes the imaginary parts of size elements of in to out,
// reading and writing with the given strides.
func ImagStride[C Complex, F Float](in []C, inStride int, out []F, outStride int, size int) {
	for i, o := 0, 0; i < size*inStride; i, o = i+inStride, o+outStride {
		out[o] = F(imag(complex128(in[i])))
	}
}

// RealToComplex writes the elements of in to the real parts of out,
// setting the imaginary parts to zero.
func RealToComplex[F Float, C Complex](in []F, out []C) {
	RealToComplexStride(in, 1, out, 1, len(in))
}

// RealToComplexStride writes size elements of in to the real parts of
// out, setting the imaginary parts to zero, reading and writing with the
// given strides.
func RealToComplexStride[F Float, C Complex](in []F, inStride int, out []C, outStride int, size int) {
	for i, o := 0, 0; i < size*inStride; i, o = i+inStride, o+outStride {
		out[o] = C(complex(float64(in[i]), 0))
	}
}

// HalfcomplexToComplex expands the halfcomplex spectrum of a real DFT of
// the given size into the full conjugate-symmetric complex spectrum. in
// must hold HalfcomplexSize(size) bins and out size bins.
func HalfcomplexToComplex[C Complex](in []C, out []C, size int) {
	lastBin := HalfcomplexSize(size)

	copy(out[:lastBin], in[:lastBin])

	if IsEven(size) {
		lastBin--
	}

	for i := 1; i < lastBin; i++ {
		c := complex128(in[i])
		out[size-i] = C(complex(real(c), -imag(c)))
	}
}

// HalfcomplexToComplexStride is HalfcomplexToComplex with independent
// input and output strides.
func HalfcomplexToComplexStride[C Complex](in []C, inStride int, out []C, outStride int, size int) {
	lastBin := HalfcomplexSize(size)

	for i, o := 0, 0; i < lastBin*inStride; i, o = i+inStride, o+outStride {
		out[o] = in[i]
	}

	if IsEven(size) {
		lastBin--
	}

	for i, o := inStride, (size-1)*outStride; i < lastBin*inStride; i, o = i+inStride, o-outStride {
		c := complex128(in[i])
		out[o] = C(complex(real(c), -imag(c)))
	}
}

// ComplexToHalfcomplex keeps the first HalfcomplexSize(size) bins of a
// full complex spectrum.
func ComplexToHalfcomplex[C Complex](in []C, out []C, size int) {
	copy(out[:HalfcomplexSize(size)], in[:HalfcomplexSize(size)])
}

// ComplexToHalfcomplexStride is ComplexToHalfcomplex with independent
// input and output strides.
func ComplexToHalfcomplexStride[C Complex](in []C, inStride int, out []C, outStride int, size int) {
	for i, o := 0, 0; i < HalfcomplexSize(size)*inStride; i, o = i+inStride, o+outStride {
		out[o] = in[i]
	}
}

// ScaleReal multiplies each element of data by scale.
func ScaleReal[F Float](data []F, scale float64) {
	for i := range data {
		data[i] = F(float64(data[i]) * scale)
	}
}

// NormaliseReal divides each element of data by its length. Applying it
// to the output of a backward transform completes a round trip.
func NormaliseReal[F Float](data []F) {
	ScaleReal(data, 1/float64(len(data)))
}

// ScaleComplex multiplies each element of data by scale.
func ScaleComplex[C Complex](data []C, scale float64) {
	s := C(complex(scale, 0))
	for i := range data {
		data[i] *= s
	}
}

// NormaliseComplex divides each element of data by its length. Applying
// it to the output of a backward transform completes a round trip.
func NormaliseComplex[C Complex](data []C) {
	ScaleComplex(data, 1/float64(len(data)))
}

// Abs returns the magnitude of x.
func Abs[C Complex](x C) float64 {
	c := complex128(x)
	return math.Hypot(real(c), imag(c))
}

// Arg returns the phase of x.
func Arg[C Complex](x C) float64 {
	c := complex128(x)
	return math.Atan2(imag(c), real(c))
}
