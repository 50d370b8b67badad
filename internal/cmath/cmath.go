// Package cmath holds the complex sample primitives shared by the
// transform packages. Operations are generic over the Complex constraint
// so that the same engine code serves complex64 and complex128 plans;
// decomposition goes through complex128, which is exact for both widths.
package cmath

import "github.com/seanlikeskites/atfft"

// FromParts builds a complex sample from float64 parts.
func FromParts[C atfft.Complex](re, im float64) C {
	return C(complex(re, im))
}

// Re returns the real part of z as a float64.
func Re[C atfft.Complex](z C) float64 {
	return real(complex128(z))
}

// Im returns the imaginary part of z as a float64.
func Im[C atfft.Complex](z C) float64 {
	return imag(complex128(z))
}

// Conj returns the complex conjugate of z.
func Conj[C atfft.Complex](z C) C {
	c := complex128(z)
	return C(complex(real(c), -imag(c)))
}

// Swap exchanges the real and imaginary parts of z, which is the same as
// multiplying the conjugate by j: Swap(z) = j * conj(z).
func Swap[C atfft.Complex](z C) C {
	c := complex128(z)
	return C(complex(imag(c), real(c)))
}

// MulJ rotates z by 90 degrees: MulJ(z) = j * z.
func MulJ[C atfft.Complex](z C) C {
	c := complex128(z)
	return C(complex(-imag(c), real(c)))
}

// SwapProduct computes j * conj(a) * b, the combination Rader and
// Bluestein use to run an inverse DFT through a forward plan.
func SwapProduct[C atfft.Complex](a, b C) C {
	return Swap(a * Conj(b))
}
