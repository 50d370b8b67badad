package dft

import (
	"math"

	"github.com/seanlikeskites/atfft"
	"github.com/seanlikeskites/atfft/internal/cmath"
)

// twiddleFactor returns e^(s*2*pi*j*n/size) where s is -1 for forward
// transforms and +1 for backward ones.
func twiddleFactor[C atfft.Complex](n, size int, direction atfft.Direction) C {
	return scaledTwiddleFactor[C](n, size, direction, 1)
}

// scaledTwiddleFactor returns a twiddle factor with both parts divided by
// scale. Rader uses the scale to fold the convolution normalisation into
// its twiddle sequence.
func scaledTwiddleFactor[C atfft.Complex](n, size int, direction atfft.Direction, scale float64) C {
	x := 2 * math.Pi * float64(n) / float64(size)
	re := math.Cos(x) / scale
	im := math.Sin(x) / scale

	if direction == atfft.Forward {
		im = -im
	}

	return cmath.FromParts[C](re, im)
}
