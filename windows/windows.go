package windows

import (
	"math"

	"github.com/seanlikeskites/atfft"
)

// Symmetry selects how a window treats its end points.
type Symmetry int

const (
	// Symmetric windows are mirror-symmetric around their centre sample.
	Symmetric Symmetry = iota
	// Periodic windows span one period, as used for spectral analysis.
	Periodic
)

// Bartlett fills window with a triangular window.
func Bartlett[F atfft.Float](window []F, symmetry Symmetry) {
	size := len(window)

	center := float64(size) / 2
	if symmetry == Symmetric {
		center = (float64(size) - 1) / 2
	}

	for i := range window {
		window[i] = F(1 - math.Abs((float64(i)-center)/center))
	}
}

// Hann fills window with a Hann window.
func Hann[F atfft.Float](window []F, symmetry Symmetry) {
	den := windowDenominator(len(window), symmetry)

	for i := range window {
		x := math.Sin(math.Pi * float64(i) / den)
		window[i] = F(x * x)
	}
}

// Hamming fills window with a Hamming window.
func Hamming[F atfft.Float](window []F, symmetry Symmetry) {
	den := windowDenominator(len(window), symmetry)

	for i := range window {
		x := math.Cos(2 * math.Pi * float64(i) / den)
		window[i] = F(0.54 - 0.46*x)
	}
}

// Blackman fills window with a Blackman window.
func Blackman[F atfft.Float](window []F, symmetry Symmetry) {
	den := windowDenominator(len(window), symmetry)

	for i := range window {
		x := 2 * math.Pi * float64(i) / den
		window[i] = F(0.42 - 0.5*math.Cos(x) + 0.08*math.Cos(2*x))
	}
}

func windowDenominator(size int, symmetry Symmetry) float64 {
	if symmetry == Symmetric {
		return float64(size) - 1
	}

	return float64(size)
}
