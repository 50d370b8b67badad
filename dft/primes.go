package dft

import (
	"math"

	"github.com/seanlikeskites/atfft"
)

// mod returns the canonical non-negative remainder of a modulo n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}

// gcdExt runs the extended Euclidean algorithm, returning g = gcd(a, b)
// along with x and y such that a*x + b*y = g. The signs of x and y follow
// the signs of the inputs.
func gcdExt(a, b int) (g, x, y int) {
	absA := a
	if absA < 0 {
		absA = -absA
	}

	absB := b
	if absB < 0 {
		absB = -absB
	}

	r0, r1 := absA, absB
	s0, s1 := 1, 0
	if absB > absA {
		r0, r1 = absB, absA
		s0, s1 = 0, 1
	}

	t0, t1 := s1, s0

	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		s0, s1 = s1, s0-q*s1
		t0, t1 = t1, t0-q*t1
	}

	x = s0
	if a < 0 {
		x = -s0
	}

	y = t0
	if b < 0 {
		y = -t0
	}

	return r0, x, y
}

// multInverseMod returns the multiplicative inverse of a modulo n, in
// [0, n), or -1 if a and n are not coprime.
func multInverseMod(a, n int) int {
	g, x, _ := gcdExt(a%n, n)

	if g != 1 {
		return -1
	}

	return mod(x, n)
}

// isPrime tests x for primality by trial division.
func isPrime(x int) bool {
	if x <= 1 || (atfft.IsEven(x) && x > 2) {
		return false
	}

	sqrtX := int(math.Sqrt(float64(x)))

	for i := 2; i <= sqrtX; i++ {
		if x%i == 0 {
			return false
		}
	}

	return true
}

// primeFactors returns the prime factorisation of n in ascending order.
func primeFactors(n int) []int {
	var factors []int

	f := 2
	sqrtN := int(math.Sqrt(float64(n)))

	for n > 1 {
		for n%f != 0 {
			if f == 2 {
				f = 3
			} else {
				f += 2
			}

			// a number has at most one prime factor above its square root
			if f > sqrtN {
				f = n
			}
		}

		n /= f
		factors = append(factors, f)
	}

	return factors
}

// primitiveRootMod returns a generator of the multiplicative group modulo
// the prime n, or -1 when n is not prime or no root exists.
func primitiveRootMod(n int) int {
	// the multiplicative group is only cyclic of order n-1 for prime n
	if !isPrime(n) {
		return -1
	}

	for g := 2; g < n; g++ {
		m := 1
		isRoot := true

		for i := 0; i < n-2; i++ {
			m = (m * g) % n

			if m == 1 {
				isRoot = false
				break
			}
		}

		if isRoot {
			return g
		}
	}

	return -1
}
