package dft

import (
	"slices"
	"testing"

	"github.com/seanlikeskites/atfft"
)

func TestInitRadices(t *testing.T) {
	cases := []struct {
		size int
		want []int
	}{
		{1, []int{1}},
		{2, []int{2}},
		{4, []int{4}},
		{8, []int{4, 2}},
		{16, []int{4, 4}},
		{64, []int{4, 4, 4}},
		{81, []int{3, 3, 3, 3}},
		{120, []int{4, 2, 3, 5}},
		{100, []int{4, 5, 5}},
		{7, []int{7}},
	}

	for _, c := range cases {
		radices, subSizes, _ := initRadices(c.size)

		if !slices.Equal(radices, c.want) {
			t.Errorf("initRadices(%d) radices, got: %v, expected: %v", c.size, radices, c.want)
		}

		// each stage's sub-size is the size remaining after its radix
		remaining := c.size
		for i, r := range radices {
			remaining /= r
			if subSizes[i] != remaining {
				t.Errorf("initRadices(%d) subSizes[%d], got: %d, expected: %d",
					c.size, i, subSizes[i], remaining)
			}
		}

		if remaining != 1 {
			t.Errorf("initRadices(%d): radix product does not reach the size", c.size)
		}
	}
}

func TestInitRadicesPowersOfFour(t *testing.T) {
	// powers of four factor entirely into 4s
	for size := 4; size <= 1024; size *= 4 {
		radices, _, _ := initRadices(size)

		for _, r := range radices {
			if r != 4 {
				t.Errorf("initRadices(%d) emitted radix %d", size, r)
			}
		}
	}
}

func TestStageTwiddleFactors(t *testing.T) {
	radix, subSize := 3, 4
	factors := stageTwiddleFactors[complex128](radix, subSize, atfft.Forward)

	if len(factors) != (radix-1)*subSize {
		t.Fatalf("twiddle table length, got: %d, expected: %d", len(factors), (radix-1)*subSize)
	}

	// row-major (bin, radix) order against the twiddle generator
	n := 0
	for k := 0; k < subSize; k++ {
		for r := 1; r < radix; r++ {
			want := twiddleFactor[complex128](k*r, radix*subSize, atfft.Forward)
			if factors[n] != want {
				t.Errorf("factor (%d, %d), got: %v, expected: %v", k, r, factors[n], want)
			}
			n++
		}
	}
}

func TestSubTransformSharing(t *testing.T) {
	// 49 factors as [7 7]; both stages must share one size-7 inner plan
	ct, err := newCooleyTukey[float64, complex128](49, atfft.Forward, DefaultOptions())
	if err != nil {
		t.Fatalf("newCooleyTukey(49) failed: %v", err)
	}

	if len(ct.subTransforms) != 1 {
		t.Fatalf("sub-transform count, got: %d, expected: 1", len(ct.subTransforms))
	}

	if ct.radixSubTransforms[0] == nil || ct.radixSubTransforms[0] != ct.radixSubTransforms[1] {
		t.Error("stages with equal radices do not share their inner plan")
	}
}

func TestSubTransformThreshold(t *testing.T) {
	// with the threshold raised to 7 the stages use direct twiddle sums
	ct, err := newCooleyTukey[float64, complex128](49, atfft.Forward, Options{SubTransformThreshold: 7})
	if err != nil {
		t.Fatalf("newCooleyTukey(49) failed: %v", err)
	}

	if len(ct.subTransforms) != 0 {
		t.Errorf("sub-transform count, got: %d, expected: 0", len(ct.subTransforms))
	}
}
