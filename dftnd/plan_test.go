package dftnd

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/seanlikeskites/atfft"
	"github.com/seanlikeskites/atfft/dft"
)

const tolerance = 1e-9

func complexRand(n int) []complex128 {
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(rand.NormFloat64(), rand.NormFloat64())
	}

	return x
}

func dimsStr(dims []int) string {
	return fmt.Sprintf("dims=%v", dims)
}

// slowDFT2D transforms rows then columns of a row-major nx by ny signal
// with 1-D plans.
func slowDFT2D(t *testing.T, x []complex128, nx, ny int, direction atfft.Direction) []complex128 {
	t.Helper()

	rowPlan, err := dft.New64(ny, direction, atfft.FormatComplex)
	if err != nil {
		t.Fatalf("New64(%d) failed: %v", ny, err)
	}

	colPlan, err := dft.New64(nx, direction, atfft.FormatComplex)
	if err != nil {
		t.Fatalf("New64(%d) failed: %v", nx, err)
	}

	rows := make([]complex128, nx*ny)
	for i := 0; i < nx; i++ {
		if err := rowPlan.ComplexTransform(x[i*ny:(i+1)*ny], rows[i*ny:(i+1)*ny]); err != nil {
			t.Fatalf("row transform failed: %v", err)
		}
	}

	out := make([]complex128, nx*ny)
	for j := 0; j < ny; j++ {
		if err := colPlan.ComplexTransformStride(rows[j:], ny, out[j:], ny); err != nil {
			t.Fatalf("column transform failed: %v", err)
		}
	}

	return out
}

func assertClose(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()

	for i := range want {
		if e := cmplx.Abs(got[i] - want[i]); e > tol {
			t.Errorf("element %d, got: %v, expected: %v (diff %v)", i, got[i], want[i], e)
		}
	}
}

func TestComplexTransform2DSeparability(t *testing.T) {
	cases := [][]int{{4, 4}, {4, 8}, {3, 5}, {8, 3}, {17, 4}}

	for _, dims := range cases {
		t.Run(dimsStr(dims), func(t *testing.T) {
			plan, err := New64(dims, atfft.Forward, atfft.FormatComplex)
			if err != nil {
				t.Fatalf("New64(%v) failed: %v", dims, err)
			}

			x := complexRand(dims[0] * dims[1])

			got := make([]complex128, len(x))
			if err := plan.ComplexTransform(x, got); err != nil {
				t.Fatalf("ComplexTransform failed: %v", err)
			}

			want := slowDFT2D(t, x, dims[0], dims[1], atfft.Forward)

			assertClose(t, got, want, tolerance*float64(len(x)))
		})
	}
}

func TestComplexRoundTrip(t *testing.T) {
	cases := [][]int{{8}, {4, 4}, {2, 3, 4}, {4, 4, 4}, {3, 5, 7}}

	for _, dims := range cases {
		t.Run(dimsStr(dims), func(t *testing.T) {
			forward, err := New64(dims, atfft.Forward, atfft.FormatComplex)
			if err != nil {
				t.Fatalf("New64 forward failed: %v", err)
			}

			backward, err := New64(dims, atfft.Backward, atfft.FormatComplex)
			if err != nil {
				t.Fatalf("New64 backward failed: %v", err)
			}

			size := atfft.Product(dims)
			x := complexRand(size)
			spectrum := make([]complex128, size)
			restored := make([]complex128, size)

			if err := forward.ComplexTransform(x, spectrum); err != nil {
				t.Fatalf("forward transform failed: %v", err)
			}

			if err := backward.ComplexTransform(spectrum, restored); err != nil {
				t.Fatalf("backward transform failed: %v", err)
			}

			atfft.NormaliseComplex(restored)

			assertClose(t, restored, x, tolerance*float64(size))
		})
	}
}

func TestRealRoundTrip(t *testing.T) {
	cases := [][]int{{8}, {4, 4}, {4, 6}, {4, 4, 4}, {2, 3, 8}, {3, 4, 5}}

	for _, dims := range cases {
		t.Run(dimsStr(dims), func(t *testing.T) {
			forward, err := New64(dims, atfft.Forward, atfft.FormatReal)
			if err != nil {
				t.Fatalf("New64 forward failed: %v", err)
			}

			backward, err := New64(dims, atfft.Backward, atfft.FormatReal)
			if err != nil {
				t.Fatalf("New64 backward failed: %v", err)
			}

			size := atfft.Product(dims)

			// a ramp exercises every bin
			x := make([]float64, size)
			for i := range x {
				x[i] = float64(i)
			}

			spectrum := make([]complex128, atfft.NDHalfcomplexSize(dims))
			restored := make([]float64, size)

			if err := forward.RealForwardTransform(x, spectrum); err != nil {
				t.Fatalf("RealForwardTransform failed: %v", err)
			}

			if err := backward.RealBackwardTransform(spectrum, restored); err != nil {
				t.Fatalf("RealBackwardTransform failed: %v", err)
			}

			atfft.ScaleReal(restored, 1/float64(size))

			for i := range x {
				if math.Abs(restored[i]-x[i]) > tolerance*float64(size) {
					t.Errorf("sample %d, got: %v, expected: %v", i, restored[i], x[i])
				}
			}
		})
	}
}

func TestRealForwardMatchesComplex(t *testing.T) {
	dims := []int{4, 6}

	realPlan, err := New64(dims, atfft.Forward, atfft.FormatReal)
	if err != nil {
		t.Fatalf("New64 real failed: %v", err)
	}

	complexPlan, err := New64(dims, atfft.Forward, atfft.FormatComplex)
	if err != nil {
		t.Fatalf("New64 complex failed: %v", err)
	}

	size := atfft.Product(dims)
	x := make([]float64, size)
	for i := range x {
		x[i] = rand.NormFloat64()
	}

	got := make([]complex128, atfft.NDHalfcomplexSize(dims))
	if err := realPlan.RealForwardTransform(x, got); err != nil {
		t.Fatalf("RealForwardTransform failed: %v", err)
	}

	cx := make([]complex128, size)
	atfft.RealToComplex(x, cx)

	full := make([]complex128, size)
	if err := complexPlan.ComplexTransform(cx, full); err != nil {
		t.Fatalf("ComplexTransform failed: %v", err)
	}

	// the real plan stores the lower halfcomplex bins of the last axis
	hc := atfft.HalfcomplexSize(dims[1])
	for i := 0; i < dims[0]; i++ {
		for j := 0; j < hc; j++ {
			want := full[i*dims[1]+j]
			if e := cmplx.Abs(got[i*hc+j] - want); e > tolerance*float64(size) {
				t.Errorf("bin (%d, %d), got: %v, expected: %v", i, j, got[i*hc+j], want)
			}
		}
	}
}

func TestPlanErrors(t *testing.T) {
	if _, err := New64(nil, atfft.Forward, atfft.FormatComplex); err != ErrInvalidDimensions {
		t.Errorf("New64(nil), got: %v, expected: %v", err, ErrInvalidDimensions)
	}

	if _, err := New64([]int{4, 0}, atfft.Forward, atfft.FormatComplex); err != ErrInvalidDimensions {
		t.Errorf("New64([4 0]), got: %v, expected: %v", err, ErrInvalidDimensions)
	}

	plan, err := New64([]int{4, 4}, atfft.Forward, atfft.FormatComplex)
	if err != nil {
		t.Fatalf("New64([4 4]) failed: %v", err)
	}

	if err := plan.ComplexTransform(make([]complex128, 8), make([]complex128, 16)); err != ErrSizeMismatch {
		t.Errorf("short input, got: %v, expected: %v", err, ErrSizeMismatch)
	}

	if err := plan.RealForwardTransform(make([]float64, 16), make([]complex128, 12)); err != ErrFormatMismatch {
		t.Errorf("real transform on complex plan, got: %v, expected: %v", err, ErrFormatMismatch)
	}
}

func TestSubPlanSharing(t *testing.T) {
	plan, err := New64([]int{8, 8, 8}, atfft.Forward, atfft.FormatComplex)
	if err != nil {
		t.Fatalf("New64([8 8 8]) failed: %v", err)
	}

	if len(plan.subTransforms) != 1 {
		t.Errorf("sub-plan count, got: %d, expected: 1", len(plan.subTransforms))
	}

	if plan.dimSubTransforms[0] != plan.dimSubTransforms[2] {
		t.Error("equal dimensions do not share their sub-plan")
	}
}
