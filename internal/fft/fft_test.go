package fft

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"
)

func naiveDFT(src []complex128) []complex128 {
	n := len(src)
	out := make([]complex128, n)

	for k := range n {
		var sum complex128
		for j := range n {
			angle := -2 * math.Pi * float64(j*k) / float64(n)
			sum += src[j] * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum
	}

	return out
}

func naiveReal2D(src []float32, rows, cols int) []complex128 {
	bins := cols/2 + 1
	out := make([]complex128, rows*bins)

	for u := range rows {
		for v := range bins {
			var sum complex128
			for r := range rows {
				for c := range cols {
					angle := -2 * math.Pi * (float64(u*r)/float64(rows) + float64(v*c)/float64(cols))
					sum += complex(float64(src[r*cols+c]), 0) * cmplx.Exp(complex(0, angle))
				}
			}
			out[u*bins+v] = sum
		}
	}

	return out
}

func TestRadix2MatchesDFT(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewPCG(1, 2))

	for _, n := range []int{1, 2, 4, 8, 16, 64, 256} {
		src := make([]complex128, n)
		for i := range src {
			src[i] = complex(rnd.Float64(), rnd.Float64())
		}

		want := naiveDFT(src)

		plan, err := NewRadix2(n)
		if err != nil {
			t.Fatalf("NewRadix2(%d) failed: %v", n, err)
		}

		got := append([]complex128(nil), src...)
		plan.InPlace(got)

		for k := range n {
			if cmplx.Abs(got[k]-want[k]) > 1e-9 {
				t.Fatalf("n=%d bin %d: got %v want %v", n, k, got[k], want[k])
			}
		}
	}
}

func TestNewRadix2InvalidLength(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -2, 3, 12} {
		if _, err := NewRadix2(n); err == nil {
			t.Errorf("NewRadix2(%d): expected error", n)
		}
	}
}

func TestRealMatchesDFT(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewPCG(3, 4))

	for _, n := range []int{2, 4, 8, 32, 128} {
		src := make([]float32, n)
		full := make([]complex128, n)
		for i := range src {
			src[i] = rnd.Float32()
			full[i] = complex(float64(src[i]), 0)
		}

		want := naiveDFT(full)

		plan, err := NewReal(n)
		if err != nil {
			t.Fatalf("NewReal(%d) failed: %v", n, err)
		}
		if plan.SpectrumLen() != n/2+1 {
			t.Fatalf("SpectrumLen() = %d, want %d", plan.SpectrumLen(), n/2+1)
		}

		got := make([]complex128, plan.SpectrumLen())
		plan.Forward(got, src)

		for k := range got {
			if cmplx.Abs(got[k]-want[k]) > 1e-9 {
				t.Fatalf("n=%d bin %d: got %v want %v", n, k, got[k], want[k])
			}
		}
	}
}

func TestNewRealInvalidLength(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 6} {
		if _, err := NewReal(n); err == nil {
			t.Errorf("NewReal(%d): expected error", n)
		}
	}
}

func TestReal2DGolden4x4(t *testing.T) {
	t.Parallel()

	src := make([]float32, 16)
	for i := range src {
		src[i] = float32(i)
	}

	want := []complex64{
		120, -8 + 8i, -8,
		-32 + 32i, 0, 0,
		-32, 0, 0,
		-32 - 32i, 0, 0,
	}

	plan, err := NewReal2D(4, 4)
	if err != nil {
		t.Fatalf("NewReal2D failed: %v", err)
	}

	got := make([]complex64, len(want))
	plan.Forward(got, src)

	for i := range want {
		if cmplx.Abs(complex128(got[i]-want[i])) > 1e-5 {
			t.Errorf("bin %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestReal2DMatchesDFT(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewPCG(5, 6))

	for _, shape := range [][2]int{{1, 2}, {2, 8}, {8, 4}, {16, 16}} {
		rows, cols := shape[0], shape[1]

		src := make([]float32, rows*cols)
		for i := range src {
			src[i] = rnd.Float32()
		}

		want := naiveReal2D(src, rows, cols)

		plan, err := NewReal2D(rows, cols)
		if err != nil {
			t.Fatalf("NewReal2D(%d, %d) failed: %v", rows, cols, err)
		}

		got := make([]complex64, len(want))
		plan.Forward(got, src)

		for i := range want {
			if cmplx.Abs(complex128(got[i])-want[i]) > 1e-4 {
				t.Fatalf("%dx%d bin %d: got %v want %v", rows, cols, i, got[i], want[i])
			}
		}
	}
}
