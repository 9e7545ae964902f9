package fft

import (
	m "github.com/cwbudde/fftcompare/internal/math"
)

// Real computes the forward FFT of n real samples through a half-size
// complex FFT: even and odd samples are packed as z[k] = x[2k] + i*x[2k+1],
// transformed, then recombined into the n/2+1 non-redundant bins.
type Real struct {
	n      int
	half   int
	weight []complex128
	buf    []complex128
	inner  *Radix2
}

// NewReal creates a real FFT plan. The size n must be a power of 2 and >= 2.
func NewReal(n int) (*Real, error) {
	if n < 2 || !m.IsPowerOf2(n) {
		return nil, ErrInvalidLength
	}

	half := n / 2

	inner, err := NewRadix2(half)
	if err != nil {
		return nil, err
	}

	return &Real{
		n:      n,
		half:   half,
		weight: m.ComputeRealWeights(n),
		buf:    make([]complex128, half),
		inner:  inner,
	}, nil
}

// Len returns the number of real samples.
func (p *Real) Len() int {
	return p.n
}

// SpectrumLen returns the number of complex frequency bins (N/2+1).
func (p *Real) SpectrumLen() int {
	return p.half + 1
}

// Forward computes the real-to-complex FFT of src into dst.
// Caller guarantees: len(dst) >= n/2+1, len(src) >= n.
func (p *Real) Forward(dst []complex128, src []float32) {
	half := p.half
	buf := p.buf

	for k := range half {
		buf[k] = complex(float64(src[2*k]), float64(src[2*k+1]))
	}

	p.inner.InPlace(buf)

	// DC and Nyquist
	y0r := real(buf[0])
	y0i := imag(buf[0])
	dst[0] = complex(y0r+y0i, 0)
	dst[half] = complex(y0r-y0i, 0)

	// Recombination: X[k] = A[k] - U[k] * (A[k] - conj(A[N/2-k]))
	weight := p.weight

	for k := 1; k < half; k++ {
		a := buf[k]
		bSrc := buf[half-k]
		b := complex(real(bSrc), -imag(bSrc))
		dst[k] = a - weight[k]*(a-b)
	}
}
