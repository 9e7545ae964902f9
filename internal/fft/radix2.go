package fft

import (
	"errors"

	m "github.com/cwbudde/fftcompare/internal/math"
)

// ErrInvalidLength is returned when a transform size is not a power of 2.
var ErrInvalidLength = errors.New("fft: invalid length")

// Radix2 is an iterative decimation-in-time complex FFT of a fixed
// power-of-two size. Twiddles and the bit-reversal permutation are computed
// once at construction.
type Radix2 struct {
	n       int
	twiddle []complex128
	bitrev  []int
}

// NewRadix2 creates a radix-2 plan for size n.
func NewRadix2(n int) (*Radix2, error) {
	if !m.IsPowerOf2(n) {
		return nil, ErrInvalidLength
	}

	return &Radix2{
		n:       n,
		twiddle: m.ComputeTwiddleFactors(n),
		bitrev:  m.ComputeBitReversalIndices(n),
	}, nil
}

// Len returns the FFT size.
func (p *Radix2) Len() int {
	return p.n
}

// InPlace computes the forward FFT of data in place.
// Caller guarantees: len(data) >= n.
func (p *Radix2) InPlace(data []complex128) {
	n := p.n

	for i, j := range p.bitrev {
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := n / size

		for start := 0; start < n; start += size {
			for k := range half {
				w := p.twiddle[k*step]
				a := data[start+k]
				b := w * data[start+k+half]
				data[start+k] = a + b
				data[start+k+half] = a - b
			}
		}
	}
}
