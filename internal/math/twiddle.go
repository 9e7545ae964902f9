package math

import "math"

// ComputeTwiddleFactors returns the forward roots of unity for a size-n
// radix-2 FFT: W_n^k = exp(-2*pi*i*k/n) for k = 0..n/2-1.
func ComputeTwiddleFactors(n int) []complex128 {
	if n < 2 {
		return nil
	}

	twiddle := make([]complex128, n/2)
	for k := range twiddle {
		angle := -TwoPi * float64(k) / float64(n)
		twiddle[k] = complex(math.Cos(angle), math.Sin(angle))
	}

	return twiddle
}

// ComputeRealWeights returns the recombination weights used to split a
// half-size complex FFT of packed real samples into the real spectrum:
// U[k] = 0.5*(1+sin(theta)) + 0.5i*cos(theta), theta = 2*pi*k/n, k = 0..n/2.
func ComputeRealWeights(n int) []complex128 {
	if n < 2 {
		return nil
	}

	weight := make([]complex128, n/2+1)
	for k := range weight {
		theta := TwoPi * float64(k) / float64(n)
		weight[k] = complex(0.5*(1+math.Sin(theta)), 0.5*math.Cos(theta))
	}

	return weight
}
