// Package backend provides the FFT backends compared by fftcompare and a
// registry to look them up by name.
//
// Three independent implementations register themselves at init:
//
//   - "gonum":  gonum.org/v1/gonum/dsp/fourier, any size
//   - "godsp":  github.com/mjibson/go-dsp/fft, any size
//   - "native": an in-tree radix-2 row-column transform, powers of 2 only
//
// MockBackend wraps any backend and injects failures for tests. A
// fault-free mock over "native" is registered as "mock".
package backend
