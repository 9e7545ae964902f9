package fftcompare

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
	"time"
)

// Shared test helpers used across multiple test files.

var errFake = errors.New("fake failure")

// dftBackend computes the half spectrum with a direct 2D DFT. It is slow
// and only meant for small test shapes.
type dftBackend struct {
	name      string
	failAlloc int // fail NewBuffer on this call (1-based); 0 never
	failPlan  int
	allocs    int
	plans     int
	closed    int
	perturb   complex64
}

func (b *dftBackend) Info() BackendInfo {
	return BackendInfo{Name: b.name, Version: "test"}
}

func (b *dftBackend) NewBuffer(shape Shape) (*Spectrum, error) {
	b.allocs++
	if b.allocs == b.failAlloc {
		return nil, errFake
	}
	return NewSpectrum(shape)
}

func (b *dftBackend) NewPlan(shape Shape) (Plan, error) {
	b.plans++
	if b.plans == b.failPlan {
		return nil, errFake
	}
	return &dftPlan{backend: b, shape: shape}, nil
}

type dftPlan struct {
	backend *dftBackend
	shape   Shape
}

func (p *dftPlan) Shape() Shape { return p.shape }

func (p *dftPlan) Forward(dst *Spectrum, src *InputGrid) error {
	rows, cols, bins := p.shape.Rows, p.shape.Cols, p.shape.SpectrumCols()

	for u := range rows {
		for v := range bins {
			var sum complex128
			for r := range rows {
				for c := range cols {
					angle := -2 * math.Pi * (float64(u*r)/float64(rows) + float64(v*c)/float64(cols))
					sum += complex(float64(src.Data[r*cols+c]), 0) * cmplx.Exp(complex(0, angle))
				}
			}
			dst.Data[u*bins+v] = complex64(sum)
		}
	}

	dst.Data[0] += p.backend.perturb

	return nil
}

func (p *dftPlan) Close() error {
	p.backend.closed++
	return nil
}

// stepClock advances by a fixed number of ticks on every reading; each
// tick is one microsecond.
type stepClock struct {
	now  int64
	step int64
}

func (c *stepClock) Name() string { return "step" }

func (c *stepClock) Now() int64 {
	c.now += c.step
	return c.now
}

func (c *stepClock) Duration(ticks int64) time.Duration {
	return time.Duration(ticks) * time.Microsecond
}

func spectrumOf(t *testing.T, shape Shape, data ...complex64) *Spectrum {
	t.Helper()

	s, err := NewSpectrum(shape)
	if err != nil {
		t.Fatalf("NewSpectrum(%s) failed: %v", shape, err)
	}
	copy(s.Data, data)
	return s
}
