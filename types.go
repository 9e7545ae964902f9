package fftcompare

import (
	"fmt"
	"math"
)

// Shape is the logical extent of a real input grid.
type Shape struct {
	Rows int
	Cols int
}

// MaxElements caps the samples of an input grid, and with them the bins of
// its half spectrum (32 GiB of complex64).
const MaxElements int64 = 1 << 32

// Validate reports whether the shape can be used for a real-to-complex
// transform. Cols must be even so the half spectrum has Cols/2+1 columns
// with a Nyquist bin. Grids above MaxElements samples, or whose lengths do
// not fit an int, are rejected with ErrResourceExhausted.
func (s Shape) Validate() error {
	if s.Rows < 1 || s.Cols < 2 || s.Cols%2 != 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidShape, s.Rows, s.Cols)
	}

	// Cols >= Cols/2+1, so bounding Len bounds SpectrumLen too.
	limit := min(MaxElements, int64(math.MaxInt))
	if int64(s.Rows) > limit/int64(s.Cols) {
		return fmt.Errorf("%w: %dx%d exceeds %d samples", ErrResourceExhausted, s.Rows, s.Cols, limit)
	}
	return nil
}

// Len returns the number of real samples.
func (s Shape) Len() int {
	return s.Rows * s.Cols
}

// SpectrumCols returns the number of complex columns per row (Cols/2+1).
func (s Shape) SpectrumCols() int {
	return s.Cols/2 + 1
}

// SpectrumLen returns the number of complex bins of the half spectrum.
func (s Shape) SpectrumLen() int {
	return s.Rows * s.SpectrumCols()
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// InputGrid is a row-major grid of single-precision real samples.
type InputGrid struct {
	Shape Shape
	Data  []float32
}

// NewInputGrid allocates a zeroed grid.
func NewInputGrid(shape Shape) (*InputGrid, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &InputGrid{Shape: shape, Data: make([]float32, shape.Len())}, nil
}

// Row returns the samples of row r.
func (g *InputGrid) Row(r int) []float32 {
	c := g.Shape.Cols
	return g.Data[r*c : (r+1)*c]
}

func (g *InputGrid) check() error {
	if g == nil || g.Data == nil {
		return ErrNilBuffer
	}
	if err := g.Shape.Validate(); err != nil {
		return err
	}
	if len(g.Data) != g.Shape.Len() {
		return fmt.Errorf("%w: grid %s holds %d samples", ErrShapeMismatch, g.Shape, len(g.Data))
	}
	return nil
}

// Spectrum is the row-major half spectrum of a real 2D transform:
// Rows x (Cols/2+1) complex bins, real and imaginary parts stored
// explicitly for every bin.
type Spectrum struct {
	Shape Shape
	Data  []complex64
}

// NewSpectrum allocates a zeroed half spectrum for a real grid of the
// given shape.
func NewSpectrum(shape Shape) (*Spectrum, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Spectrum{Shape: shape, Data: make([]complex64, shape.SpectrumLen())}, nil
}

// Row returns the bins of spectrum row r.
func (s *Spectrum) Row(r int) []complex64 {
	c := s.Shape.SpectrumCols()
	return s.Data[r*c : (r+1)*c]
}

// Release drops the spectrum's storage. A released spectrum must not be
// used again.
func (s *Spectrum) Release() {
	if s == nil {
		return
	}
	s.Data = nil
}

func (s *Spectrum) check() error {
	if s == nil || s.Data == nil {
		return ErrNilBuffer
	}
	if len(s.Data) != s.Shape.SpectrumLen() {
		return fmt.Errorf("%w: spectrum for %s holds %d bins", ErrShapeMismatch, s.Shape, len(s.Data))
	}
	return nil
}
