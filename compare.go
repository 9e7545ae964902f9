package fftcompare

import (
	"fmt"
	"math"
)

// DefaultTolerance is the absolute per-component tolerance used to decide
// whether two spectra agree.
const DefaultTolerance = 1e-6

// Verdict is the outcome of comparing two spectra.
type Verdict struct {
	Equal    bool
	Mismatch *Mismatch
}

// Mismatch describes the first element, in row-major order, whose real or
// imaginary part differs by more than the tolerance.
type Mismatch struct {
	Index int
	Row   int
	Col   int
	A     complex64
	B     complex64
	Diff  float64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("bin %d (row %d, col %d): %v vs %v, |diff|=%g", m.Index, m.Row, m.Col, m.A, m.B, m.Diff)
}

// Compare reports whether a and b agree element-wise within the absolute
// tolerance tol, checking real and imaginary parts separately. It stops at
// the first mismatch. Spectra of different shapes are an error, not a
// failed verdict.
//
// The tolerance is absolute, so for large-magnitude bins it is far stricter
// than a relative check would be.
func Compare(a, b *Spectrum, tol float64) (Verdict, error) {
	if err := checkTolerance(tol); err != nil {
		return Verdict{}, err
	}
	if err := a.check(); err != nil {
		return Verdict{}, err
	}
	if err := b.check(); err != nil {
		return Verdict{}, err
	}
	if a.Shape != b.Shape {
		return Verdict{}, fmt.Errorf("%w: %s vs %s", ErrShapeMismatch, a.Shape, b.Shape)
	}

	cols := a.Shape.SpectrumCols()

	for i, va := range a.Data {
		vb := b.Data[i]

		dr := math.Abs(float64(real(va)) - float64(real(vb)))
		di := math.Abs(float64(imag(va)) - float64(imag(vb)))

		// NaN differences never compare greater, so test the negation.
		if !(dr <= tol) || !(di <= tol) {
			return Verdict{
				Mismatch: &Mismatch{
					Index: i,
					Row:   i / cols,
					Col:   i % cols,
					A:     va,
					B:     vb,
					Diff:  math.Max(dr, di),
				},
			}, nil
		}
	}

	return Verdict{Equal: true}, nil
}

func checkTolerance(tol float64) error {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidTolerance, tol)
	}
	return nil
}
