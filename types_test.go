package fftcompare

import (
	"errors"
	"math"
	"testing"
)

func TestShapeValidate(t *testing.T) {
	t.Parallel()

	valid := []Shape{{1, 2}, {4, 4}, {2048, 2048}, {3, 10}}
	for _, s := range valid {
		if err := s.Validate(); err != nil {
			t.Errorf("%s: unexpected error %v", s, err)
		}
	}

	invalid := []Shape{{0, 4}, {4, 0}, {4, 1}, {4, 5}, {-1, 4}}
	for _, s := range invalid {
		if err := s.Validate(); !errors.Is(err, ErrInvalidShape) {
			t.Errorf("%s: err = %v, want ErrInvalidShape", s, err)
		}
	}
}

func TestShapeValidateRejectsOversizedGrids(t *testing.T) {
	t.Parallel()

	oversized := []Shape{
		{Rows: math.MaxInt / 2, Cols: 4},
		{Rows: 2, Cols: math.MaxInt - 1},
		{Rows: 1 << 16, Cols: 1 << 17},
	}
	for _, s := range oversized {
		if err := s.Validate(); !errors.Is(err, ErrResourceExhausted) {
			t.Errorf("%s: err = %v, want ErrResourceExhausted", s, err)
		}

		g, err := NewInputGrid(s)
		if err == nil || g != nil {
			t.Errorf("NewInputGrid(%s) = %v, %v; want error", s, g, err)
		}
		if _, err := NewSpectrum(s); !errors.Is(err, ErrResourceExhausted) {
			t.Errorf("NewSpectrum(%s) err = %v, want ErrResourceExhausted", s, err)
		}
	}

	// Exactly MaxElements samples; only addressable with a 64-bit int.
	if int64(math.MaxInt) > MaxElements {
		largest := Shape{Rows: 1 << 15, Cols: 1 << 17}
		if err := largest.Validate(); err != nil {
			t.Errorf("%s: unexpected error %v", largest, err)
		}
	}
}

func TestShapeSpectrumLen(t *testing.T) {
	t.Parallel()

	s := Shape{Rows: 2048, Cols: 2048}
	if s.SpectrumCols() != 1025 {
		t.Errorf("SpectrumCols() = %d, want 1025", s.SpectrumCols())
	}
	if s.SpectrumLen() != 2048*1025 {
		t.Errorf("SpectrumLen() = %d, want %d", s.SpectrumLen(), 2048*1025)
	}
	if s.Len() != 2048*2048 {
		t.Errorf("Len() = %d, want %d", s.Len(), 2048*2048)
	}
}

func TestSpectrumRow(t *testing.T) {
	t.Parallel()

	s := spectrumOf(t, Shape{Rows: 2, Cols: 4}, 1, 2, 3, 4, 5, 6)

	if got := s.Row(1); len(got) != 3 || got[0] != 4 {
		t.Errorf("Row(1) = %v, want [4 5 6]", got)
	}

	s.Release()
	if s.Data != nil {
		t.Error("Release did not drop data")
	}
	if err := s.check(); !errors.Is(err, ErrNilBuffer) {
		t.Errorf("released spectrum check: err = %v, want ErrNilBuffer", err)
	}

	var nilSpec *Spectrum
	nilSpec.Release()
}

func TestInputGridCheck(t *testing.T) {
	t.Parallel()

	g, err := NewInputGrid(Shape{Rows: 2, Cols: 2})
	if err != nil {
		t.Fatalf("NewInputGrid failed: %v", err)
	}
	if err := g.check(); err != nil {
		t.Errorf("fresh grid check: %v", err)
	}

	g.Data = g.Data[:3]
	if err := g.check(); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("short grid check: err = %v, want ErrShapeMismatch", err)
	}

	var nilGrid *InputGrid
	if err := nilGrid.check(); !errors.Is(err, ErrNilBuffer) {
		t.Errorf("nil grid check: err = %v, want ErrNilBuffer", err)
	}
}

func TestStageErrorFormatting(t *testing.T) {
	t.Parallel()

	err := stageErr("gonum", StageAllocate, ErrResourceExhausted, errFake)

	var se *StageError
	if !errors.As(err, &se) {
		t.Fatalf("errors.As failed for %v", err)
	}
	if se.Backend != "gonum" || se.Stage != StageAllocate {
		t.Errorf("StageError = %+v", se)
	}
	if !errors.Is(err, ErrResourceExhausted) || !errors.Is(err, errFake) {
		t.Errorf("error chain lost: %v", err)
	}

	want := `backend "gonum": allocate: fftcompare: resource exhausted: fake failure`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	bare := stageErr("", StagePlan, ErrBackendInit, nil)
	if bare.Error() != "plan: fftcompare: backend failure" {
		t.Errorf("Error() = %q", bare.Error())
	}
}
